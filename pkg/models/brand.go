package models

// BrandVoiceConfig holds the configured voice constraints the scorer
// enforces. Supplied by the settings collaborator; the scorer treats it
// as read-only input.
type BrandVoiceConfig struct {
	Tone        []string        `json:"tone"`
	Vocabulary  VocabularyRules `json:"vocabulary"`
	Topics      TopicRules      `json:"topics"`
	Style       StyleRules      `json:"style"`
	Competitors []string        `json:"competitors"`
}

// VocabularyRules lists words to prefer and words to avoid.
type VocabularyRules struct {
	Preferred []string `json:"preferred"`
	Avoid     []string `json:"avoid"`
}

// TopicRules partitions topics into on-brand, adjacent and banned.
type TopicRules struct {
	Core      []string `json:"core"`
	Adjacent  []string `json:"adjacent"`
	Blacklist []string `json:"blacklist"`
}

// StyleRules holds formatting constraints.
type StyleRules struct {
	MaxEmojis     int  `json:"max_emojis"`
	AllowHashtags bool `json:"allow_hashtags"`
}
