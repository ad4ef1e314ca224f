package scoring

import (
	"fmt"
	"strings"

	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/models"
)

// ValidateBrandVoice checks content against the configured voice
// constraints with case-insensitive substring matching. Competitor
// mentions are reported once per occurrence so repeated name-drops keep
// costing score.
func ValidateBrandVoice(content string, cfg models.BrandVoiceConfig) []models.QualityIssue {
	var issues []models.QualityIssue

	lower := strings.ToLower(content)

	for _, competitor := range cfg.Competitors {
		name := strings.ToLower(strings.TrimSpace(competitor))
		if name == "" {
			continue
		}
		for n := strings.Count(lower, name); n > 0; n-- {
			issues = append(issues, models.QualityIssue{
				Type:        models.IssueCompetitorMention,
				Severity:    models.SeverityCritical,
				Description: fmt.Sprintf("mentions competitor %q", competitor),
				Suggestion:  "talk about your own edge instead",
				Location:    competitor,
			})
		}
	}

	for _, topic := range cfg.Topics.Blacklist {
		keyword := strings.ToLower(strings.TrimSpace(topic))
		if keyword == "" {
			continue
		}
		if strings.Contains(lower, keyword) {
			issues = append(issues, models.QualityIssue{
				Type:        models.IssueOffBrand,
				Severity:    models.SeverityCritical,
				Description: fmt.Sprintf("touches blacklisted topic %q", topic),
				Suggestion:  "stay inside the core and adjacent topic set",
				Location:    topic,
			})
		}
	}

	for _, word := range cfg.Vocabulary.Avoid {
		avoid := strings.ToLower(strings.TrimSpace(word))
		if avoid == "" {
			continue
		}
		if strings.Contains(lower, avoid) {
			issues = append(issues, models.QualityIssue{
				Type:        models.IssueOffBrand,
				Severity:    models.SeverityWarning,
				Description: fmt.Sprintf("uses avoided vocabulary %q", word),
				Suggestion:  "swap for preferred brand vocabulary",
				Location:    word,
			})
		}
	}

	return issues
}
