package scoring

import (
	"regexp"

	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/models"
)

// Base values every sub-score starts from before deductions and boosts.
const (
	baseHook        = 70
	baseValue       = 70
	baseOriginality = 70
	baseVoice       = 80
	baseSpecificity = 70
	baseAntiSlop    = 100
)

// Sub-score weights for the overall composition.
const (
	weightHook        = 0.20
	weightValue       = 0.25
	weightOriginality = 0.15
	weightVoice       = 0.15
	weightSpecificity = 0.10
	weightAntiSlop    = 0.15
)

// defaultMaxEmojis applies when the brand config does not set a limit.
const defaultMaxEmojis = 2

// minContentRunes is the floor under which content carries no value.
const minContentRunes = 15

// deduction is the per-issue penalty applied to the sub-scores.
type deduction struct {
	Hook        int
	Value       int
	Originality int
	Voice       int
	AntiSlop    int
}

// deductionKey addresses the deduction table by issue class.
type deductionKey struct {
	Type     models.IssueType
	Severity models.IssueSeverity
}

// deductions maps each issue class to its fixed penalty. Classes not in
// the table surface as issues without moving the score.
// Hollow-enthusiasm is emitted as a warning but shares the
// generic-phrase penalty row.
var deductions = map[deductionKey]deduction{
	{models.IssueGenericPhrase, models.SeverityCritical}:     {Hook: 20, Originality: 25, AntiSlop: 30},
	{models.IssueHollowEnthusiasm, models.SeverityWarning}:   {Hook: 20, Originality: 25, AntiSlop: 30},
	{models.IssueNoValue, models.SeverityCritical}:           {Value: 40, AntiSlop: 30},
	{models.IssueCompetitorMention, models.SeverityCritical}: {Voice: 30, AntiSlop: 30},
	{models.IssueOffBrand, models.SeverityCritical}:          {Voice: 30, AntiSlop: 30},
	{models.IssueEmojiOverload, models.SeverityWarning}:      {Voice: 10, AntiSlop: 15},
}

// genericPhrases is the curated list of AI-cliché and filler phrases.
// Matched case-insensitively; every occurrence is its own issue.
var genericPhrases = []string{
	"game changer",
	"game-changer",
	"unlock the power of",
	"stay tuned",
	"let that sink in",
	"dive into",
	"delve into",
	"in today's fast-paced world",
	"in the ever-evolving landscape",
	"take it to the next level",
	"the possibilities are endless",
	"you won't believe",
	"at the end of the day",
	"needless to say",
	"thread below",
	"revolutionize the way",
}

// exclamationOpeners are words that signal hollow enthusiasm when the
// content leads with them.
var exclamationOpeners = []string{
	"wow", "omg", "amazing", "incredible", "huge", "insane", "unbelievable",
}

// intensifierCombo matches intensifier+superlative pairs such as
// "absolutely amazing" or "truly revolutionary".
var intensifierCombo = regexp.MustCompile(`(?i)\b(absolutely|totally|literally|truly|genuinely)\s+(amazing|incredible|insane|revolutionary|game.?changing|mind.?blowing)\b`)

// trivialPhrases carry no value on their own.
var trivialPhrases = []string{
	"gm", "gn", "gmgm", "wagmi", "lfg", "this", "same", "real", "facts",
	"based", "100%", "agreed", "yes", "no", "ser", "bullish", "bearish",
}

// emojiPattern covers the main emoji blocks (Misc Symbols and
// Pictographs, Emoticons, Transport, Misc symbols, Dingbats). It does
// not cover every Unicode emoji block; broadening it would change
// scoring outcomes, so the narrower match is kept deliberately.
var emojiPattern = regexp.MustCompile(`[\x{1F300}-\x{1F5FF}\x{1F600}-\x{1F64F}\x{1F680}-\x{1F6FF}\x{2600}-\x{26FF}\x{2700}-\x{27BF}]`)

// percentPattern and currencyPattern detect concrete figures that boost
// value and specificity.
var (
	percentPattern  = regexp.MustCompile(`\d+(\.\d+)?%`)
	currencyPattern = regexp.MustCompile(`[$€£]\s?\d`)
	dataWordPattern = regexp.MustCompile(`(?i)\b(data|analysis)\b`)
	tokenPattern    = regexp.MustCompile(`(?i)\b(btc|eth)\b`)
)

// DefaultBrandVoice returns the stock brand configuration used when the
// settings collaborator has not supplied one. Callers receive a fresh
// value each time so tests cannot leak mutations into each other.
func DefaultBrandVoice() models.BrandVoiceConfig {
	return models.BrandVoiceConfig{
		Tone: []string{"confident", "analytical", "direct"},
		Vocabulary: models.VocabularyRules{
			Preferred: []string{"data", "onchain", "liquidity", "flows"},
			Avoid:     []string{"moon", "lambo", "ape in", "degen play"},
		},
		Topics: models.TopicRules{
			Core:      []string{"defi", "bitcoin", "ethereum", "market structure"},
			Adjacent:  []string{"macro", "regulation", "stablecoins"},
			Blacklist: []string{"gambling", "pump group", "airdrop farming"},
		},
		Style: models.StyleRules{
			MaxEmojis:     defaultMaxEmojis,
			AllowHashtags: false,
		},
		Competitors: nil,
	}
}
