// Package scoring evaluates candidate post text against anti-slop
// patterns and brand-voice rules. All functions here are pure: any
// string input, including the empty string, scores without error.
package scoring

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/models"
)

// Content length band that earns the hook boost (exclusive bounds).
const (
	hookBoostMinRunes = 100
	hookBoostMaxRunes = 280
)

// Scorer evaluates content quality. The zero value is not usable;
// construct with NewScorer.
type Scorer struct {
	defaultVoice models.BrandVoiceConfig
}

// NewScorer returns a scorer that falls back to the stock brand voice
// when a call does not supply one.
func NewScorer() *Scorer {
	return &Scorer{defaultVoice: DefaultBrandVoice()}
}

// Score evaluates one piece of candidate text. Both block and cfg are
// optional: without a context block the trend-reference boost never
// applies, and without a config the default brand voice is used.
func (s *Scorer) Score(content string, block *models.ContextBlock, cfg *models.BrandVoiceConfig) models.QualityScore {
	voice := s.defaultVoice
	if cfg != nil {
		voice = *cfg
	}

	issues := DetectSlop(content, voice)
	issues = append(issues, ValidateBrandVoice(content, voice)...)

	breakdown := composeBreakdown(content, block, issues)
	overall := composeOverall(breakdown)

	return models.QualityScore{
		Overall:   overall,
		Breakdown: breakdown,
		Issues:    issues,
		Grade:     GradeOf(overall),
	}
}

// GradeOf maps an overall score to its letter grade. Total over 0-100;
// band lower bounds are inclusive.
func GradeOf(overall int) string {
	switch {
	case overall >= 85:
		return "A"
	case overall >= 70:
		return "B"
	case overall >= 55:
		return "C"
	case overall >= 40:
		return "D"
	default:
		return "F"
	}
}

// composeBreakdown applies the deduction table and the fixed boosts to
// the base sub-scores, clamping each to [0, 100].
func composeBreakdown(content string, block *models.ContextBlock, issues []models.QualityIssue) models.ScoreBreakdown {
	hook := baseHook
	value := baseValue
	originality := baseOriginality
	voice := baseVoice
	specificity := baseSpecificity
	antiSlop := baseAntiSlop

	for _, issue := range issues {
		d, ok := deductions[deductionKey{issue.Type, issue.Severity}]
		if !ok {
			continue
		}
		hook -= d.Hook
		value -= d.Value
		originality -= d.Originality
		voice -= d.Voice
		antiSlop -= d.AntiSlop
	}

	if hasDataSignal(content) {
		value += 10
		specificity += 15
	}

	if n := utf8.RuneCountInString(content); n > hookBoostMinRunes && n < hookBoostMaxRunes {
		hook += 5
	}

	if referencesContext(content, block) {
		specificity += 10
	}

	return models.ScoreBreakdown{
		Hook:        clamp(hook),
		Value:       clamp(value),
		Originality: clamp(originality),
		Voice:       clamp(voice),
		Specificity: clamp(specificity),
		AntiSlop:    clamp(antiSlop),
	}
}

// composeOverall folds the sub-scores into the weighted 0-100 total.
func composeOverall(b models.ScoreBreakdown) int {
	weighted := float64(b.Hook)*weightHook +
		float64(b.Value)*weightValue +
		float64(b.Originality)*weightOriginality +
		float64(b.Voice)*weightVoice +
		float64(b.Specificity)*weightSpecificity +
		float64(b.AntiSlop)*weightAntiSlop

	return clamp(int(math.Round(weighted)))
}

// hasDataSignal reports whether the content carries a concrete figure
// or an explicit data reference.
func hasDataSignal(content string) bool {
	return percentPattern.MatchString(content) ||
		currencyPattern.MatchString(content) ||
		dataWordPattern.MatchString(content)
}

// referencesContext reports whether the content names a current trend
// or one of the tracked token symbols.
func referencesContext(content string, block *models.ContextBlock) bool {
	if block == nil {
		return false
	}

	if tokenPattern.MatchString(content) {
		return true
	}

	lower := strings.ToLower(content)
	for _, trend := range block.Twitter.TopTrends {
		name := strings.ToLower(strings.TrimSpace(trend.Name))
		if name != "" && strings.Contains(lower, name) {
			return true
		}
	}

	return false
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
