package scoring

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/models"
)

// DetectSlop runs the fixed battery of anti-slop checks against the
// content. Every pattern match produces its own issue; a phrase that
// appears twice is reported twice.
func DetectSlop(content string, cfg models.BrandVoiceConfig) []models.QualityIssue {
	var issues []models.QualityIssue

	lower := strings.ToLower(content)

	// Generic / AI-cliché phrases.
	for _, phrase := range genericPhrases {
		for n := strings.Count(lower, phrase); n > 0; n-- {
			issues = append(issues, models.QualityIssue{
				Type:        models.IssueGenericPhrase,
				Severity:    models.SeverityCritical,
				Description: fmt.Sprintf("generic phrase %q", phrase),
				Suggestion:  "replace with a concrete, specific statement",
				Location:    phrase,
			})
		}
	}

	issues = append(issues, detectHollowEnthusiasm(content, lower)...)
	issues = append(issues, detectEmojiOverload(content, cfg)...)
	issues = append(issues, detectNoValue(content, lower)...)

	return issues
}

// detectHollowEnthusiasm flags enthusiasm without substance: an opening
// exclamation word, stacked exclamation marks, or an intensifier glued
// to a superlative.
func detectHollowEnthusiasm(content, lower string) []models.QualityIssue {
	var issues []models.QualityIssue

	trimmed := strings.TrimSpace(lower)
	for _, opener := range exclamationOpeners {
		if trimmed == opener || strings.HasPrefix(trimmed, opener+" ") || strings.HasPrefix(trimmed, opener+"!") || strings.HasPrefix(trimmed, opener+",") {
			issues = append(issues, models.QualityIssue{
				Type:        models.IssueHollowEnthusiasm,
				Severity:    models.SeverityWarning,
				Description: fmt.Sprintf("opens with exclamation word %q", opener),
				Suggestion:  "lead with the substance, not the reaction",
			})
			break
		}
	}

	if strings.Contains(content, "!!") {
		issues = append(issues, models.QualityIssue{
			Type:        models.IssueHollowEnthusiasm,
			Severity:    models.SeverityWarning,
			Description: "repeated exclamation marks",
			Suggestion:  "one exclamation mark at most",
		})
	}

	if m := intensifierCombo.FindString(content); m != "" {
		issues = append(issues, models.QualityIssue{
			Type:        models.IssueHollowEnthusiasm,
			Severity:    models.SeverityWarning,
			Description: fmt.Sprintf("intensifier-superlative combo %q", m),
			Suggestion:  "show the magnitude with a number instead",
			Location:    m,
		})
	}

	return issues
}

// detectEmojiOverload counts emoji code points against the brand limit.
func detectEmojiOverload(content string, cfg models.BrandVoiceConfig) []models.QualityIssue {
	limit := cfg.Style.MaxEmojis
	if limit <= 0 {
		limit = defaultMaxEmojis
	}

	count := len(emojiPattern.FindAllString(content, -1))
	if count <= limit {
		return nil
	}

	return []models.QualityIssue{{
		Type:        models.IssueEmojiOverload,
		Severity:    models.SeverityWarning,
		Description: fmt.Sprintf("%d emojis, brand limit is %d", count, limit),
		Suggestion:  "cut emojis down to the brand limit",
	}}
}

// detectNoValue runs three independent checks: blank content, trivial
// throwaway phrases, and content under the minimum length. Each check
// that fires produces its own issue.
func detectNoValue(content, lower string) []models.QualityIssue {
	var issues []models.QualityIssue

	trimmed := strings.TrimSpace(lower)

	if trimmed == "" {
		issues = append(issues, models.QualityIssue{
			Type:        models.IssueNoValue,
			Severity:    models.SeverityCritical,
			Description: "content is empty",
			Suggestion:  "write something worth reading",
		})
	}

	normalized := strings.TrimRight(trimmed, ".!?")
	for _, phrase := range trivialPhrases {
		if normalized == phrase {
			issues = append(issues, models.QualityIssue{
				Type:        models.IssueNoValue,
				Severity:    models.SeverityCritical,
				Description: fmt.Sprintf("trivial phrase %q adds nothing", phrase),
				Suggestion:  "add a take, a number, or a question",
			})
			break
		}
	}

	if utf8.RuneCountInString(strings.TrimSpace(content)) < minContentRunes {
		issues = append(issues, models.QualityIssue{
			Type:        models.IssueNoValue,
			Severity:    models.SeverityCritical,
			Description: fmt.Sprintf("content shorter than %d characters", minContentRunes),
			Suggestion:  "say enough to be worth the reader's scroll",
		})
	}

	return issues
}
