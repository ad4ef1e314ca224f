package scoring

import (
	"testing"

	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/models"
	"github.com/stretchr/testify/require"
)

func TestDetectSlopGenericPhrasePerOccurrence(t *testing.T) {
	issues := DetectSlop("This is a game changer. Honestly, a game changer for the whole space.", DefaultBrandVoice())

	var generic []models.QualityIssue
	for _, issue := range issues {
		if issue.Type == models.IssueGenericPhrase {
			generic = append(generic, issue)
		}
	}

	require.Len(t, generic, 2)
	for _, issue := range generic {
		require.Equal(t, models.SeverityCritical, issue.Severity)
	}
}

func TestDetectSlopGenericPhraseCaseInsensitive(t *testing.T) {
	issues := DetectSlop("STAY TUNED for the full breakdown of yesterday's liquidation cascade.", DefaultBrandVoice())

	require.Len(t, issues, 1)
	require.Equal(t, models.IssueGenericPhrase, issues[0].Type)
}

func TestDetectHollowEnthusiasmTriggers(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    int
	}{
		{"opening exclamation word", "Wow, the ETF inflow numbers today were something else entirely.", 1},
		{"stacked exclamation marks", "Perp funding just flipped!! That has not happened since March.", 1},
		{"intensifier combo", "The new settlement layer is absolutely amazing for cross-chain flows.", 1},
		{"all three at once", "Wow!! This is absolutely incredible stuff happening right now.", 3},
		{"clean analytical content", "Funding flipped negative while price held. Usually resolves upward.", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var hollow int
			for _, issue := range DetectSlop(tc.content, DefaultBrandVoice()) {
				if issue.Type == models.IssueHollowEnthusiasm {
					require.Equal(t, models.SeverityWarning, issue.Severity)
					hollow++
				}
			}
			require.Equal(t, tc.want, hollow)
		})
	}
}

func TestDetectNoValueIndependentChecks(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 2},
		{"whitespace only", "   ", 2},
		{"trivial and short", "wagmi", 2},
		{"trivial with punctuation", "lfg!", 2},
		{"short but not trivial", "eth looks ok", 1},
		{"long enough", "Spot volumes finally picking up after three quiet weeks.", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var noValue int
			for _, issue := range DetectSlop(tc.content, DefaultBrandVoice()) {
				if issue.Type == models.IssueNoValue {
					require.Equal(t, models.SeverityCritical, issue.Severity)
					noValue++
				}
			}
			require.Equal(t, tc.want, noValue)
		})
	}
}

func TestDetectEmojiOverloadUsesConfiguredLimit(t *testing.T) {
	content := "Shorts covering into resistance 🔥🔥🔥 while spot stays bid ✅"

	strict := DefaultBrandVoice()
	strict.Style.MaxEmojis = 1

	relaxed := DefaultBrandVoice()
	relaxed.Style.MaxEmojis = 6

	require.NotEmpty(t, detectEmojiOverload(content, strict))
	require.Empty(t, detectEmojiOverload(content, relaxed))
}
