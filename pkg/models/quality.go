package models

// IssueSeverity ranks how damaging a quality issue is.
type IssueSeverity string

const (
	SeverityCritical IssueSeverity = "critical"
	SeverityWarning  IssueSeverity = "warning"
	SeverityInfo     IssueSeverity = "info"
)

// IssueType identifies the pattern class that produced a quality issue.
type IssueType string

const (
	IssueGenericPhrase     IssueType = "generic-phrase"
	IssueHollowEnthusiasm  IssueType = "hollow-enthusiasm"
	IssueEmojiOverload     IssueType = "emoji-overload"
	IssueNoValue           IssueType = "no-value"
	IssueCompetitorMention IssueType = "competitor-mention"
	IssueOffBrand          IssueType = "off-brand"
)

// QualityIssue is one detected problem in a piece of candidate text.
// Issues are produced, never mutated, and always travel with the text
// that produced them.
type QualityIssue struct {
	Type        IssueType     `json:"type"`
	Severity    IssueSeverity `json:"severity"`
	Description string        `json:"description"`
	Suggestion  string        `json:"suggestion,omitempty"`
	Location    string        `json:"location,omitempty"`
}

// ScoreBreakdown holds the six sub-scores, each in [0, 100].
type ScoreBreakdown struct {
	Hook        int `json:"hook"`
	Value       int `json:"value"`
	Originality int `json:"originality"`
	Voice       int `json:"voice"`
	Specificity int `json:"specificity"`
	AntiSlop    int `json:"anti_slop"`
}

// QualityScore is the full scoring result for one piece of content.
// Grade is a pure function of Overall and is never set independently.
type QualityScore struct {
	Overall   int            `json:"overall"` // 0-100
	Breakdown ScoreBreakdown `json:"breakdown"`
	Issues    []QualityIssue `json:"issues"`
	Grade     string         `json:"grade"` // A-F
}
