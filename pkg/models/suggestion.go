package models

import (
	"time"
)

// SuggestionType is the content format of a suggestion.
type SuggestionType string

const (
	SuggestionPost   SuggestionType = "post"
	SuggestionThread SuggestionType = "thread"
	SuggestionQT     SuggestionType = "qt"
	SuggestionReply  SuggestionType = "reply"
)

// SuggestionTrigger says whether a suggestion reacts to an external
// signal or is proactively scheduled.
type SuggestionTrigger string

const (
	TriggerReactive  SuggestionTrigger = "reactive"
	TriggerProactive SuggestionTrigger = "proactive"
)

// SuggestionPriority orders suggestions by urgency.
type SuggestionPriority string

const (
	PriorityUrgent SuggestionPriority = "urgent"
	PriorityHigh   SuggestionPriority = "high"
	PriorityMedium SuggestionPriority = "medium"
	PriorityLow    SuggestionPriority = "low"
)

// PredictedPerformance estimates how a suggestion would perform if
// posted. Confidence drops when the backing context was degraded.
type PredictedPerformance struct {
	EngagementScore int     `json:"engagement_score"` // 0-100
	ViralityChance  int     `json:"virality_chance"`  // 0-100
	Confidence      float64 `json:"confidence"`       // 0-1
}

// ContentSuggestion is one actionable content recommendation. Created
// fresh on every generation cycle and never mutated afterwards. When
// ExpiresAt is set it is authoritative: past it the suggestion is stale.
type ContentSuggestion struct {
	ID                   string               `json:"id"`
	Type                 SuggestionType       `json:"type"`
	Trigger              SuggestionTrigger    `json:"trigger"`
	Priority             SuggestionPriority   `json:"priority"`
	Content              string               `json:"content"`
	Hook                 string               `json:"hook"`
	Angle                string               `json:"angle"`
	Why                  string               `json:"why"`
	TimingWindow         string               `json:"timing_window"`
	PredictedPerformance PredictedPerformance `json:"predicted_performance"`
	QualityScore         QualityScore         `json:"quality_score"`
	ContextReferences    []string             `json:"context_references"`
	CreatedAt            time.Time            `json:"created_at"`
	ExpiresAt            *time.Time           `json:"expires_at,omitempty"`
}

// Expired reports whether the suggestion is stale at the given instant.
// Suggestions without an expiry never go stale.
func (s *ContentSuggestion) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && now.After(*s.ExpiresAt)
}
