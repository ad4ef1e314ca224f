package models

import (
	"time"
)

// ContextBlock is one consistent snapshot of all signal sources, owned
// by the assembler that created it. Suggestion generation must not
// mutate it.
type ContextBlock struct {
	Market     MarketContext     `json:"market"`
	Twitter    TwitterContext    `json:"twitter"`
	Competitor CompetitorContext `json:"competitor"`
	Brand      BrandVoiceConfig  `json:"brand"`
	Timestamp  time.Time         `json:"timestamp"`

	// Degraded is set when at least one source failed and its slice was
	// replaced by a neutral default. The dashboard uses it to show the
	// sample-data indicator.
	Degraded        bool     `json:"degraded"`
	DegradedSources []string `json:"degraded_sources,omitempty"`
}
