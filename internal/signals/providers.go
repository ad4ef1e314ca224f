// Package signals wraps the upstream providers behind the three signal
// source contracts: market, social and competitor. Each source fails
// independently, caches its payload with its own TTL, and can always
// produce a degraded fallback snapshot.
package signals

import (
	"context"
	"fmt"

	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/models"
)

// MarketProvider supplies raw market signals.
type MarketProvider interface {
	FetchMarketSignals(ctx context.Context) (*models.MarketSignals, error)
}

// SocialProvider supplies raw trending topics and viral posts.
type SocialProvider interface {
	FetchSocialSignals(ctx context.Context) (*models.SocialSignals, error)
}

// CompetitorProvider supplies raw competitor activity for a handle set.
type CompetitorProvider interface {
	FetchCompetitorSignals(ctx context.Context, handles []string) (*models.CompetitorSignals, error)
}

// Cache is the slice of the Redis client the sources need. A nil cache
// disables caching entirely.
type Cache interface {
	GetMarketSignals(ctx context.Context) (*models.MarketSignals, error)
	SetMarketSignals(ctx context.Context, signals *models.MarketSignals) error
	GetSocialSignals(ctx context.Context) (*models.SocialSignals, error)
	SetSocialSignals(ctx context.Context, signals *models.SocialSignals) error
	GetCompetitorSignals(ctx context.Context) (*models.CompetitorSignals, error)
	SetCompetitorSignals(ctx context.Context, signals *models.CompetitorSignals) error
}

// SourceError marks a failure of one named signal source. The assembler
// degrades that source only; it never aborts the whole assembly.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("signal source %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
