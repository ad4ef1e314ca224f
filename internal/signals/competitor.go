package signals

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/models"
)

// CompetitorSource tracks recent competitor activity and derived
// content gaps for a configured handle set.
type CompetitorSource struct {
	provider CompetitorProvider
	cache    Cache
	handles  []string
	logger   *logrus.Entry

	mu        sync.RWMutex
	lastKnown *models.CompetitorContext
}

// NewCompetitorSource creates a competitor signal source.
func NewCompetitorSource(provider CompetitorProvider, cache Cache, handles []string, logger *logrus.Logger) *CompetitorSource {
	return &CompetitorSource{
		provider: provider,
		cache:    cache,
		handles:  handles,
		logger:   logger.WithField("source", "competitor"),
	}
}

// Snapshot returns a fresh competitor context.
func (s *CompetitorSource) Snapshot(ctx context.Context) (models.CompetitorContext, error) {
	signals, err := s.fetch(ctx)
	if err != nil {
		return models.CompetitorContext{}, &SourceError{Source: "competitor", Err: err}
	}

	cc := models.CompetitorContext{
		RecentActivity: signals.RecentActivity,
		ContentGaps:    signals.ContentGaps,
	}

	s.mu.Lock()
	s.lastKnown = &cc
	s.mu.Unlock()

	return cc, nil
}

// Fallback returns the last successful snapshot, or an empty context
// when no fetch has ever succeeded.
func (s *CompetitorSource) Fallback() models.CompetitorContext {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.lastKnown != nil {
		return *s.lastKnown
	}
	return models.CompetitorContext{}
}

func (s *CompetitorSource) fetch(ctx context.Context) (*models.CompetitorSignals, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetCompetitorSignals(ctx); err != nil {
			s.logger.WithError(err).Warn("Competitor cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	signals, err := s.provider.FetchCompetitorSignals(ctx, s.handles)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetCompetitorSignals(ctx, signals); err != nil {
			s.logger.WithError(err).Warn("Competitor cache write failed")
		}
	}

	return signals, nil
}
