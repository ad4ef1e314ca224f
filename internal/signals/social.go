package signals

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cryptodoran/DefiAppXStrategy-sub000/internal/trends"
	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/models"
)

// SocialSource normalizes raw social signals into a TwitterContext.
// Lifecycle stages and QT opportunity scores are derived attributes:
// they are recomputed on every read so elapsed time is always
// reflected, even on a cache hit.
type SocialSource struct {
	provider SocialProvider
	cache    Cache
	logger   *logrus.Entry
	now      func() time.Time

	mu        sync.RWMutex
	lastKnown *models.TwitterContext
}

// NewSocialSource creates a social signal source.
func NewSocialSource(provider SocialProvider, cache Cache, logger *logrus.Logger) *SocialSource {
	return &SocialSource{
		provider: provider,
		cache:    cache,
		logger:   logger.WithField("source", "social"),
		now:      time.Now,
	}
}

// Snapshot returns a fresh social context with derived fields
// recomputed for the current instant.
func (s *SocialSource) Snapshot(ctx context.Context) (models.TwitterContext, error) {
	signals, err := s.fetch(ctx)
	if err != nil {
		return models.TwitterContext{}, &SourceError{Source: "social", Err: err}
	}

	tc := s.normalize(signals)

	s.mu.Lock()
	s.lastKnown = &tc
	s.mu.Unlock()

	return tc, nil
}

// Fallback returns the last successful snapshot, or an empty context
// when no fetch has ever succeeded.
func (s *SocialSource) Fallback() models.TwitterContext {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.lastKnown != nil {
		return *s.lastKnown
	}
	return models.TwitterContext{}
}

func (s *SocialSource) fetch(ctx context.Context) (*models.SocialSignals, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetSocialSignals(ctx); err != nil {
			s.logger.WithError(err).Warn("Social cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	signals, err := s.provider.FetchSocialSignals(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetSocialSignals(ctx, signals); err != nil {
			s.logger.WithError(err).Warn("Social cache write failed")
		}
	}

	return signals, nil
}

// normalize recomputes lifecycles and QT opportunity, drops dead
// topics, and orders both lists for deterministic downstream iteration.
func (s *SocialSource) normalize(signals *models.SocialSignals) models.TwitterContext {
	now := s.now()

	topics := make([]models.TrendingTopic, 0, len(signals.TrendingTopics))
	for _, topic := range signals.TrendingTopics {
		topic.Lifecycle = trends.Reclassify(topic, now)
		if topic.Lifecycle == models.LifecycleDead {
			continue
		}
		topics = append(topics, topic)
	}

	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].RelevanceScore > topics[j].RelevanceScore
	})

	posts := make([]models.ViralPost, 0, len(signals.ViralPosts))
	for _, post := range signals.ViralPosts {
		post.EngagementVelocity = trends.EngagementVelocity(post.Metrics, post.PostedAt, now)
		post.QTOpportunityScore = trends.QTOpportunity(post, now)
		posts = append(posts, post)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].QTOpportunityScore > posts[j].QTOpportunityScore
	})

	return models.TwitterContext{TopTrends: topics, ViralPosts: posts}
}
