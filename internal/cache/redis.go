package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/config"
	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/models"
)

// Cache keys for signal snapshots.
const (
	keyMarketSignals     = "signals:market"
	keySocialTrends      = "signals:social:trends"
	keySocialViral       = "signals:social:viral"
	keyCompetitorSignals = "signals:competitor"
	keySuggestions       = "suggestions:latest"
)

// RedisClient caches signal snapshots and the latest suggestion batch.
// Expiry is enforced by Redis TTLs, so an expired entry reads as absent
// and triggers a refetch upstream.
type RedisClient struct {
	client *redis.Client
	logger *logrus.Entry
	cfg    *config.RedisConfig

	// Per-class TTLs: prices move in seconds, social and competitor
	// signals in minutes.
	marketTTL     time.Duration
	socialTTL     time.Duration
	competitorTTL time.Duration
}

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(cfg *config.RedisConfig, ttls *config.SignalTTLConfig, logger *logrus.Logger) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolTimeout:  4 * time.Second,
		IdleTimeout:  5 * time.Minute,
		MaxRetries:   2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return &RedisClient{
		client:        client,
		logger:        logger.WithField("component", "redis"),
		cfg:           cfg,
		marketTTL:     ttls.Market,
		socialTTL:     ttls.Social,
		competitorTTL: ttls.Competitor,
	}, nil
}

// Close closes the Redis connection.
func (rc *RedisClient) Close() error {
	return rc.client.Close()
}

// Health checks Redis health.
func (rc *RedisClient) Health(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}

// Signal snapshot operations

// SetMarketSignals caches the raw market payload.
func (rc *RedisClient) SetMarketSignals(ctx context.Context, signals *models.MarketSignals) error {
	return rc.setJSON(ctx, keyMarketSignals, signals, rc.marketTTL)
}

// GetMarketSignals returns the cached market payload, or nil when the
// entry is absent or expired.
func (rc *RedisClient) GetMarketSignals(ctx context.Context) (*models.MarketSignals, error) {
	var signals models.MarketSignals
	found, err := rc.getJSON(ctx, keyMarketSignals, &signals)
	if err != nil || !found {
		return nil, err
	}
	return &signals, nil
}

// SetSocialSignals caches trends and viral posts under separate keys so
// they can be invalidated independently.
func (rc *RedisClient) SetSocialSignals(ctx context.Context, signals *models.SocialSignals) error {
	if err := rc.setJSON(ctx, keySocialTrends, signals.TrendingTopics, rc.socialTTL); err != nil {
		return err
	}
	return rc.setJSON(ctx, keySocialViral, signals.ViralPosts, rc.socialTTL)
}

// GetSocialSignals returns the cached social payload. Both keys must be
// present; a partial hit reads as a miss.
func (rc *RedisClient) GetSocialSignals(ctx context.Context) (*models.SocialSignals, error) {
	var trends []models.TrendingTopic
	found, err := rc.getJSON(ctx, keySocialTrends, &trends)
	if err != nil || !found {
		return nil, err
	}

	var viral []models.ViralPost
	found, err = rc.getJSON(ctx, keySocialViral, &viral)
	if err != nil || !found {
		return nil, err
	}

	return &models.SocialSignals{TrendingTopics: trends, ViralPosts: viral}, nil
}

// SetCompetitorSignals caches the competitor payload.
func (rc *RedisClient) SetCompetitorSignals(ctx context.Context, signals *models.CompetitorSignals) error {
	return rc.setJSON(ctx, keyCompetitorSignals, signals, rc.competitorTTL)
}

// GetCompetitorSignals returns the cached competitor payload, or nil on
// a miss.
func (rc *RedisClient) GetCompetitorSignals(ctx context.Context) (*models.CompetitorSignals, error) {
	var signals models.CompetitorSignals
	found, err := rc.getJSON(ctx, keyCompetitorSignals, &signals)
	if err != nil || !found {
		return nil, err
	}
	return &signals, nil
}

// Suggestion operations

// SetSuggestions stores the latest generated batch for dashboard reads.
func (rc *RedisClient) SetSuggestions(ctx context.Context, suggestions []models.ContentSuggestion, ttl time.Duration) error {
	return rc.setJSON(ctx, keySuggestions, suggestions, ttl)
}

// GetSuggestions returns the latest cached batch, or nil on a miss.
func (rc *RedisClient) GetSuggestions(ctx context.Context) ([]models.ContentSuggestion, error) {
	var suggestions []models.ContentSuggestion
	found, err := rc.getJSON(ctx, keySuggestions, &suggestions)
	if err != nil || !found {
		return nil, err
	}
	return suggestions, nil
}

// JSON helpers

func (rc *RedisClient) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return rc.client.Set(ctx, key, data, ttl).Err()
}

func (rc *RedisClient) getJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := rc.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}

	return true, nil
}
