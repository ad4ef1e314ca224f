package signals

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/models"
)

// MarketSource normalizes raw market signals into a MarketContext with
// a derived mood.
type MarketSource struct {
	provider MarketProvider
	cache    Cache
	logger   *logrus.Entry

	mu        sync.RWMutex
	lastKnown *models.MarketContext
}

// NewMarketSource creates a market signal source.
func NewMarketSource(provider MarketProvider, cache Cache, logger *logrus.Logger) *MarketSource {
	return &MarketSource{
		provider: provider,
		cache:    cache,
		logger:   logger.WithField("source", "market"),
	}
}

// Snapshot returns a fresh market context. Cache hits short-circuit the
// provider; an expired cache entry reads as absent and triggers a
// refetch. On success the snapshot is remembered as the fallback.
func (s *MarketSource) Snapshot(ctx context.Context) (models.MarketContext, error) {
	signals, err := s.fetch(ctx)
	if err != nil {
		return models.MarketContext{}, &SourceError{Source: "market", Err: err}
	}

	mc := Normalize(signals)

	s.mu.Lock()
	s.lastKnown = &mc
	s.mu.Unlock()

	return mc, nil
}

// Fallback returns the last successful snapshot, or the neutral default
// when no fetch has ever succeeded.
func (s *MarketSource) Fallback() models.MarketContext {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.lastKnown != nil {
		return *s.lastKnown
	}
	return NeutralMarketContext()
}

func (s *MarketSource) fetch(ctx context.Context) (*models.MarketSignals, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetMarketSignals(ctx); err != nil {
			s.logger.WithError(err).Warn("Market cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	signals, err := s.provider.FetchMarketSignals(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetMarketSignals(ctx, signals); err != nil {
			s.logger.WithError(err).Warn("Market cache write failed")
		}
	}

	return signals, nil
}

// Normalize converts raw market signals into the context snapshot and
// derives the mood.
func Normalize(signals *models.MarketSignals) models.MarketContext {
	btc := signals.Assets["BTC"]
	eth := signals.Assets["ETH"]

	return models.MarketContext{
		BTCPrice:       btc.Price,
		BTCChange24h:   btc.Change24h,
		ETHPrice:       eth.Price,
		ETHChange24h:   eth.Change24h,
		Mood:           DeriveMood(btc.Change24h, signals.FearGreedIndex, signals.VolatilityIndex),
		FearGreedIndex: signals.FearGreedIndex,
		FearGreedLabel: signals.FearGreedLabel,
		UpcomingEvents: signals.UpcomingEvents,
	}
}

// DeriveMood classifies the market regime from 24h BTC change, the
// fear/greed index and the volatility index. Pure so the label can
// never drift from the data that produced it.
func DeriveMood(btcChange24h float64, fearGreed int, volatility float64) models.MarketMood {
	switch {
	case volatility >= 80:
		return models.MoodChaos
	case btcChange24h >= 10 && fearGreed >= 75:
		return models.MoodEuphoria
	case btcChange24h <= -10 && fearGreed <= 25:
		return models.MoodPanic
	case btcChange24h >= 3 || fearGreed >= 65:
		return models.MoodBullish
	case btcChange24h <= -3 || fearGreed <= 35:
		return models.MoodBearish
	default:
		return models.MoodNeutral
	}
}

// NeutralMarketContext is the documented degraded default for the
// market source: flat prices, a mid fear/greed reading, neutral mood.
func NeutralMarketContext() models.MarketContext {
	return models.MarketContext{
		Mood:           models.MoodNeutral,
		FearGreedIndex: 50,
		FearGreedLabel: "Neutral",
	}
}
