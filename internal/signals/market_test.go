package signals

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/models"
)

type fakeMarketProvider struct {
	signals *models.MarketSignals
	err     error
	calls   int
}

func (f *fakeMarketProvider) FetchMarketSignals(_ context.Context) (*models.MarketSignals, error) {
	f.calls++
	return f.signals, f.err
}

type fakeCache struct {
	market     *models.MarketSignals
	social     *models.SocialSignals
	competitor *models.CompetitorSignals

	marketWrites     int
	socialWrites     int
	competitorWrites int
}

func (f *fakeCache) GetMarketSignals(_ context.Context) (*models.MarketSignals, error) {
	return f.market, nil
}

func (f *fakeCache) SetMarketSignals(_ context.Context, signals *models.MarketSignals) error {
	f.market = signals
	f.marketWrites++
	return nil
}

func (f *fakeCache) GetSocialSignals(_ context.Context) (*models.SocialSignals, error) {
	return f.social, nil
}

func (f *fakeCache) SetSocialSignals(_ context.Context, signals *models.SocialSignals) error {
	f.social = signals
	f.socialWrites++
	return nil
}

func (f *fakeCache) GetCompetitorSignals(_ context.Context) (*models.CompetitorSignals, error) {
	return f.competitor, nil
}

func (f *fakeCache) SetCompetitorSignals(_ context.Context, signals *models.CompetitorSignals) error {
	f.competitor = signals
	f.competitorWrites++
	return nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func marketFixture() *models.MarketSignals {
	return &models.MarketSignals{
		Assets: map[string]models.AssetQuote{
			"BTC": {Price: 97250, Change24h: 4.2},
			"ETH": {Price: 3480, Change24h: 5.8},
		},
		FearGreedIndex:  72,
		FearGreedLabel:  "Greed",
		VolatilityIndex: 38,
		FetchedAt:       time.Now(),
	}
}

func TestDeriveMood(t *testing.T) {
	cases := []struct {
		name       string
		change     float64
		fearGreed  int
		volatility float64
		want       models.MarketMood
	}{
		{"extreme volatility wins", 12, 80, 85, models.MoodChaos},
		{"euphoria", 11, 78, 40, models.MoodEuphoria},
		{"panic", -12, 20, 40, models.MoodPanic},
		{"bullish on price", 3.5, 50, 30, models.MoodBullish},
		{"bullish on sentiment", 1, 68, 30, models.MoodBullish},
		{"bearish on price", -4, 50, 30, models.MoodBearish},
		{"bearish on sentiment", -1, 30, 30, models.MoodBearish},
		{"big move without greed is bullish", 11, 50, 30, models.MoodBullish},
		{"big drop without fear is bearish", -11, 50, 30, models.MoodBearish},
		{"flat", 0.5, 50, 30, models.MoodNeutral},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, DeriveMood(tc.change, tc.fearGreed, tc.volatility))
		})
	}
}

func TestMarketSnapshotNormalizes(t *testing.T) {
	provider := &fakeMarketProvider{signals: marketFixture()}
	source := NewMarketSource(provider, nil, testLogger())

	mc, err := source.Snapshot(context.Background())
	require.NoError(t, err)

	require.Equal(t, 97250.0, mc.BTCPrice)
	require.Equal(t, 4.2, mc.BTCChange24h)
	require.Equal(t, 3480.0, mc.ETHPrice)
	require.Equal(t, models.MoodBullish, mc.Mood)
	require.Equal(t, 72, mc.FearGreedIndex)
	require.Equal(t, "Greed", mc.FearGreedLabel)
}

func TestMarketSnapshotCacheHitSkipsProvider(t *testing.T) {
	provider := &fakeMarketProvider{signals: marketFixture()}
	cache := &fakeCache{market: marketFixture()}
	source := NewMarketSource(provider, cache, testLogger())

	_, err := source.Snapshot(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, provider.calls)
}

func TestMarketSnapshotCacheMissFetchesAndWrites(t *testing.T) {
	provider := &fakeMarketProvider{signals: marketFixture()}
	cache := &fakeCache{}
	source := NewMarketSource(provider, cache, testLogger())

	_, err := source.Snapshot(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, provider.calls)
	require.Equal(t, 1, cache.marketWrites)
	require.NotNil(t, cache.market)
}

func TestMarketSnapshotWrapsProviderError(t *testing.T) {
	provider := &fakeMarketProvider{err: errors.New("upstream down")}
	source := NewMarketSource(provider, nil, testLogger())

	_, err := source.Snapshot(context.Background())
	require.Error(t, err)

	var srcErr *SourceError
	require.ErrorAs(t, err, &srcErr)
	require.Equal(t, "market", srcErr.Source)
}

func TestMarketFallback(t *testing.T) {
	provider := &fakeMarketProvider{signals: marketFixture()}
	source := NewMarketSource(provider, nil, testLogger())

	// Before any successful fetch: documented neutral default.
	neutral := source.Fallback()
	require.Equal(t, models.MoodNeutral, neutral.Mood)
	require.Equal(t, 50, neutral.FearGreedIndex)
	require.Zero(t, neutral.BTCPrice)

	// After a success: last-known value.
	mc, err := source.Snapshot(context.Background())
	require.NoError(t, err)
	require.Equal(t, mc, source.Fallback())
}
