package assembly

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/cryptodoran/DefiAppXStrategy-sub000/internal/scoring"
	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/models"
)

type fakeMarket struct {
	ctx      models.MarketContext
	err      error
	delay    time.Duration
	fallback models.MarketContext
}

func (f *fakeMarket) Snapshot(_ context.Context) (models.MarketContext, error) {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.ctx, f.err
}

func (f *fakeMarket) Fallback() models.MarketContext { return f.fallback }

type fakeSocial struct {
	ctx      models.TwitterContext
	err      error
	delay    time.Duration
	fallback models.TwitterContext
}

func (f *fakeSocial) Snapshot(_ context.Context) (models.TwitterContext, error) {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.ctx, f.err
}

func (f *fakeSocial) Fallback() models.TwitterContext { return f.fallback }

type fakeCompetitor struct {
	ctx      models.CompetitorContext
	err      error
	delay    time.Duration
	fallback models.CompetitorContext
}

func (f *fakeCompetitor) Snapshot(_ context.Context) (models.CompetitorContext, error) {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.ctx, f.err
}

func (f *fakeCompetitor) Fallback() models.CompetitorContext { return f.fallback }

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func newTestAssembler(m *fakeMarket, s *fakeSocial, c *fakeCompetitor, budget time.Duration) *Assembler {
	return NewAssembler(m, s, c, scoring.DefaultBrandVoice(), budget, testLogger())
}

func TestAssembleHappyPath(t *testing.T) {
	market := &fakeMarket{ctx: models.MarketContext{BTCPrice: 97250, Mood: models.MoodBullish}}
	social := &fakeSocial{ctx: models.TwitterContext{TopTrends: []models.TrendingTopic{{Name: "etf flows"}}}}
	competitor := &fakeCompetitor{ctx: models.CompetitorContext{ContentGaps: []string{"settlement volumes"}}}

	block, err := newTestAssembler(market, social, competitor, 500*time.Millisecond).Assemble(context.Background())
	require.NoError(t, err)

	require.Equal(t, 97250.0, block.Market.BTCPrice)
	require.Len(t, block.Twitter.TopTrends, 1)
	require.Equal(t, []string{"settlement volumes"}, block.Competitor.ContentGaps)
	require.False(t, block.Degraded)
	require.Empty(t, block.DegradedSources)
	require.False(t, block.Timestamp.IsZero())
	require.NotEmpty(t, block.Brand.Tone)
}

func TestAssembleFansOutConcurrently(t *testing.T) {
	delay := 60 * time.Millisecond
	market := &fakeMarket{delay: delay}
	social := &fakeSocial{delay: delay}
	competitor := &fakeCompetitor{delay: delay}

	start := time.Now()
	_, err := newTestAssembler(market, social, competitor, 500*time.Millisecond).Assemble(context.Background())
	elapsed := time.Since(start)

	require.NoError(t, err)
	// Sequential fetches would take at least three delays.
	require.Less(t, elapsed, 2*delay)
}

func TestAssembleDegradesSingleFailedSource(t *testing.T) {
	market := &fakeMarket{
		err:      errors.New("coingecko timeout"),
		fallback: models.MarketContext{Mood: models.MoodNeutral, FearGreedIndex: 50},
	}
	social := &fakeSocial{ctx: models.TwitterContext{TopTrends: []models.TrendingTopic{{Name: "liquidations"}}}}
	competitor := &fakeCompetitor{}

	block, err := newTestAssembler(market, social, competitor, 500*time.Millisecond).Assemble(context.Background())
	require.NoError(t, err)

	require.True(t, block.Degraded)
	require.Equal(t, []string{"market"}, block.DegradedSources)
	require.Equal(t, models.MoodNeutral, block.Market.Mood)
	require.Len(t, block.Twitter.TopTrends, 1)
}

func TestAssembleDegradesTwoFailedSources(t *testing.T) {
	market := &fakeMarket{err: errors.New("down")}
	social := &fakeSocial{err: errors.New("down")}
	competitor := &fakeCompetitor{ctx: models.CompetitorContext{ContentGaps: []string{"gap"}}}

	block, err := newTestAssembler(market, social, competitor, 500*time.Millisecond).Assemble(context.Background())
	require.NoError(t, err)

	require.True(t, block.Degraded)
	require.ElementsMatch(t, []string{"market", "social"}, block.DegradedSources)
	require.Equal(t, []string{"gap"}, block.Competitor.ContentGaps)
}

func TestAssembleFailsOnlyWhenAllSourcesFail(t *testing.T) {
	market := &fakeMarket{err: errors.New("down")}
	social := &fakeSocial{err: errors.New("down")}
	competitor := &fakeCompetitor{err: errors.New("down")}

	block, err := newTestAssembler(market, social, competitor, 500*time.Millisecond).Assemble(context.Background())
	require.Nil(t, block)
	require.ErrorIs(t, err, ErrAllSourcesFailed)
}

func TestAssembleBudgetOverrunIsNonFatal(t *testing.T) {
	market := &fakeMarket{delay: 30 * time.Millisecond}
	social := &fakeSocial{}
	competitor := &fakeCompetitor{}

	// A 1ms budget is always exceeded; assembly must still succeed.
	block, err := newTestAssembler(market, social, competitor, time.Millisecond).Assemble(context.Background())
	require.NoError(t, err)
	require.NotNil(t, block)
	require.False(t, block.Degraded)
}
