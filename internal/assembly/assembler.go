// Package assembly builds one consistent ContextBlock snapshot from the
// three signal sources.
package assembly

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/models"
)

// ErrAllSourcesFailed is returned only when every signal source failed
// in the same cycle. A partial failure degrades instead.
var ErrAllSourcesFailed = errors.New("all signal sources failed")

// MarketSnapshotter is the market source slice the assembler needs.
type MarketSnapshotter interface {
	Snapshot(ctx context.Context) (models.MarketContext, error)
	Fallback() models.MarketContext
}

// SocialSnapshotter is the social source slice the assembler needs.
type SocialSnapshotter interface {
	Snapshot(ctx context.Context) (models.TwitterContext, error)
	Fallback() models.TwitterContext
}

// CompetitorSnapshotter is the competitor source slice the assembler
// needs.
type CompetitorSnapshotter interface {
	Snapshot(ctx context.Context) (models.CompetitorContext, error)
	Fallback() models.CompetitorContext
}

// Assembler fans out to the three signal sources concurrently and joins
// the results into a ContextBlock. A failed source is replaced by its
// fallback and flagged; the block stays usable.
type Assembler struct {
	market     MarketSnapshotter
	social     SocialSnapshotter
	competitor CompetitorSnapshotter
	brand      models.BrandVoiceConfig
	budget     time.Duration
	logger     *logrus.Entry
	now        func() time.Time
}

// NewAssembler creates a context assembler with the given latency
// budget.
func NewAssembler(
	market MarketSnapshotter,
	social SocialSnapshotter,
	competitor CompetitorSnapshotter,
	brand models.BrandVoiceConfig,
	budget time.Duration,
	logger *logrus.Logger,
) *Assembler {
	return &Assembler{
		market:     market,
		social:     social,
		competitor: competitor,
		brand:      brand,
		budget:     budget,
		logger:     logger.WithField("component", "assembler"),
		now:        time.Now,
	}
}

// Assemble fetches all three sources concurrently and stamps the
// snapshot. Running past the latency budget is logged and counted but
// never aborts the cycle. The returned error is non-nil only when every
// source failed.
func (a *Assembler) Assemble(ctx context.Context) (*models.ContextBlock, error) {
	start := a.now()

	var (
		wg sync.WaitGroup

		market        models.MarketContext
		social        models.TwitterContext
		competitor    models.CompetitorContext
		marketErr     error
		socialErr     error
		competitorErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		market, marketErr = a.market.Snapshot(ctx)
	}()
	go func() {
		defer wg.Done()
		social, socialErr = a.social.Snapshot(ctx)
	}()
	go func() {
		defer wg.Done()
		competitor, competitorErr = a.competitor.Snapshot(ctx)
	}()
	wg.Wait()

	elapsed := a.now().Sub(start)
	assemblyDuration.Observe(elapsed.Seconds())
	if elapsed > a.budget {
		budgetExceeded.Inc()
		a.logger.WithFields(logrus.Fields{
			"elapsed": elapsed.String(),
			"budget":  a.budget.String(),
		}).Warn("Context assembly ran past latency budget")
	}

	var degraded []string
	if marketErr != nil {
		sourceFailures.WithLabelValues("market").Inc()
		a.logger.WithError(marketErr).Warn("Market source degraded")
		market = a.market.Fallback()
		degraded = append(degraded, "market")
	}
	if socialErr != nil {
		sourceFailures.WithLabelValues("social").Inc()
		a.logger.WithError(socialErr).Warn("Social source degraded")
		social = a.social.Fallback()
		degraded = append(degraded, "social")
	}
	if competitorErr != nil {
		sourceFailures.WithLabelValues("competitor").Inc()
		a.logger.WithError(competitorErr).Warn("Competitor source degraded")
		competitor = a.competitor.Fallback()
		degraded = append(degraded, "competitor")
	}

	if len(degraded) == 3 {
		return nil, ErrAllSourcesFailed
	}

	return &models.ContextBlock{
		Market:          market,
		Twitter:         social,
		Competitor:      competitor,
		Brand:           a.brand,
		Timestamp:       start,
		Degraded:        len(degraded) > 0,
		DegradedSources: degraded,
	}, nil
}
