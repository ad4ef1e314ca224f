package signals

import (
	"context"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cryptodoran/DefiAppXStrategy-sub000/internal/external"
	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/models"
)

// LiveMarketProvider combines the price and sentiment clients into one
// market signal payload. Prices are required; the fear/greed call is
// best-effort and falls back to a mid reading.
type LiveMarketProvider struct {
	prices    *external.CoinGeckoClient
	sentiment *external.FearGreedClient
	logger    *logrus.Entry
}

// NewLiveMarketProvider creates the live market provider.
func NewLiveMarketProvider(prices *external.CoinGeckoClient, sentiment *external.FearGreedClient, logger *logrus.Logger) *LiveMarketProvider {
	return &LiveMarketProvider{
		prices:    prices,
		sentiment: sentiment,
		logger:    logger.WithField("component", "market-provider"),
	}
}

// FetchMarketSignals fetches quotes and sentiment and derives a crude
// volatility index from the magnitude of the 24h moves.
func (p *LiveMarketProvider) FetchMarketSignals(ctx context.Context) (*models.MarketSignals, error) {
	quotes, err := p.prices.GetQuotes(ctx)
	if err != nil {
		return nil, err
	}

	fgValue, fgLabel := 50, "Neutral"
	if value, label, err := p.sentiment.GetIndex(ctx); err != nil {
		p.logger.WithError(err).Warn("Fear/greed fetch failed, using neutral reading")
	} else {
		fgValue, fgLabel = value, label
	}

	return &models.MarketSignals{
		Assets:          quotes,
		FearGreedIndex:  fgValue,
		FearGreedLabel:  fgLabel,
		VolatilityIndex: volatilityFromQuotes(quotes),
		FetchedAt:       time.Now(),
	}, nil
}

// volatilityFromQuotes approximates a 0-100 volatility index as five
// times the largest absolute 24h move across tracked assets.
func volatilityFromQuotes(quotes map[string]models.AssetQuote) float64 {
	var maxMove float64
	for _, quote := range quotes {
		if move := math.Abs(quote.Change24h); move > maxMove {
			maxMove = move
		}
	}
	return math.Min(maxMove*5, 100)
}
