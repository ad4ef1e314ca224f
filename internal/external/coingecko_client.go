package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/models"
)

// CoinGeckoClient fetches spot prices and 24h changes for the tracked
// assets.
type CoinGeckoClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *logrus.Entry

	// Rate limiting: the free tier allows roughly 30 calls/min.
	rateLimiter chan struct{}
}

// coinIDs maps CoinGecko coin IDs to the asset symbols used in the
// market context.
var coinIDs = map[string]string{
	"bitcoin":  "BTC",
	"ethereum": "ETH",
}

// simplePriceResponse mirrors the /simple/price payload.
type simplePriceResponse map[string]struct {
	USD          float64 `json:"usd"`
	USDChange24h float64 `json:"usd_24h_change"`
}

// NewCoinGeckoClient creates a new CoinGecko client.
func NewCoinGeckoClient(baseURL, apiKey string, timeout time.Duration, logger *logrus.Logger) *CoinGeckoClient {
	client := &CoinGeckoClient{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     baseURL,
		apiKey:      apiKey,
		logger:      logger.WithField("component", "coingecko"),
		rateLimiter: make(chan struct{}, 1),
	}

	go client.rateLimitWorker()

	return client
}

// rateLimitWorker refills one request token every 2 seconds.
func (c *CoinGeckoClient) rateLimitWorker() {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		select {
		case c.rateLimiter <- struct{}{}:
		default:
		}
	}
}

// GetQuotes fetches current USD price and 24h change for the tracked
// assets, keyed by symbol.
func (c *CoinGeckoClient) GetQuotes(ctx context.Context) (map[string]models.AssetQuote, error) {
	select {
	case <-c.rateLimiter:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	url := fmt.Sprintf("%s/simple/price?ids=bitcoin,ethereum&vs_currencies=usd&include_24hr_change=true", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if c.apiKey != "" {
		req.Header.Set("x-cg-demo-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var data simplePriceResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	quotes := make(map[string]models.AssetQuote, len(coinIDs))
	for coinID, symbol := range coinIDs {
		entry, ok := data[coinID]
		if !ok {
			continue
		}
		quotes[symbol] = models.AssetQuote{
			Price:     entry.USD,
			Change24h: entry.USDChange24h,
		}
	}

	if len(quotes) == 0 {
		return nil, fmt.Errorf("no quotes in response")
	}

	c.logger.WithField("assets", len(quotes)).Debug("Fetched quotes from CoinGecko")

	return quotes, nil
}
