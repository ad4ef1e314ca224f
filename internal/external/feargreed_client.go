package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// FearGreedClient fetches the crypto fear & greed index from an
// alternative.me compatible endpoint.
type FearGreedClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *logrus.Entry
}

// fearGreedResponse mirrors the /fng/ payload.
type fearGreedResponse struct {
	Data []struct {
		Value               string `json:"value"`
		ValueClassification string `json:"value_classification"`
	} `json:"data"`
}

// NewFearGreedClient creates a new fear & greed client.
func NewFearGreedClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *FearGreedClient {
	return &FearGreedClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     logger.WithField("component", "feargreed"),
	}
}

// GetIndex fetches the latest fear & greed reading.
func (c *FearGreedClient) GetIndex(ctx context.Context) (value int, label string, err error) {
	url := fmt.Sprintf("%s/fng/?limit=1", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return 0, "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, "", fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var data fearGreedResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return 0, "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(data.Data) == 0 {
		return 0, "", fmt.Errorf("empty fear/greed response")
	}

	value, err = strconv.Atoi(data.Data[0].Value)
	if err != nil {
		return 0, "", fmt.Errorf("invalid fear/greed value %q: %w", data.Data[0].Value, err)
	}

	c.logger.WithFields(logrus.Fields{
		"value": value,
		"label": data.Data[0].ValueClassification,
	}).Debug("Fetched fear/greed index")

	return value, data.Data[0].ValueClassification, nil
}
