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

// SocialClient fetches trending topics and viral posts from the social
// aggregator endpoint. The aggregator fronts the X API so this service
// never talks to X directly.
type SocialClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *logrus.Entry
}

// NewSocialClient creates a new social aggregator client.
func NewSocialClient(baseURL, apiKey string, timeout time.Duration, logger *logrus.Logger) *SocialClient {
	return &SocialClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     logger.WithField("component", "social"),
	}
}

// FetchSocialSignals fetches the current trending topics and viral
// posts.
func (c *SocialClient) FetchSocialSignals(ctx context.Context) (*models.SocialSignals, error) {
	url := fmt.Sprintf("%s/v1/social/signals", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var signals models.SocialSignals
	if err := json.NewDecoder(resp.Body).Decode(&signals); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	signals.FetchedAt = time.Now()

	c.logger.WithFields(logrus.Fields{
		"trends": len(signals.TrendingTopics),
		"viral":  len(signals.ViralPosts),
	}).Debug("Fetched social signals")

	return &signals, nil
}
