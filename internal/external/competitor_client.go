package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/models"
)

// CompetitorClient fetches recent competitor activity and derived
// content gaps from the aggregator endpoint.
type CompetitorClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *logrus.Entry
}

// NewCompetitorClient creates a new competitor aggregator client.
func NewCompetitorClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *CompetitorClient {
	return &CompetitorClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     logger.WithField("component", "competitor"),
	}
}

// FetchCompetitorSignals fetches activity and content gaps for the
// given handles.
func (c *CompetitorClient) FetchCompetitorSignals(ctx context.Context, handles []string) (*models.CompetitorSignals, error) {
	endpoint := fmt.Sprintf("%s/v1/competitors?handles=%s",
		c.baseURL, url.QueryEscape(strings.Join(handles, ",")))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var signals models.CompetitorSignals
	if err := json.NewDecoder(resp.Body).Decode(&signals); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	signals.FetchedAt = time.Now()

	c.logger.WithFields(logrus.Fields{
		"handles": len(handles),
		"posts":   len(signals.RecentActivity),
		"gaps":    len(signals.ContentGaps),
	}).Debug("Fetched competitor signals")

	return &signals, nil
}
