package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/cryptodoran/DefiAppXStrategy-sub000/internal/assembly"
	"github.com/cryptodoran/DefiAppXStrategy-sub000/internal/scoring"
	"github.com/cryptodoran/DefiAppXStrategy-sub000/internal/signals"
	"github.com/cryptodoran/DefiAppXStrategy-sub000/internal/suggest"
	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/config"
	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/models"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	market := signals.NewMarketSource(signals.DemoMarketProvider{}, nil, log)
	social := signals.NewSocialSource(signals.DemoSocialProvider{}, nil, log)
	competitor := signals.NewCompetitorSource(signals.DemoCompetitorProvider{}, nil, nil, log)

	assembler := assembly.NewAssembler(market, social, competitor,
		scoring.DefaultBrandVoice(), 500*time.Millisecond, log)
	scorer := scoring.NewScorer()
	generator := suggest.NewGenerator(assembler, scorer, log)

	cfg := &config.Config{
		Assembly: config.AssemblyConfig{SuggestionLimit: 10},
	}

	return NewServer(cfg, log, scorer, assembler, generator, nil, nil)
}

func TestHandleScore(t *testing.T) {
	server := newTestServer(t)

	body, err := json.Marshal(map[string]string{
		"content": "BTC up 12% today. Liquidations hit $340M across exchanges, mostly shorts. Here's what the data shows...",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/score", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var score models.QualityScore
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&score))
	require.GreaterOrEqual(t, score.Overall, 70)
	require.Contains(t, []string{"A", "B"}, score.Grade)
}

func TestHandleScoreInvalidBody(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/score", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleScoreCustomConfig(t *testing.T) {
	server := newTestServer(t)

	cfg := scoring.DefaultBrandVoice()
	cfg.Competitors = []string{"ChartPulse"}

	body, err := json.Marshal(scoreRequest{
		Content: "ChartPulse shipped a terminal update this morning, worth a closer look.",
		Config:  &cfg,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/score", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var score models.QualityScore
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&score))
	require.NotEmpty(t, score.Issues)
	require.Equal(t, models.IssueCompetitorMention, score.Issues[0].Type)
}

func TestHandleSuggestions(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/suggestions?limit=3", nil)
	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Suggestions []models.ContentSuggestion `json:"suggestions"`
		Count       int                        `json:"count"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	require.LessOrEqual(t, payload.Count, 3)
	require.Len(t, payload.Suggestions, payload.Count)
	for _, suggestion := range payload.Suggestions {
		require.NotContains(t, []string{"D", "F"}, suggestion.QualityScore.Grade)
	}
}

func TestHandleSuggestionsInvalidLimit(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/suggestions?limit=abc", nil)
	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleContext(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/context", nil)
	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var block models.ContextBlock
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&block))
	require.False(t, block.Degraded)
	require.NotZero(t, block.Market.BTCPrice)
	require.NotEmpty(t, block.Twitter.TopTrends)
}

func TestHandleTrends(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trends", nil)
	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Trends   []models.TrendingTopic `json:"trends"`
		Degraded bool                   `json:"degraded"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	require.NotEmpty(t, payload.Trends)
	require.False(t, payload.Degraded)
}

func TestHandleHealth(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	require.Equal(t, "healthy", payload["status"])
}
