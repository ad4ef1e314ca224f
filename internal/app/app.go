package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cryptodoran/DefiAppXStrategy-sub000/internal/api"
	"github.com/cryptodoran/DefiAppXStrategy-sub000/internal/assembly"
	"github.com/cryptodoran/DefiAppXStrategy-sub000/internal/cache"
	"github.com/cryptodoran/DefiAppXStrategy-sub000/internal/external"
	"github.com/cryptodoran/DefiAppXStrategy-sub000/internal/messaging"
	"github.com/cryptodoran/DefiAppXStrategy-sub000/internal/scoring"
	"github.com/cryptodoran/DefiAppXStrategy-sub000/internal/signals"
	"github.com/cryptodoran/DefiAppXStrategy-sub000/internal/suggest"
	"github.com/cryptodoran/DefiAppXStrategy-sub000/internal/websocket"
	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/config"
	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/models"
)

// App represents the main application
type App struct {
	cfg    *config.Config
	logger *logrus.Logger
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// Infrastructure
	redisCache *cache.RedisClient
	natsClient *messaging.NATSClient
	hub        *websocket.Hub

	// Pipeline
	marketSource     *signals.MarketSource
	socialSource     *signals.SocialSource
	competitorSource *signals.CompetitorSource
	assembler        *assembly.Assembler
	scorer           *scoring.Scorer
	generator        *suggest.Generator
	apiServer        *api.Server
}

// New creates a new application instance
func New(cfg *config.Config, logger *logrus.Logger) *App {
	ctx, cancel := context.WithCancel(context.Background())

	return &App{
		cfg:    cfg,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Initialize initializes all application components
func (a *App) Initialize() error {
	if err := a.initializeCache(); err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	if err := a.initializeMessaging(); err != nil {
		return fmt.Errorf("failed to initialize messaging: %w", err)
	}

	a.initializePipeline()
	a.initializeAPIServer()

	return nil
}

// Start starts the application
func (a *App) Start() error {
	if a.cfg.WebSocket.Enabled {
		a.wg.Add(1)
		go func() {
			defer a.wg.Done()
			a.hub.Run(a.ctx)
		}()
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.refreshLoop()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			a.logger.WithError(err).Error("API server error")
		}
	}()

	return nil
}

// Stop gracefully stops the application
func (a *App) Stop() error {
	a.logger.Info("Stopping application...")

	a.cancel()

	if a.apiServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.apiServer.Stop(ctx); err != nil {
			a.logger.WithError(err).Error("Error stopping API server")
		}
		cancel()
	}

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		a.logger.Warn("Timeout waiting for goroutines to finish")
	}

	if a.redisCache != nil {
		if err := a.redisCache.Close(); err != nil {
			a.logger.WithError(err).Error("Error closing Redis")
		}
	}

	if a.natsClient != nil {
		if err := a.natsClient.Close(); err != nil {
			a.logger.WithError(err).Error("Error closing NATS")
		}
	}

	a.logger.Info("Application stopped")
	return nil
}

// refreshLoop periodically reassembles context and regenerates
// suggestions, fanning results out over NATS and the websocket hub.
func (a *App) refreshLoop() {
	ticker := time.NewTicker(a.cfg.Assembly.RefreshInterval)
	defer ticker.Stop()

	// Run one cycle immediately so the dashboard has data at startup.
	a.refreshOnce()

	for {
		select {
		case <-a.ctx.Done():
			return
		case <-ticker.C:
			a.refreshOnce()
		}
	}
}

func (a *App) refreshOnce() {
	ctx, cancel := context.WithTimeout(a.ctx, 30*time.Second)
	defer cancel()

	block, err := a.assembler.Assemble(ctx)
	if err != nil {
		a.logger.WithError(err).Error("Refresh cycle: context assembly failed")
		return
	}

	if err := a.natsClient.PublishContextUpdate(block); err != nil {
		a.logger.WithError(err).Warn("Failed to publish context update")
	}
	a.broadcast("context", block)

	suggestions := a.generator.GenerateFromBlock(block, a.cfg.Assembly.SuggestionLimit)

	if a.redisCache != nil {
		if err := a.redisCache.SetSuggestions(ctx, suggestions, a.cfg.Assembly.RefreshInterval); err != nil {
			a.logger.WithError(err).Warn("Failed to cache suggestions")
		}
	}

	if err := a.natsClient.PublishSuggestions(suggestions); err != nil {
		a.logger.WithError(err).Warn("Failed to publish suggestions")
	}
	a.broadcast("suggestions", suggestions)

	a.logger.WithFields(logrus.Fields{
		"suggestions": len(suggestions),
		"degraded":    block.Degraded,
	}).Info("Refresh cycle complete")
}

func (a *App) broadcast(eventType string, payload interface{}) {
	if a.hub == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		a.logger.WithError(err).Error("Failed to marshal broadcast payload")
		return
	}

	a.hub.Broadcast(eventType, data)
}

// Private initialization methods

func (a *App) initializeCache() error {
	redisClient, err := cache.NewRedisClient(&a.cfg.Redis, &a.cfg.Signals.TTL, a.logger)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	a.redisCache = redisClient

	return nil
}

func (a *App) initializeMessaging() error {
	natsClient, err := messaging.NewNATSClient(&a.cfg.NATS, a.logger)
	if err != nil {
		return fmt.Errorf("failed to connect to NATS: %w", err)
	}
	a.natsClient = natsClient

	return nil
}

func (a *App) initializePipeline() {
	marketProvider, socialProvider, competitorProvider := a.buildProviders()

	a.marketSource = signals.NewMarketSource(marketProvider, a.redisCache, a.logger)
	a.socialSource = signals.NewSocialSource(socialProvider, a.redisCache, a.logger)
	a.competitorSource = signals.NewCompetitorSource(competitorProvider, a.redisCache, a.cfg.Signals.CompetitorHandles, a.logger)

	brand := BrandVoice(&a.cfg.Brand)

	a.assembler = assembly.NewAssembler(
		a.marketSource,
		a.socialSource,
		a.competitorSource,
		brand,
		a.cfg.Assembly.LatencyBudget,
		a.logger,
	)

	a.scorer = scoring.NewScorer()
	a.generator = suggest.NewGenerator(a.assembler, a.scorer, a.logger)
}

// buildProviders selects live providers where endpoints are configured
// and demo providers otherwise.
func (a *App) buildProviders() (signals.MarketProvider, signals.SocialProvider, signals.CompetitorProvider) {
	sig := &a.cfg.Signals

	var market signals.MarketProvider = signals.DemoMarketProvider{}
	var social signals.SocialProvider = signals.DemoSocialProvider{}
	var competitor signals.CompetitorProvider = signals.DemoCompetitorProvider{}

	if sig.DemoMode {
		a.logger.Info("Demo mode forced, using sample signal providers")
		return market, social, competitor
	}

	if sig.MarketAPIURL != "" {
		prices := external.NewCoinGeckoClient(sig.MarketAPIURL, sig.MarketAPIKey, sig.Timeout, a.logger)
		sentiment := external.NewFearGreedClient(sig.FearGreedAPIURL, sig.Timeout, a.logger)
		market = signals.NewLiveMarketProvider(prices, sentiment, a.logger)
	}

	if sig.SocialAPIURL != "" {
		social = external.NewSocialClient(sig.SocialAPIURL, sig.SocialAPIKey, sig.Timeout, a.logger)
	} else {
		a.logger.Info("No social endpoint configured, using sample social provider")
	}

	if sig.CompetitorAPIURL != "" {
		competitor = external.NewCompetitorClient(sig.CompetitorAPIURL, sig.Timeout, a.logger)
	} else {
		a.logger.Info("No competitor endpoint configured, using sample competitor provider")
	}

	return market, social, competitor
}

func (a *App) initializeAPIServer() {
	if a.cfg.WebSocket.Enabled {
		a.hub = websocket.NewHub(&a.cfg.WebSocket, a.logger)
	}

	a.apiServer = api.NewServer(
		a.cfg,
		a.logger,
		a.scorer,
		a.assembler,
		a.generator,
		a.hub,
		a.healthCheck,
	)
}

func (a *App) healthCheck(ctx context.Context) map[string]bool {
	return map[string]bool{
		"redis": a.redisCache != nil && a.redisCache.Health(ctx) == nil,
		"nats":  a.natsClient != nil && a.natsClient.Health() == nil,
	}
}

// BrandVoice builds the effective brand voice from the defaults plus
// environment overrides.
func BrandVoice(cfg *config.BrandConfig) models.BrandVoiceConfig {
	brand := scoring.DefaultBrandVoice()

	if len(cfg.Competitors) > 0 {
		brand.Competitors = cfg.Competitors
	}
	if len(cfg.BlacklistTopics) > 0 {
		brand.Topics.Blacklist = cfg.BlacklistTopics
	}
	if len(cfg.AvoidWords) > 0 {
		brand.Vocabulary.Avoid = cfg.AvoidWords
	}
	if cfg.MaxEmojis > 0 {
		brand.Style.MaxEmojis = cfg.MaxEmojis
	}
	brand.Style.AllowHashtags = cfg.AllowHashtags

	return brand
}
