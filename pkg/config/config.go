package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config represents the application configuration
type Config struct {
	Server     ServerConfig     `env:", prefix=SERVER_"`
	Redis      RedisConfig      `env:", prefix=REDIS_"`
	NATS       NATSConfig       `env:", prefix=NATS_"`
	Signals    SignalsConfig    `env:", prefix=SIGNALS_"`
	Assembly   AssemblyConfig   `env:", prefix=ASSEMBLY_"`
	Brand      BrandConfig      `env:", prefix=BRAND_"`
	Security   SecurityConfig   `env:", prefix=SECURITY_"`
	WebSocket  WebSocketConfig  `env:", prefix=WEBSOCKET_"`
	Logging    LoggingConfig    `env:", prefix=LOG_"`
	Monitoring MonitoringConfig `env:", prefix=MONITORING_"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `env:"HOST, default=0.0.0.0"`
	Port         int           `env:"PORT, default=8080"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT, default=30s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT, default=30s"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT, default=120s"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host         string        `env:"HOST, default=localhost"`
	Port         int           `env:"PORT, default=6379"`
	Password     string        `env:"PASSWORD"`
	DB           int           `env:"DB, default=0"`
	PoolSize     int           `env:"POOL_SIZE, default=10"`
	MinIdleConns int           `env:"MIN_IDLE_CONNS, default=5"`
	DialTimeout  time.Duration `env:"DIAL_TIMEOUT, default=5s"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT, default=3s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT, default=3s"`
}

// NATSConfig holds NATS configuration
type NATSConfig struct {
	URL           string        `env:"URL, default=nats://localhost:4222"`
	MaxReconnect  int           `env:"MAX_RECONNECT, default=10"`
	ReconnectWait time.Duration `env:"RECONNECT_WAIT, default=2s"`
	DrainTimeout  time.Duration `env:"DRAIN_TIMEOUT, default=30s"`
}

// SignalsConfig holds signal provider configuration
type SignalsConfig struct {
	MarketAPIURL     string `env:"MARKET_API_URL, default=https://api.coingecko.com/api/v3"`
	MarketAPIKey     string `env:"MARKET_API_KEY"`
	FearGreedAPIURL  string `env:"FEAR_GREED_API_URL, default=https://api.alternative.me"`
	SocialAPIURL     string `env:"SOCIAL_API_URL"`
	SocialAPIKey     string `env:"SOCIAL_API_KEY"`
	CompetitorAPIURL string `env:"COMPETITOR_API_URL"`
	// Competitor handles to watch, comma separated.
	CompetitorHandles []string `env:"COMPETITOR_HANDLES"`
	// DemoMode forces the canned sample providers even when provider
	// URLs are configured.
	DemoMode bool          `env:"DEMO_MODE, default=false"`
	Timeout  time.Duration `env:"TIMEOUT, default=10s"`

	TTL SignalTTLConfig `env:", prefix=TTL_"`
}

// SignalTTLConfig holds per-class cache TTLs. Prices go stale in
// seconds; social and competitor data in minutes.
type SignalTTLConfig struct {
	Market     time.Duration `env:"MARKET, default=30s"`
	Social     time.Duration `env:"SOCIAL, default=5m"`
	Competitor time.Duration `env:"COMPETITOR, default=10m"`
}

// AssemblyConfig holds context assembly configuration
type AssemblyConfig struct {
	// LatencyBudget is the soft deadline for one assembly cycle.
	// Exceeding it is logged and counted, never fatal.
	LatencyBudget   time.Duration `env:"LATENCY_BUDGET, default=500ms"`
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL, default=2m"`
	SuggestionLimit int           `env:"SUGGESTION_LIMIT, default=10"`
}

// BrandConfig holds brand voice overrides supplied via environment
type BrandConfig struct {
	Competitors     []string `env:"COMPETITORS"`
	BlacklistTopics []string `env:"BLACKLIST_TOPICS"`
	AvoidWords      []string `env:"AVOID_WORDS"`
	MaxEmojis       int      `env:"MAX_EMOJIS, default=2"`
	AllowHashtags   bool     `env:"ALLOW_HASHTAGS, default=false"`
}

// SecurityConfig holds security configuration
type SecurityConfig struct {
	CORSEnabled bool     `env:"CORS_ENABLED, default=true"`
	CORSOrigins []string `env:"CORS_ORIGINS, default=*"`
	CORSMethods []string `env:"CORS_METHODS, default=GET,POST,OPTIONS"`
	CORSHeaders []string `env:"CORS_HEADERS, default=*"`
}

// WebSocketConfig holds WebSocket push configuration
type WebSocketConfig struct {
	Enabled         bool          `env:"ENABLED, default=true"`
	ReadBufferSize  int           `env:"READ_BUFFER_SIZE, default=1024"`
	WriteBufferSize int           `env:"WRITE_BUFFER_SIZE, default=1024"`
	PingInterval    time.Duration `env:"PING_INTERVAL, default=30s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT, default=10s"`
	MaxClients      int           `env:"MAX_CLIENTS, default=1000"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `env:"LEVEL, default=info"`
	Format string `env:"FORMAT, default=json"`
	Output string `env:"OUTPUT, default=stdout"`
}

// MonitoringConfig holds monitoring configuration
type MonitoringConfig struct {
	MetricsEnabled     bool `env:"METRICS_ENABLED, default=true"`
	HealthCheckEnabled bool `env:"HEALTH_CHECK_ENABLED, default=true"`
}

// Load loads configuration from environment variables using go-envconfig
func Load() (*Config, error) {
	ctx := context.Background()
	var cfg Config

	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Redis.Host == "" {
		return fmt.Errorf("Redis host is required")
	}

	if c.NATS.URL == "" {
		return fmt.Errorf("NATS URL is required")
	}

	if c.Assembly.LatencyBudget <= 0 {
		return fmt.Errorf("assembly latency budget must be positive")
	}

	if c.Assembly.SuggestionLimit <= 0 {
		return fmt.Errorf("suggestion limit must be positive")
	}

	for _, handle := range c.Signals.CompetitorHandles {
		if strings.TrimSpace(handle) == "" {
			return fmt.Errorf("empty competitor handle configured")
		}
	}

	return nil
}

// GetRedisAddr returns Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// GetServerAddr returns server address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
