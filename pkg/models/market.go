package models

import (
	"time"
)

// MarketMood is the discrete market regime derived from price action,
// sentiment and volatility. It is always computed, never stored.
type MarketMood string

const (
	MoodEuphoria MarketMood = "euphoria"
	MoodBullish  MarketMood = "bullish"
	MoodNeutral  MarketMood = "neutral"
	MoodBearish  MarketMood = "bearish"
	MoodPanic    MarketMood = "panic"
	MoodChaos    MarketMood = "chaos"
)

// MarketContext is an immutable snapshot of market conditions used as
// scoring and suggestion input. Regenerated on every assembly cycle.
type MarketContext struct {
	BTCPrice       float64    `json:"btc_price"`
	BTCChange24h   float64    `json:"btc_change_24h"` // percentage
	ETHPrice       float64    `json:"eth_price"`
	ETHChange24h   float64    `json:"eth_change_24h"` // percentage
	Mood           MarketMood `json:"mood"`
	FearGreedIndex int        `json:"fear_greed_index"` // 0-100
	FearGreedLabel string     `json:"fear_greed_label"`
	UpcomingEvents []string   `json:"upcoming_events"`
}

// MarketSignals is the raw provider payload before normalization.
type MarketSignals struct {
	Assets          map[string]AssetQuote `json:"assets"`
	FearGreedIndex  int                   `json:"fear_greed_index"`
	FearGreedLabel  string                `json:"fear_greed_label"`
	VolatilityIndex float64               `json:"volatility_index"` // 0-100
	UpcomingEvents  []string              `json:"upcoming_events"`
	FetchedAt       time.Time             `json:"fetched_at"`
}

// AssetQuote holds price and 24h change for a single asset.
type AssetQuote struct {
	Price     float64 `json:"price"`
	Change24h float64 `json:"change_24h"` // percentage
}
