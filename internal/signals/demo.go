package signals

import (
	"context"
	"time"

	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/models"
)

// Demo providers return canned fixtures. They back the dashboard's
// sample-data mode and keep the CLI usable with no provider endpoints
// configured.

// DemoMarketProvider serves a fixed bullish market payload.
type DemoMarketProvider struct{}

// FetchMarketSignals returns the canned market payload.
func (DemoMarketProvider) FetchMarketSignals(_ context.Context) (*models.MarketSignals, error) {
	return &models.MarketSignals{
		Assets: map[string]models.AssetQuote{
			"BTC": {Price: 97250, Change24h: 4.2},
			"ETH": {Price: 3480, Change24h: 5.8},
		},
		FearGreedIndex:  72,
		FearGreedLabel:  "Greed",
		VolatilityIndex: 38,
		UpcomingEvents:  []string{"FOMC minutes Wednesday", "Monthly options expiry Friday"},
		FetchedAt:       time.Now(),
	}, nil
}

// DemoSocialProvider serves canned trends and viral posts with ages
// relative to the current instant so lifecycle classification stays
// meaningful.
type DemoSocialProvider struct{}

// FetchSocialSignals returns the canned social payload.
func (DemoSocialProvider) FetchSocialSignals(_ context.Context) (*models.SocialSignals, error) {
	now := time.Now()

	return &models.SocialSignals{
		TrendingTopics: []models.TrendingTopic{
			{
				ID:                "trend-liquidations",
				Name:              "liquidations",
				TweetVelocity:     8400,
				PeakVelocity:      8400,
				RelevanceScore:    88,
				ViralityPotential: 82,
				StartedAt:         now.Add(-35 * time.Minute),
				Category:          "market",
				SuggestedAngles: []models.ContentAngle{
					{
						Hook:   "Shorts just paid for breakfast: $340M liquidated in 4 hours, 81% of it short positions. The squeeze math from here is simple.",
						Angle:  "liquidation cascade breakdown",
						Format: "post",
					},
					{
						Hook:   "Everyone watching the price, nobody watching open interest. Funding flipped positive an hour before the move.",
						Angle:  "what the data showed first",
						Format: "thread",
					},
				},
			},
			{
				ID:                "trend-etf-flows",
				Name:              "ETF flows",
				TweetVelocity:     2100,
				PeakVelocity:      3600,
				RelevanceScore:    76,
				ViralityPotential: 64,
				StartedAt:         now.Add(-7 * time.Hour),
				Category:          "market",
				SuggestedAngles: []models.ContentAngle{
					{
						Hook:   "Spot ETF inflows hit $890M this week, the third highest print since launch. Supply on exchanges keeps drifting down.",
						Angle:  "flows vs supply analysis",
						Format: "post",
					},
				},
			},
			{
				ID:                "trend-memecoin-casino",
				Name:              "memecoin season",
				TweetVelocity:     5200,
				PeakVelocity:      12400,
				RelevanceScore:    41,
				ViralityPotential: 77,
				StartedAt:         now.Add(-3 * time.Hour),
				Category:          "culture",
			},
		},
		ViralPosts: []models.ViralPost{
			{
				ID: "viral-liq-map",
				Author: models.PostAuthor{
					Handle:    "@cryptoquant_data",
					Followers: 840000,
					Verified:  true,
				},
				Content:  "The liquidation heatmap everyone needs to see right now.",
				Metrics:  models.PostMetrics{Likes: 28400, Retweets: 6200, Replies: 2100, Quotes: 1400},
				PostedAt: now.Add(-90 * time.Minute),
				SuggestedQTs: []models.SuggestedQT{
					{
						Angle: "add the missing context",
						Draft: "Good map, but it misses the funding side: perp funding flipped positive 40 minutes before the cascade. That data was the real tell.",
					},
				},
			},
			{
				ID: "viral-macro-take",
				Author: models.PostAuthor{
					Handle:    "@macro_threads",
					Followers: 220000,
					Verified:  false,
				},
				Content:  "Everyone is wrong about what the Fed does next. A thread.",
				Metrics:  models.PostMetrics{Likes: 3100, Retweets: 840, Replies: 600, Quotes: 240},
				PostedAt: now.Add(-9 * time.Hour),
				SuggestedQTs: []models.SuggestedQT{
					{
						Angle: "counter with data",
						Draft: "Rates markets disagree: futures price an 84% hold. The interesting trade is in what crypto does if that 16% hits.",
					},
				},
			},
		},
		FetchedAt: now,
	}, nil
}

// DemoCompetitorProvider serves canned competitor activity.
type DemoCompetitorProvider struct{}

// FetchCompetitorSignals returns the canned competitor payload.
func (DemoCompetitorProvider) FetchCompetitorSignals(_ context.Context, handles []string) (*models.CompetitorSignals, error) {
	now := time.Now()

	activity := []models.CompetitorPost{
		{
			Handle:     "@rival_research",
			Content:    "Our weekly market wrap is live.",
			Engagement: 4200,
			PostedAt:   now.Add(-5 * time.Hour),
			Topic:      "market wrap",
		},
		{
			Handle:     "@chain_signals",
			Content:    "New dashboard: exchange netflows in real time.",
			Engagement: 6800,
			PostedAt:   now.Add(-11 * time.Hour),
			Topic:      "product",
		},
	}

	return &models.CompetitorSignals{
		RecentActivity: activity,
		ContentGaps: []string{
			"nobody has covered ETF flow concentration by issuer",
			"no competitor has a take on the funding rate divergence",
		},
		FetchedAt: now,
	}, nil
}
