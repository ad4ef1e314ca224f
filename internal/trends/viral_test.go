package trends

import (
	"testing"
	"time"

	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/models"
	"github.com/stretchr/testify/require"
)

func TestViralScoreKnownValue(t *testing.T) {
	metrics := models.PostMetrics{
		Likes:    45000,
		Retweets: 12000,
		Replies:  8900,
		Quotes:   3500,
	}

	// totalEngagement = 83150, velocity capped at 100 after
	// normalization, engagement rate 1.5398 -> 15.398 normalized.
	got := ViralScore(metrics, 2, 5400000)
	require.Equal(t, 66, got)

	// Pure function, same inputs always reproduce the same score.
	require.Equal(t, got, ViralScore(metrics, 2, 5400000))
}

func TestViralScoreAgeFloor(t *testing.T) {
	metrics := models.PostMetrics{Likes: 100, Retweets: 50}

	// Anything under 30 minutes is scored as if it were 30 minutes old.
	require.Equal(t, ViralScore(metrics, 0.5, 10000), ViralScore(metrics, 0.01, 10000))
	require.Equal(t, ViralScore(metrics, 0.5, 10000), ViralScore(metrics, 0, 10000))
}

func TestViralScoreFollowerFloor(t *testing.T) {
	metrics := models.PostMetrics{Likes: 300, Replies: 40}

	// Tiny accounts are normalized against 1000 followers.
	require.Equal(t, ViralScore(metrics, 3, 1000), ViralScore(metrics, 3, 12))
	require.Equal(t, ViralScore(metrics, 3, 1000), ViralScore(metrics, 3, 0))
}

func TestViralScoreMonotonicInEngagement(t *testing.T) {
	base := models.PostMetrics{Likes: 200, Retweets: 80, Replies: 60, Quotes: 20}
	baseScore := ViralScore(base, 4, 25000)

	cases := []struct {
		name    string
		metrics models.PostMetrics
	}{
		{"more likes", models.PostMetrics{Likes: 2000, Retweets: 80, Replies: 60, Quotes: 20}},
		{"more retweets", models.PostMetrics{Likes: 200, Retweets: 800, Replies: 60, Quotes: 20}},
		{"more replies", models.PostMetrics{Likes: 200, Retweets: 80, Replies: 600, Quotes: 20}},
		{"more quotes", models.PostMetrics{Likes: 200, Retweets: 80, Replies: 60, Quotes: 200}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.GreaterOrEqual(t, ViralScore(tc.metrics, 4, 25000), baseScore)
		})
	}
}

func TestViralScoreWeightSwitchesAtSixHours(t *testing.T) {
	// High velocity, low engagement rate: the young post should score
	// higher because velocity carries 60% of the weight under 6 hours.
	metrics := models.PostMetrics{Likes: 8000, Retweets: 1000}

	young := ViralScore(metrics, 5, 5000000)
	old := ViralScore(metrics, 7, 5000000)
	require.Greater(t, young, old)
}

func TestEngagementVelocityUsesWeightedTotal(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	postedAt := now.Add(-2 * time.Hour)

	metrics := models.PostMetrics{Likes: 100, Retweets: 50, Replies: 20, Quotes: 10}
	// (100 + 100 + 20 + 15) / 2
	require.InDelta(t, 117.5, EngagementVelocity(metrics, postedAt, now), 0.001)
}

func TestEngagementVelocityFreshPostFloor(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	postedAt := now.Add(-5 * time.Minute)

	metrics := models.PostMetrics{Likes: 100}
	// Divided by the 0.5h floor, not by 5 minutes.
	require.InDelta(t, 200, EngagementVelocity(metrics, postedAt, now), 0.001)
}

func TestQTOpportunityMatchesViralScore(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	post := models.ViralPost{
		Author:   models.PostAuthor{Handle: "@whale_alerts", Followers: 840000},
		Metrics:  models.PostMetrics{Likes: 12000, Retweets: 4000, Replies: 900, Quotes: 600},
		PostedAt: now.Add(-90 * time.Minute),
	}

	require.Equal(t, ViralScore(post.Metrics, 1.5, 840000), QTOpportunity(post, now))
}
