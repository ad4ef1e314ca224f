package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSuggestionExpired(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(time.Hour)

	withExpiry := ContentSuggestion{ExpiresAt: &deadline}
	require.False(t, withExpiry.Expired(now))
	require.False(t, withExpiry.Expired(deadline))
	require.True(t, withExpiry.Expired(deadline.Add(time.Second)))

	forever := ContentSuggestion{}
	require.False(t, forever.Expired(now.Add(1000*time.Hour)))
}

func TestLifecycleRankOrdering(t *testing.T) {
	stages := []Lifecycle{
		LifecycleBreaking,
		LifecycleHot,
		LifecycleRising,
		LifecycleFading,
		LifecycleDead,
	}

	for i := 1; i < len(stages); i++ {
		require.Greater(t, stages[i].Rank(), stages[i-1].Rank())
	}

	// Unknown stages sort with DEAD so they can never displace a real
	// observed stage.
	require.Equal(t, LifecycleDead.Rank(), Lifecycle("").Rank())
}
