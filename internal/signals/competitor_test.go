package signals

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/models"
)

type fakeCompetitorProvider struct {
	signals *models.CompetitorSignals
	err     error
	handles []string
	calls   int
}

func (f *fakeCompetitorProvider) FetchCompetitorSignals(_ context.Context, handles []string) (*models.CompetitorSignals, error) {
	f.calls++
	f.handles = handles
	return f.signals, f.err
}

func competitorFixture() *models.CompetitorSignals {
	return &models.CompetitorSignals{
		RecentActivity: []models.CompetitorPost{
			{Handle: "@rivaldesk", Content: "Weekly funding recap is live.", Engagement: 4200, PostedAt: time.Now().Add(-3 * time.Hour)},
		},
		ContentGaps: []string{"stablecoin settlement volumes"},
		FetchedAt:   time.Now(),
	}
}

func TestCompetitorSnapshotPassesHandles(t *testing.T) {
	provider := &fakeCompetitorProvider{signals: competitorFixture()}
	source := NewCompetitorSource(provider, nil, []string{"@rivaldesk", "@chainwatch"}, testLogger())

	cc, err := source.Snapshot(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"@rivaldesk", "@chainwatch"}, provider.handles)
	require.Len(t, cc.RecentActivity, 1)
	require.Equal(t, []string{"stablecoin settlement volumes"}, cc.ContentGaps)
}

func TestCompetitorSnapshotCacheHit(t *testing.T) {
	provider := &fakeCompetitorProvider{signals: competitorFixture()}
	cache := &fakeCache{competitor: competitorFixture()}
	source := NewCompetitorSource(provider, cache, nil, testLogger())

	_, err := source.Snapshot(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, provider.calls)
}

func TestCompetitorSnapshotErrorAndFallback(t *testing.T) {
	provider := &fakeCompetitorProvider{err: errors.New("rate limited")}
	source := NewCompetitorSource(provider, nil, nil, testLogger())

	_, err := source.Snapshot(context.Background())
	var srcErr *SourceError
	require.ErrorAs(t, err, &srcErr)
	require.Equal(t, "competitor", srcErr.Source)

	fallback := source.Fallback()
	require.Empty(t, fallback.RecentActivity)
	require.Empty(t, fallback.ContentGaps)
}
