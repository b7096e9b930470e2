package historyrepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/weather-planner/internal/domain/profile"
)

const (
	alice = "0b6c7a52-3c1e-4b8e-9a39-3d2f4f7f1c11"
	bob   = "6f1d8f0e-2b7a-4c55-8d5e-0e6a0a1b2c3d"
)

func TestMemoryRepositoryOrdersNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	day := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Insert(ctx, profile.HistoryEntry{ID: "1", ClientID: alice, ActivityID: "bowling", Date: day}))
	require.NoError(t, repo.Insert(ctx, profile.HistoryEntry{ID: "2", ClientID: alice, ActivityID: "park-picnic", Date: day.Add(48 * time.Hour)}))
	require.NoError(t, repo.Insert(ctx, profile.HistoryEntry{ID: "3", ClientID: bob, ActivityID: "bowling", Date: day}))
	require.NoError(t, repo.Insert(ctx, profile.HistoryEntry{ID: "4", ClientID: alice, ActivityID: "bowling", Date: day, CreatedAt: day.Add(time.Hour)}))

	entries, err := repo.List(ctx, alice, profile.HistoryQuery{})
	require.NoError(t, err)
	require.Equal(t, []string{"2", "4", "1"}, entryIDs(entries))

	entries, err = repo.List(ctx, alice, profile.HistoryQuery{ActivityID: "bowling", Limit: 1})
	require.NoError(t, err)
	require.Equal(t, []string{"4"}, entryIDs(entries))

	entries, err = repo.List(ctx, "nobody", profile.HistoryQuery{})
	require.NoError(t, err)
	require.NotNil(t, entries)
	require.Empty(t, entries)
}

func entryIDs(entries []profile.HistoryEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}
