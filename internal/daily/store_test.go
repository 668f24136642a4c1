package daily

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-verdict/internal/db"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	conn, err := db.OpenAndMigrate(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return NewStore(conn)
}

func TestStoreResultsAndLeaderboard(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	const date = "2026-10-16"

	played, err := s.AlreadyPlayed(ctx, "p1", date)
	require.NoError(t, err)
	assert.False(t, played)

	results := []Result{
		{PlayerID: "p1", Date: date, Guesses: 4, ElapsedMs: 9000, Solved: true},
		{PlayerID: "p2", Date: date, Guesses: 3, ElapsedMs: 9000, Solved: true},
		{PlayerID: "p3", Date: date, Guesses: 5, ElapsedMs: 2000, Solved: true},
		{PlayerID: "p4", Date: date, Guesses: 6, ElapsedMs: 100, Solved: false},
		{PlayerID: "p5", Date: "2026-10-15", Guesses: 1, ElapsedMs: 1, Solved: true},
	}
	for _, r := range results {
		require.NoError(t, s.InsertResult(ctx, r))
	}
	// duplicate is ignored, original kept
	require.NoError(t, s.InsertResult(ctx, Result{PlayerID: "p1", Date: date, Guesses: 1, ElapsedMs: 1, Solved: true}))

	played, err = s.AlreadyPlayed(ctx, "p4", date)
	require.NoError(t, err)
	assert.True(t, played, "a loss still counts as played")

	top, err := s.Leaderboard(ctx, date, 0)
	require.NoError(t, err)
	assert.Equal(t, []LBRow{
		{PlayerID: "p3", Guesses: 5, ElapsedMs: 2000},
		{PlayerID: "p2", Guesses: 3, ElapsedMs: 9000},
		{PlayerID: "p1", Guesses: 4, ElapsedMs: 9000},
	}, top)

	top, err = s.Leaderboard(ctx, date, 1)
	require.NoError(t, err)
	assert.Len(t, top, 1)
}
