package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-verdict/internal/db"
	"github.com/robalobadob/wordle-verdict/internal/game"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.OpenAndMigrate(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// steppingClock returns a clock that advances one second per call.
func steppingClock() func() time.Time {
	t := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func playGame(t *testing.T, h *History, id, player string, guesses int, final game.State) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, h.Start(ctx, id, player, "normal"))
	for i := 1; i <= guesses; i++ {
		st := game.StatePlaying
		if i == guesses {
			st = final
		}
		require.NoError(t, h.RecordGuess(ctx, id, st))
	}
}

func TestHistoryRecentAndStats(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(openTestDB(t))
	h.now = steppingClock()

	playGame(t, h, "g1", "p1", 3, game.StateWon)
	playGame(t, h, "g2", "p1", 4, game.StateWon)
	playGame(t, h, "g3", "p1", 6, game.StateLost)
	playGame(t, h, "g4", "p1", 3, game.StateWon)
	playGame(t, h, "g5", "p1", 2, game.StatePlaying)
	playGame(t, h, "x1", "p2", 1, game.StateWon)

	st, err := h.Stats(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 4, st.Played)
	assert.Equal(t, 3, st.Wins)
	assert.Equal(t, 1, st.Streak)
	assert.Equal(t, 2, st.MaxStreak)
	assert.Equal(t, map[int]int{3: 2, 4: 1}, st.Distribution)

	rows, err := h.Recent(ctx, "p1", 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "g5", rows[0].ID)
	assert.Equal(t, "playing", rows[0].Status)
	assert.Empty(t, rows[0].FinishedAt)
	assert.Equal(t, "g4", rows[1].ID)
	assert.Equal(t, 3, rows[1].Guesses)
	assert.NotEmpty(t, rows[1].FinishedAt)
}

func TestHistoryStartDuplicate(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(openTestDB(t))
	require.NoError(t, h.Start(ctx, "g1", "p1", "normal"))
	assert.Error(t, h.Start(ctx, "g1", "p1", "normal"))
}

func TestHistoryClaim(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(openTestDB(t))
	playGame(t, h, "g1", "anon", 2, game.StateWon)
	playGame(t, h, "g2", "anon", 1, game.StatePlaying)

	n, err := h.Claim(ctx, "anon", "anon")
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = h.Claim(ctx, "anon", "user")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	rows, err := h.Recent(ctx, "user", 0)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	rows, err = h.Recent(ctx, "anon", 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
