// internal/store/history.go
//
// Durable game history in SQLite (games table).
// One row per game, owned by a player ID (JWT subject or anonymous cookie).
// Rows carry counters and status only; answers are never written.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/robalobadob/wordle-verdict/internal/game"
)

// tsFormat is fixed width so timestamps sort lexically.
const tsFormat = "2006-01-02T15:04:05.000000Z07:00"

// History records game starts, guesses and outcomes.
type History struct {
	db  *sql.DB
	now func() time.Time
}

// NewHistory wraps an already-migrated database.
func NewHistory(db *sql.DB) *History {
	return &History{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// GameRow is one entry of a player's game list.
type GameRow struct {
	ID         string `json:"id"`
	Mode       string `json:"mode"`
	Status     string `json:"status"`
	Guesses    int    `json:"guesses"`
	StartedAt  string `json:"startedAt"`
	FinishedAt string `json:"finishedAt,omitempty"`
}

// Stats aggregates a player's finished games.
type Stats struct {
	Played       int         `json:"gamesPlayed"`
	Wins         int         `json:"wins"`
	Streak       int         `json:"streak"`
	MaxStreak    int         `json:"maxStreak"`
	Distribution map[int]int `json:"distribution"` // guesses-to-win → count
}

// Start inserts the owner row for a new game.
func (h *History) Start(ctx context.Context, gameID, playerID, mode string) error {
	_, err := h.db.ExecContext(ctx,
		`INSERT INTO games (id, player_id, mode, status, guesses, started_at) VALUES (?,?,?,?,0,?)`,
		gameID, playerID, mode, string(game.StatePlaying), h.now().Format(tsFormat))
	if err != nil {
		return fmt.Errorf("start game %s: %w", gameID, err)
	}
	return nil
}

// RecordGuess bumps the guess counter and, once finished, stores the outcome.
func (h *History) RecordGuess(ctx context.Context, gameID string, state game.State) error {
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `UPDATE games SET guesses = guesses + 1 WHERE id=?`, gameID); err != nil {
		return fmt.Errorf("update guesses: %w", err)
	}
	if state != game.StatePlaying {
		if _, err := tx.ExecContext(ctx, `UPDATE games SET status=?, finished_at=? WHERE id=?`,
			string(state), h.now().Format(tsFormat), gameID); err != nil {
			return fmt.Errorf("finish game: %w", err)
		}
	}
	return tx.Commit()
}

// Recent lists a player's latest games, newest first.
func (h *History) Recent(ctx context.Context, playerID string, limit int) ([]GameRow, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := h.db.QueryContext(ctx, `
        SELECT id, mode, status, guesses, started_at, COALESCE(finished_at,'')
        FROM games WHERE player_id=? ORDER BY started_at DESC, rowid DESC LIMIT ?`, playerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []GameRow{}
	for rows.Next() {
		var gr GameRow
		if err := rows.Scan(&gr.ID, &gr.Mode, &gr.Status, &gr.Guesses, &gr.StartedAt, &gr.FinishedAt); err != nil {
			return nil, err
		}
		out = append(out, gr)
	}
	return out, rows.Err()
}

// Stats computes totals and streaks from finished games in finish order.
func (h *History) Stats(ctx context.Context, playerID string) (Stats, error) {
	st := Stats{Distribution: map[int]int{}}
	rows, err := h.db.QueryContext(ctx, `
        SELECT status, guesses FROM games
        WHERE player_id=? AND status IN (?, ?)
        ORDER BY finished_at ASC, rowid ASC`, playerID, string(game.StateWon), string(game.StateLost))
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var guesses int
		if err := rows.Scan(&status, &guesses); err != nil {
			return st, err
		}
		st.Played++
		if status == string(game.StateWon) {
			st.Wins++
			st.Streak++
			st.Distribution[guesses]++
			if st.Streak > st.MaxStreak {
				st.MaxStreak = st.Streak
			}
		} else {
			st.Streak = 0
		}
	}
	return st, rows.Err()
}

// Claim moves every game owned by from to to (anonymous play picked up by a token holder).
func (h *History) Claim(ctx context.Context, from, to string) (int64, error) {
	if from == "" || to == "" || from == to {
		return 0, nil
	}
	res, err := h.db.ExecContext(ctx, `UPDATE games SET player_id=? WHERE player_id=?`, to, from)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
