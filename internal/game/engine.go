// internal/game/engine.go
//
// Game engine for a single session.
// Responsibilities:
//   - Create new games (default 6 rows, columns taken from the answer).
//   - Validate and apply guesses (length, alphabetic, dictionary, hard mode).
//   - Score guesses with verdict.Evaluate.
//   - Track state transitions: playing → won/lost.

package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle-verdict/internal/verdict"
	"github.com/robalobadob/wordle-verdict/internal/words"
)

// DefaultRows is the number of guesses allowed when Options.Rows is zero.
const DefaultRows = 6

var (
	ErrFinished      = errors.New("game finished")
	ErrInvalidGuess  = errors.New("invalid guess")
	ErrNotInWordList = errors.New("not in word list")
	ErrHardMode      = errors.New("hard mode")
)

// Options tune a new game.
type Options struct {
	Rows int
	Hard bool
}

// New constructs a new game for answer.
func New(answer string, opts Options) *Game {
	rows := opts.Rows
	if rows <= 0 {
		rows = DefaultRows
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return &Game{
		ID:      uuid.NewString(),
		Answer:  answer,
		Rows:    rows,
		Cols:    len([]rune(answer)),
		Hard:    opts.Hard,
		Guesses: []string{},
		Results: []verdict.Result{},
	}
}

// ApplyGuess validates and scores a guess, mutating the game state.
//
// Validation rules:
//   - Game must not be finished.
//   - Guess must be exactly g.Cols letters a–z.
//   - Guess must be in dict (nil dict accepts any word).
//   - In hard mode, earlier hints must be honoured.
//
// State transitions:
//   - Every position correct → Finished, Won.
//   - Else the number of guesses reaching g.Rows → Finished (loss).
func (g *Game) ApplyGuess(guess string, dict Dictionary) (verdict.Result, State, error) {
	if g.Finished {
		return nil, g.State(), ErrFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != g.Cols || !words.IsAlpha(guess) {
		return nil, g.State(), fmt.Errorf("%w: want %d letters a-z", ErrInvalidGuess, g.Cols)
	}
	if dict != nil && !dict.IsAllowed(guess) {
		return nil, g.State(), ErrNotInWordList
	}
	if g.Hard {
		if err := g.checkHardMode(guess); err != nil {
			return nil, g.State(), err
		}
	}

	res, err := verdict.Evaluate(g.Answer, guess)
	if err != nil {
		return nil, g.State(), fmt.Errorf("%w: %v", ErrInvalidGuess, err)
	}
	g.Guesses = append(g.Guesses, guess)
	g.Results = append(g.Results, res)

	if res.Solved() {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return res, g.State(), nil
}

// State reports the current lifecycle stage.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Remaining returns how many guesses are left.
func (g *Game) Remaining() int {
	return g.Rows - len(g.Guesses)
}

// Share renders every guess row as a share grid, one line per guess.
func (g *Game) Share() string {
	rows := make([]string, len(g.Results))
	for i, r := range g.Results {
		rows[i] = r.String()
	}
	return strings.Join(rows, "\n")
}
