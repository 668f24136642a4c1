// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - State: coarse lifecycle of a game (playing/won/lost).
//   - Game: state for a single in-progress or finished game.
//   - Dictionary: the word lookup a guess is validated against.

package game

import "github.com/robalobadob/wordle-verdict/internal/verdict"

// State is the lifecycle stage of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Game holds the state of a single game session.
type Game struct {
	ID       string           `json:"id"`       // UUID
	Answer   string           `json:"-"`        // The solution word (always lowercase).
	Rows     int              `json:"rows"`     // Maximum number of guesses allowed.
	Cols     int              `json:"cols"`     // Number of letters per word.
	Hard     bool             `json:"hard"`     // Revealed hints must be reused.
	Guesses  []string         `json:"guesses"`  // Guesses made so far (lowercased).
	Results  []verdict.Result `json:"results"`  // Index-aligned with Guesses.
	Finished bool             `json:"finished"` // True once the game is over (won or lost).
	Won      bool             `json:"won"`      // True if the game was finished with a win.
}

// Dictionary reports whether a word may be guessed.
type Dictionary interface {
	IsAllowed(w string) bool
}
