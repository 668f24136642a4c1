package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-verdict/internal/verdict"
	"github.com/robalobadob/wordle-verdict/internal/words"
)

func testDict(t *testing.T) *words.List {
	t.Helper()
	l, err := words.New(
		[]string{"crane", "slate", "abide", "trace"},
		[]string{"speed", "adieu", "stare", "crate", "caret", "react", "cater", "brace", "grace", "track", "trice"},
	)
	require.NoError(t, err)
	return l
}

func TestNewDefaults(t *testing.T) {
	g := New(" CRANE ", Options{})
	assert.Equal(t, "crane", g.Answer)
	assert.Equal(t, DefaultRows, g.Rows)
	assert.Equal(t, 5, g.Cols)
	assert.Len(t, g.ID, 36)
	assert.Equal(t, StatePlaying, g.State())
	assert.Equal(t, DefaultRows, g.Remaining())
}

func TestApplyGuessWin(t *testing.T) {
	dict := testDict(t)
	g := New("crane", Options{})

	res, st, err := g.ApplyGuess("trace", dict)
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, st)
	assert.Equal(t, verdict.Result{verdict.Absent, verdict.Correct, verdict.Correct, verdict.Present, verdict.Correct}, res)

	res, st, err = g.ApplyGuess("Crane", dict)
	require.NoError(t, err)
	assert.True(t, res.Solved())
	assert.Equal(t, StateWon, st)
	assert.True(t, g.Finished)
	assert.True(t, g.Won)
	assert.Equal(t, []string{"trace", "crane"}, g.Guesses)

	_, _, err = g.ApplyGuess("slate", dict)
	assert.ErrorIs(t, err, ErrFinished)
}

func TestApplyGuessLoss(t *testing.T) {
	dict := testDict(t)
	g := New("crane", Options{Rows: 2})

	_, st, err := g.ApplyGuess("slate", dict)
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, st)

	_, st, err = g.ApplyGuess("abide", dict)
	require.NoError(t, err)
	assert.Equal(t, StateLost, st)
	assert.True(t, g.Finished)
	assert.False(t, g.Won)
	assert.Equal(t, 0, g.Remaining())
}

func TestApplyGuessValidation(t *testing.T) {
	dict := testDict(t)
	g := New("crane", Options{})

	tests := []struct {
		guess string
		want  error
	}{
		{"cran", ErrInvalidGuess},
		{"cranes", ErrInvalidGuess},
		{"cr4ne", ErrInvalidGuess},
		{"zzzzz", ErrNotInWordList},
	}
	for _, tt := range tests {
		_, st, err := g.ApplyGuess(tt.guess, dict)
		assert.ErrorIs(t, err, tt.want, tt.guess)
		assert.Equal(t, StatePlaying, st)
	}
	assert.Empty(t, g.Guesses, "rejected guesses must not be recorded")
}

func TestApplyGuessNilDictionary(t *testing.T) {
	g := New("crane", Options{})
	_, _, err := g.ApplyGuess("zzzzz", nil)
	assert.NoError(t, err)
}

func TestHardMode(t *testing.T) {
	dict := testDict(t)

	t.Run("correct letter must stay", func(t *testing.T) {
		g := New("crane", Options{Hard: true})
		_, _, err := g.ApplyGuess("trace", dict) // r,a,e correct; c present
		require.NoError(t, err)

		_, _, err = g.ApplyGuess("caret", dict)
		require.ErrorIs(t, err, ErrHardMode)
		assert.Contains(t, err.Error(), "letter 2 must be r")
	})

	t.Run("present letter must be reused", func(t *testing.T) {
		g := New("crane", Options{Hard: true})
		_, _, err := g.ApplyGuess("trace", dict)
		require.NoError(t, err)

		_, _, err = g.ApplyGuess("trice", dict)
		require.ErrorIs(t, err, ErrHardMode)

		_, _, err = g.ApplyGuess("brace", dict)
		require.NoError(t, err)
	})

	t.Run("absent letters are free", func(t *testing.T) {
		g := New("abide", Options{Hard: true})
		_, _, err := g.ApplyGuess("speed", dict) // only e and d revealed
		require.NoError(t, err)

		_, _, err = g.ApplyGuess("adieu", dict)
		require.NoError(t, err)
	})

	t.Run("normal mode ignores hints", func(t *testing.T) {
		g := New("crane", Options{})
		_, _, err := g.ApplyGuess("trace", dict)
		require.NoError(t, err)
		_, _, err = g.ApplyGuess("speed", dict)
		require.NoError(t, err)
	})
}

func TestShare(t *testing.T) {
	dict := testDict(t)
	g := New("crane", Options{})
	_, _, _ = g.ApplyGuess("slate", dict)
	_, _, _ = g.ApplyGuess("crane", dict)

	lines := strings.Split(g.Share(), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "⬛⬛🟩⬛🟩", lines[0])
	assert.Equal(t, "🟩🟩🟩🟩🟩", lines[1])
}
