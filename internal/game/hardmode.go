package game

import (
	"fmt"

	"github.com/robalobadob/wordle-verdict/internal/verdict"
)

// checkHardMode enforces hints from every earlier guess:
//   - a correct letter must stay in its position;
//   - a letter revealed k times (correct or present) must appear at least k times.
func (g *Game) checkHardMode(guess string) error {
	next := []rune(guess)
	have := make(map[rune]int, len(next))
	for _, r := range next {
		have[r]++
	}

	for gi, prev := range g.Guesses {
		res := g.Results[gi]
		letters := []rune(prev)

		for i, v := range res {
			if v == verdict.Correct && next[i] != letters[i] {
				return fmt.Errorf("%w: letter %d must be %c", ErrHardMode, i+1, letters[i])
			}
		}

		need := make(map[rune]int, len(letters))
		for i, v := range res {
			if v != verdict.Absent {
				need[letters[i]]++
			}
		}
		for i, v := range res {
			r := letters[i]
			if v != verdict.Absent && have[r] < need[r] {
				if need[r] == 1 {
					return fmt.Errorf("%w: guess must contain %c", ErrHardMode, r)
				}
				return fmt.Errorf("%w: guess must contain %c %d times", ErrHardMode, r, need[r])
			}
		}
	}
	return nil
}
