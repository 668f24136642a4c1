// internal/verdict/verdict.go
//
// Wordle-style guess evaluation.
// Responsibilities:
//   - Classify every guessed character as correct, present, or absent.
//   - Account for duplicate letters: an answer occurrence is matched at most once.
//
// Scoring is two-pass:
//   Pass 1: exact positional matches are marked correct; every other answer
//           character goes into a remaining-count pool.
//   Pass 2: left to right, each non-correct guess character takes one unit from
//           the pool if any is left (present), else stays absent.
//
// Exact matches are resolved before any present check, so a misplaced duplicate
// can never steal the occurrence that an exact match needs.

package verdict

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Verdict is the per-position classification of a guessed character.
type Verdict string

const (
	Absent  Verdict = "absent"
	Present Verdict = "present"
	Correct Verdict = "correct"
)

var (
	// ErrLengthMismatch is returned when answer and guess differ in length.
	ErrLengthMismatch = errors.New("verdict: guess and answer lengths differ")
	// ErrUnknownVerdict is returned by ParseVerdict for an unrecognised tag.
	ErrUnknownVerdict = errors.New("verdict: unknown verdict")
)

// ParseVerdict converts a tag ("correct", "present", "absent") into a Verdict.
func ParseVerdict(s string) (Verdict, error) {
	switch v := Verdict(strings.ToLower(strings.TrimSpace(s))); v {
	case Absent, Present, Correct:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVerdict, s)
}

// Code returns the compact numeric form: 0=absent, 1=present, 2=correct.
func (v Verdict) Code() int {
	switch v {
	case Correct:
		return 2
	case Present:
		return 1
	}
	return 0
}

// UnmarshalJSON rejects tags other than the three known verdicts.
func (v *Verdict) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseVerdict(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Result is the ordered list of verdicts, index-aligned with the guess.
type Result []Verdict

// Evaluate scores guess against answer.
// Characters are compared as runes. Inputs of different rune length are
// rejected with ErrLengthMismatch. The returned Result is freshly allocated
// and never shared.
func Evaluate(answer, guess string) (Result, error) {
	a, g := []rune(answer), []rune(guess)
	if len(a) != len(g) {
		return nil, fmt.Errorf("%w: answer has %d, guess has %d", ErrLengthMismatch, len(a), len(g))
	}

	res := make(Result, len(g))
	remaining := make(map[rune]int, len(a))

	// Pass 1: exact matches; pool everything else from the answer.
	for i := range g {
		if g[i] == a[i] {
			res[i] = Correct
			continue
		}
		res[i] = Absent
		remaining[a[i]]++
	}

	// Pass 2: misplaced letters, consuming from the pool left to right.
	for i := range g {
		if res[i] == Correct {
			continue
		}
		if remaining[g[i]] > 0 {
			res[i] = Present
			remaining[g[i]]--
		}
	}
	return res, nil
}

// Solved reports whether every position is correct. An empty result is not solved.
func (r Result) Solved() bool {
	if len(r) == 0 {
		return false
	}
	for _, v := range r {
		if v != Correct {
			return false
		}
	}
	return true
}

// Count returns how many positions hold v.
func (r Result) Count(v Verdict) int {
	n := 0
	for _, x := range r {
		if x == v {
			n++
		}
	}
	return n
}

// Codes returns the numeric form of every verdict (see Verdict.Code).
func (r Result) Codes() []int {
	out := make([]int, len(r))
	for i, v := range r {
		out[i] = v.Code()
	}
	return out
}

// String renders the result as a share-grid row.
func (r Result) String() string {
	var b strings.Builder
	for _, v := range r {
		switch v {
		case Correct:
			b.WriteString("🟩")
		case Present:
			b.WriteString("🟨")
		default:
			b.WriteString("⬛")
		}
	}
	return b.String()
}
