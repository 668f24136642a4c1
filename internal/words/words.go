// internal/words/words.go
//
// Word list management for the game engine and the daily challenge.
//
// Word Lists:
//   - "answers": canonical solutions, in file order (the daily index depends on it).
//   - "allowed": valid guesses (always includes answers).
//
// Load behavior:
//   1. answersPath and allowedPath both set: answers from the first, allowed from the second.
//   2. Only allowedPath set: that file is used for both.
//   3. Neither set: embedded defaults (default_small_answers.txt / default_small_allowed.txt).
//
// Constraints:
//   • Words must be WordLength alphabetic letters (a–z); anything else is dropped.
//   • Lines are trimmed and lowercased; blank lines and "#" comments are skipped.

package words

import (
	"bufio"
	"crypto/rand"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
)

// WordLength is the number of letters in every playable word.
const WordLength = 5

// ErrEmptyAnswers is returned when no valid answer word survives loading.
var ErrEmptyAnswers = errors.New("words: answers list is empty")

//go:embed default_small_answers.txt
var embeddedAnswers string

//go:embed default_small_allowed.txt
var embeddedAllowed string

// List is an immutable answers/allowed pair. Safe for concurrent reads.
type List struct {
	answers    []string
	answersSet map[string]struct{}
	allowedSet map[string]struct{} // answers ∪ allowed
}

// Load builds a List from files or the embedded defaults (see package doc).
func Load(answersPath, allowedPath string) (*List, error) {
	switch {
	case answersPath != "" && allowedPath != "":
		ans, err := readWordFile(answersPath)
		if err != nil {
			return nil, err
		}
		all, err := readWordFile(allowedPath)
		if err != nil {
			return nil, err
		}
		return New(ans, all)

	case allowedPath != "":
		all, err := readWordFile(allowedPath)
		if err != nil {
			return nil, err
		}
		return New(all, all)

	default:
		ans, _ := parseWords(strings.NewReader(embeddedAnswers))
		all, _ := parseWords(strings.NewReader(embeddedAllowed))
		return New(ans, all)
	}
}

// New builds a List from in-memory words. Invalid entries are dropped and
// duplicate answers keep their first position.
func New(answers, allowed []string) (*List, error) {
	l := &List{
		answersSet: make(map[string]struct{}, len(answers)),
		allowedSet: make(map[string]struct{}, len(answers)+len(allowed)),
	}
	for _, w := range answers {
		w = normalize(w)
		if !valid(w) {
			continue
		}
		if _, dup := l.answersSet[w]; dup {
			continue
		}
		l.answers = append(l.answers, w)
		l.answersSet[w] = struct{}{}
		l.allowedSet[w] = struct{}{}
	}
	for _, w := range allowed {
		if w = normalize(w); valid(w) {
			l.allowedSet[w] = struct{}{}
		}
	}
	if len(l.answers) == 0 {
		return nil, ErrEmptyAnswers
	}
	return l, nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()
	return parseWords(f)
}

// parseWords reads newline-separated words, skipping blanks and comments.
func parseWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := normalize(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if valid(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

func normalize(w string) string { return strings.TrimSpace(strings.ToLower(w)) }

func valid(w string) bool { return len(w) == WordLength && IsAlpha(w) }

// IsAlpha reports whether s is all lowercase ASCII letters.
func IsAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// RandomAnswer returns a cryptographically random answer.
func (l *List) RandomAnswer() string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.answers))))
	if err != nil {
		return l.answers[0]
	}
	return l.answers[n.Int64()]
}

// Answers returns a copy of the answer list in load order.
func (l *List) Answers() []string {
	return append([]string(nil), l.answers...)
}

// AnswerAt returns the answer at index i modulo the list length.
func (l *List) AnswerAt(i int) string {
	n := len(l.answers)
	return l.answers[((i%n)+n)%n]
}

// IsAllowed reports whether w is a valid guess (answers ∪ allowed).
func (l *List) IsAllowed(w string) bool {
	_, ok := l.allowedSet[normalize(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (l *List) IsAnswer(w string) bool {
	_, ok := l.answersSet[normalize(w)]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *List) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowedSet)
}
