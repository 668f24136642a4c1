// Package daily implements the once-per-day challenge: deterministic word
// selection per UTC date and persistence of results for the leaderboard.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"time"
)

// KeyLayout is the date key format, one key per UTC day.
const KeyLayout = "2006-01-02"

// ErrBadDateKey is returned for keys that are not a real YYYY-MM-DD date.
var ErrBadDateKey = errors.New("daily: date key must be YYYY-MM-DD")

// DateKey returns the UTC day of t.
func DateKey(t time.Time) string {
	return t.UTC().Format(KeyLayout)
}

// ParseDateKey validates a key and returns midnight UTC of that day.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(KeyLayout, key, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadDateKey, key)
	}
	return t, nil
}

// WordIndex picks the answer index for the UTC day containing t.
func WordIndex(t time.Time, salt string, answersLen int) int {
	return keyIndex(DateKey(t), salt, answersLen)
}

// KeyWordIndex is WordIndex for a date key supplied by a client.
func KeyWordIndex(key, salt string, answersLen int) (int, error) {
	if _, err := ParseDateKey(key); err != nil {
		return 0, err
	}
	return keyIndex(key, salt, answersLen), nil
}

// keyIndex maps HMAC-SHA256(salt, key) onto [0, n).
func keyIndex(key, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(key))
	return int(binary.BigEndian.Uint64(mac.Sum(nil)[:8]) % uint64(n))
}
