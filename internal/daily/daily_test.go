package daily

import (
	"errors"
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	got := DateKey(time.Date(2026, 3, 2, 5, 0, 0, 0, loc))
	if got != "2026-03-01" {
		t.Fatalf("DateKey = %q, want 2026-03-01", got)
	}
}

func TestParseDateKey(t *testing.T) {
	for _, bad := range []string{"2026-02-30", "2026-2-3", "16/10/2026", ""} {
		if _, err := ParseDateKey(bad); !errors.Is(err, ErrBadDateKey) {
			t.Errorf("ParseDateKey(%q) err = %v, want ErrBadDateKey", bad, err)
		}
	}
	d, err := ParseDateKey("2026-02-28")
	if err != nil {
		t.Fatalf("ParseDateKey: %v", err)
	}
	if DateKey(d) != "2026-02-28" {
		t.Fatalf("round trip = %q", DateKey(d))
	}
}

func TestWordIndex(t *testing.T) {
	day := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)

	if got := WordIndex(day, "salt", 0); got != 0 {
		t.Errorf("WordIndex with empty list = %d, want 0", got)
	}

	a := WordIndex(day, "salt", 1000)
	if b := WordIndex(day.Add(23*time.Hour), "salt", 1000); a != b {
		t.Errorf("same date gave %d and %d", a, b)
	}
	if a < 0 || a >= 1000 {
		t.Errorf("index %d out of range", a)
	}

	// Consecutive days should spread across the list.
	seen := map[int]bool{}
	for i := 0; i < 30; i++ {
		seen[WordIndex(day.AddDate(0, 0, i), "salt", 1000)] = true
	}
	if len(seen) < 20 {
		t.Errorf("only %d distinct indexes over 30 days", len(seen))
	}
}

func TestKeyWordIndex(t *testing.T) {
	day := time.Date(2026, 10, 16, 18, 30, 0, 0, time.UTC)

	got, err := KeyWordIndex("2026-10-16", "salt", 1000)
	if err != nil {
		t.Fatalf("KeyWordIndex: %v", err)
	}
	if want := WordIndex(day, "salt", 1000); got != want {
		t.Errorf("KeyWordIndex = %d, WordIndex = %d", got, want)
	}

	if _, err := KeyWordIndex("2026-13-01", "salt", 1000); !errors.Is(err, ErrBadDateKey) {
		t.Errorf("err = %v, want ErrBadDateKey", err)
	}
}
