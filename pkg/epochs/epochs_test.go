package epochs

import (
	"errors"
	"math"
	"testing"
	"time"
)

// date builds the expected naive instant for assertions.
func date(year int, month time.Month, day, hour, min, sec, nsec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, nsec, time.UTC)
}

func checkTime(t *testing.T, got time.Time, err error, want time.Time) {
	t.Helper()
	if err != nil {
		t.Fatalf("Conversion failed: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestUnixEpoch(t *testing.T) {
	got, err := Unix(0)
	checkTime(t, got, err, date(1970, time.January, 1, 0, 0, 0, 0))
}

func TestUnixCanonical(t *testing.T) {
	got, err := Unix(1234567890)
	checkTime(t, got, err, date(2009, time.February, 13, 23, 31, 30, 0))
}

func TestUnixBeforeEpoch(t *testing.T) {
	got, err := Unix(-1)
	checkTime(t, got, err, date(1969, time.December, 31, 23, 59, 59, 0))

	got, err = Unix(-1234567890)
	checkTime(t, got, err, date(1930, time.November, 18, 0, 28, 30, 0))
}

func TestUnixOutOfRange(t *testing.T) {
	for _, raw := range []int64{maxUnixSeconds + 1, minUnixSeconds - 1, math.MaxInt64, math.MinInt64} {
		if _, err := Unix(raw); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Unix(%d): expected ErrOutOfRange, got %v", raw, err)
		}
	}
}

func TestRangeLimits(t *testing.T) {
	got, err := Unix(maxUnixSeconds)
	checkTime(t, got, err, date(9999, time.December, 31, 23, 59, 59, 0))

	got, err = Unix(minUnixSeconds)
	checkTime(t, got, err, date(0, time.January, 1, 0, 0, 0, 0))
}

func TestMinEdgeRemainder(t *testing.T) {
	// One tick before the reference of the earliest kind must fail, not
	// borrow into a negative year.
	if _, err := Symbian(-1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Symbian(-1): expected ErrOutOfRange, got %v", err)
	}

	got, err := Symbian(999999)
	checkTime(t, got, err, date(0, time.January, 1, 0, 0, 0, 999999000))

	// Same edge through a kind whose reference sits mid-window.
	const chromeFloor = (minUnixSeconds + 11644473600) * 1_000_000
	got, err = Chrome(chromeFloor)
	checkTime(t, got, err, date(0, time.January, 1, 0, 0, 0, 0))
	if _, err := Chrome(chromeFloor - 1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Chrome(%d): expected ErrOutOfRange, got %v", chromeFloor-1, err)
	}
}

func TestShiftOverflow(t *testing.T) {
	// The shift toward a pre-Unix reference must not wrap around.
	if _, err := Chrome(math.MinInt64); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Chrome(MinInt64): expected ErrOutOfRange, got %v", err)
	}
	if _, err := WindowsDate(math.MinInt64); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("WindowsDate(MinInt64): expected ErrOutOfRange, got %v", err)
	}
	if _, err := Cocoa(math.MaxInt64); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Cocoa(MaxInt64): expected ErrOutOfRange, got %v", err)
	}
}

func TestDeterminism(t *testing.T) {
	first, err1 := Chrome(12912187816559001)
	second, err2 := Chrome(12912187816559001)
	if err1 != nil || err2 != nil {
		t.Fatalf("Conversion failed: %v, %v", err1, err2)
	}
	if !first.Equal(second) {
		t.Errorf("Expected identical results, got %v and %v", first, second)
	}
}

func TestMonotonicity(t *testing.T) {
	kinds := map[string]func(int64) (time.Time, error){
		"unix":         Unix,
		"java":         Java,
		"chrome":       Chrome,
		"windows_file": WindowsFile,
	}
	raws := []int64{-1234567890, -1, 0, 1, 999, 1000, 1234567890, 1234567891}

	for name, convert := range kinds {
		var prev time.Time
		havePrev := false
		for _, raw := range raws {
			got, err := convert(raw)
			if err != nil {
				t.Fatalf("%s(%d) failed: %v", name, raw, err)
			}
			if havePrev && got.Before(prev) {
				t.Errorf("%s(%d) = %v went backwards from %v", name, raw, got, prev)
			}
			prev, havePrev = got, true
		}
	}
}
