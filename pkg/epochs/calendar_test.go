package epochs

import (
	"errors"
	"testing"
	"time"
)

func TestGoogleCalendar(t *testing.T) {
	got, err := GoogleCalendar(1297899090)
	checkTime(t, got, err, date(2009, time.February, 13, 23, 31, 30, 0))
}

func TestGoogleCalendarReference(t *testing.T) {
	got, err := GoogleCalendar(0)
	checkTime(t, got, err, date(1969, time.December, 31, 0, 0, 0, 0))
}

func TestGoogleCalendarOutOfRange(t *testing.T) {
	if _, err := GoogleCalendar(12978990900000); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange, got %v", err)
	}
}

func TestToGoogleCalendar(t *testing.T) {
	instant := date(2009, time.February, 13, 23, 31, 30, 0)
	if got := ToGoogleCalendar(instant); got != 1297899090 {
		t.Errorf("Expected 1297899090, got %d", got)
	}
}

func TestGoogleCalendarRoundTrip(t *testing.T) {
	raws := []int64{86400, 1297899090, 1297899091}
	for _, raw := range raws {
		converted, err := GoogleCalendar(raw)
		if err != nil {
			t.Fatalf("GoogleCalendar(%d) failed: %v", raw, err)
		}
		if back := ToGoogleCalendar(converted); back != raw {
			t.Errorf("Round-trip of %d came back as %d", raw, back)
		}
	}
}
