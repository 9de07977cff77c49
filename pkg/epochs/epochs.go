// Package epochs converts numeric epoch timestamps of various provenances
// (Unix, Chrome/WebKit, Cocoa, Windows FILETIME, ...) into naive calendar
// date-times, represented as time.Time values pinned to UTC.
//
// Every converter is a pure function of its input: no clock reads, no I/O,
// no shared state. All of them are safe for concurrent use.
package epochs

import (
	"errors"
	"time"
)

// ErrOutOfRange is returned when a conversion would land outside the
// representable calendar window. It is the only failure a builtin
// converter reports.
var ErrOutOfRange = errors.New("resulting date-time is out of range")

// Converted instants must fall within years 0 through 9999. time.Time has
// no hard calendar edge of its own, so without an explicit window extreme
// inputs would wrap into garbage dates instead of failing. The low edge is
// the Symbian reference instant, the earliest epoch in the builtin table.
const (
	minUnixSeconds = -62167219200 // 0000-01-01T00:00:00
	maxUnixSeconds = 253402300799 // 9999-12-31T23:59:59
)

const nanosPerSecond = int64(time.Second)

// epochToTime converts raw ticks counted at unitsPerSecond from the
// reference instant refUnix (expressed as Unix seconds, negative for
// pre-1970 epochs) into a UTC time.Time. The raw value splits into whole
// seconds and remainder ticks; a negative remainder borrows one second so
// the window check below sees the true whole-second part, not a value
// time.Unix would silently push across the edge.
func epochToTime(raw, unitsPerSecond, refUnix int64) (time.Time, error) {
	sec := raw / unitsPerSecond
	rem := raw % unitsPerSecond
	if rem < 0 {
		sec--
		rem += unitsPerSecond
	}
	nsec := rem * (nanosPerSecond / unitsPerSecond)

	shifted, ok := addInt64(sec, refUnix)
	if !ok || shifted < minUnixSeconds || shifted > maxUnixSeconds {
		return time.Time{}, ErrOutOfRange
	}
	return time.Unix(shifted, nsec).UTC(), nil
}

// timeToEpoch is the inverse of epochToTime. Sub-tick precision in t is
// truncated, so round-trips are exact for any value epochToTime produced.
func timeToEpoch(t time.Time, unitsPerSecond, refUnix int64) int64 {
	sec := t.Unix() - refUnix
	return sec*unitsPerSecond + int64(t.Nanosecond())/(nanosPerSecond/unitsPerSecond)
}

// inRange reports whether t falls within the representable window.
func inRange(t time.Time) bool {
	sec := t.Unix()
	return sec >= minUnixSeconds && sec <= maxUnixSeconds
}

func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}
