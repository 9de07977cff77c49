package epochs

import (
	"math"
	"time"
)

const (
	icqOffset     = -2209161600 // 1899-12-30T00:00:00
	secondsPerDay = 24 * 60 * 60
	microsPerDay  = secondsPerDay * 1_000_000
	nanosPerMicro = 1000
)

// ICQ time is the number of days since 1899-12-30, where the fractional
// part of a day carries the time of day. The fraction is resolved to
// microsecond precision, rounding halves away from zero.
func ICQ(days float64) (time.Time, error) {
	if math.IsNaN(days) || math.IsInf(days, 0) {
		return time.Time{}, ErrOutOfRange
	}

	// Day counts beyond the calendar window are rejected before the whole
	// part is narrowed to int64.
	const (
		maxDays = (maxUnixSeconds - icqOffset) / secondsPerDay
		minDays = (minUnixSeconds - icqOffset) / secondsPerDay
	)
	whole, frac := math.Modf(days)
	if whole > maxDays || whole < minDays {
		return time.Time{}, ErrOutOfRange
	}

	micros := int64(math.Round(frac * microsPerDay))
	sec := icqOffset + int64(whole)*secondsPerDay
	t := time.Unix(sec, micros*nanosPerMicro).UTC()
	if !inRange(t) {
		return time.Time{}, ErrOutOfRange
	}
	return t, nil
}

// ToICQ converts t to an ICQ time. The result carries the time of day in
// its fractional part and is subject to float64 resolution.
func ToICQ(t time.Time) float64 {
	sec := float64(t.Unix()-icqOffset) + float64(t.Nanosecond())/1e9
	return sec / secondsPerDay
}

// UnixFloat is Unix time with fractional seconds, e.g. 1234567890.25.
// The fraction is resolved to microsecond precision, rounding halves away
// from zero.
func UnixFloat(sec float64) (time.Time, error) {
	if math.IsNaN(sec) || math.IsInf(sec, 0) {
		return time.Time{}, ErrOutOfRange
	}

	whole, frac := math.Modf(sec)
	if whole > maxUnixSeconds || whole < minUnixSeconds {
		return time.Time{}, ErrOutOfRange
	}

	micros := int64(math.Round(frac * 1e6))
	t := time.Unix(int64(whole), micros*nanosPerMicro).UTC()
	if !inRange(t) {
		return time.Time{}, ErrOutOfRange
	}
	return t, nil
}

// ToUnixFloat converts t to a Unix time with fractional seconds.
func ToUnixFloat(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}
