package epochs

import "time"

// googleBase is the Google Calendar reference instant. The count starts a
// day before the Unix epoch.
var googleBase = time.Date(1969, time.December, 31, 0, 0, 0, 0, time.UTC)

// GoogleCalendar time counts seconds on a calendar of 32-day months from
// 1969-12-31. The raw value decomposes into whole 32-day "months", leftover
// days, and leftover seconds; the months then advance the real calendar
// month by month, so day and month boundaries are honored rather than
// treated as fixed-width.
func GoogleCalendar(num int64) (time.Time, error) {
	totalDays := num / secondsPerDay
	seconds := num % secondsPerDay

	months := totalDays / 32
	days := totalDays % 32

	years := months / 12
	months %= 12
	if years > 9999 || years < -9999 {
		return time.Time{}, ErrOutOfRange
	}

	t := googleBase.AddDate(0, 0, int(days))
	t = t.AddDate(int(years), int(months), 0)
	t = t.Add(time.Duration(seconds) * time.Second)
	if !inRange(t) {
		return time.Time{}, ErrOutOfRange
	}
	return t, nil
}

// ToGoogleCalendar converts t to a Google Calendar time.
func ToGoogleCalendar(t time.Time) int64 {
	year, month, day := t.Date()
	months := (int64(year)-1970)*12 + int64(month) - 1
	days := months*32 + int64(day)
	hours := days*24 + int64(t.Hour())
	minutes := hours*60 + int64(t.Minute())
	return minutes*60 + int64(t.Second())
}
