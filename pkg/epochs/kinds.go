package epochs

import "time"

// Unix offsets of the reference instants the builtin kinds count from.
const (
	chromeOffset      = -11644473600 // 1601-01-01T00:00:00
	cocoaOffset       = 978307200    // 2001-01-01T00:00:00
	symbianOffset     = -62167219200 // 0000-01-01T00:00:00
	uuidV1Offset      = -12219292800 // 1582-10-15T00:00:00
	windowsDateOffset = -62135596800 // 0001-01-01T00:00:00
	windowsFileOffset = -11644473600 // 1601-01-01T00:00:00
)

// APFS time is the number of nanoseconds since the Unix epoch.
func APFS(num int64) (time.Time, error) {
	return epochToTime(num, 1_000_000_000, 0)
}

// ToAPFS converts t to an APFS time.
func ToAPFS(t time.Time) int64 {
	return timeToEpoch(t, 1_000_000_000, 0)
}

// Chrome time (WebKit browsers, including Chrome) is the number of
// microseconds since 1601-01-01, which is 11,644,473,600 seconds before
// the Unix epoch. A single raw value therefore packs whole seconds and a
// microsecond remainder; the conversion splits it by dividing by 1e6.
func Chrome(num int64) (time.Time, error) {
	return epochToTime(num, 1_000_000, chromeOffset)
}

// ToChrome converts t to a Chrome time.
func ToChrome(t time.Time) int64 {
	return timeToEpoch(t, 1_000_000, chromeOffset)
}

// Cocoa time is the number of seconds since 2001-01-01, which is
// 978,307,200 seconds after the Unix epoch.
func Cocoa(num int64) (time.Time, error) {
	return epochToTime(num, 1, cocoaOffset)
}

// ToCocoa converts t to a Cocoa time.
func ToCocoa(t time.Time) int64 {
	return timeToEpoch(t, 1, cocoaOffset)
}

// Java time is the number of milliseconds since the Unix epoch.
func Java(num int64) (time.Time, error) {
	return epochToTime(num, 1000, 0)
}

// ToJava converts t to a Java time.
func ToJava(t time.Time) int64 {
	return timeToEpoch(t, 1000, 0)
}

// Mozilla time (e.g. Firefox places.sqlite) is the number of microseconds
// since the Unix epoch.
func Mozilla(num int64) (time.Time, error) {
	return epochToTime(num, 1_000_000, 0)
}

// ToMozilla converts t to a Mozilla time.
func ToMozilla(t time.Time) int64 {
	return timeToEpoch(t, 1_000_000, 0)
}

// Symbian time is the number of microseconds since the year 0, which is
// 62,167,219,200 seconds before the Unix epoch.
func Symbian(num int64) (time.Time, error) {
	return epochToTime(num, 1_000_000, symbianOffset)
}

// ToSymbian converts t to a Symbian time.
func ToSymbian(t time.Time) int64 {
	return timeToEpoch(t, 1_000_000, symbianOffset)
}

// Unix time is the number of seconds since 1970-01-01. Negative values
// are instants before the epoch.
func Unix(num int64) (time.Time, error) {
	return epochToTime(num, 1, 0)
}

// ToUnix converts t to a Unix time.
func ToUnix(t time.Time) int64 {
	return timeToEpoch(t, 1, 0)
}

// UUIDv1 time is the number of hectonanoseconds (100 ns ticks) since
// 1582-10-15, which is 12,219,292,800 seconds before the Unix epoch.
// This is the 60-bit timestamp embedded in version 1 UUIDs (RFC 4122).
func UUIDv1(num int64) (time.Time, error) {
	return epochToTime(num, 10_000_000, uuidV1Offset)
}

// ToUUIDv1 converts t to a UUID v1 time.
func ToUUIDv1(t time.Time) int64 {
	return timeToEpoch(t, 10_000_000, uuidV1Offset)
}

// WindowsDate time (.NET System.DateTime ticks) is the number of
// hectonanoseconds since 0001-01-01, which is 62,135,596,800 seconds
// before the Unix epoch.
func WindowsDate(num int64) (time.Time, error) {
	return epochToTime(num, 10_000_000, windowsDateOffset)
}

// ToWindowsDate converts t to a Windows date time.
func ToWindowsDate(t time.Time) int64 {
	return timeToEpoch(t, 10_000_000, windowsDateOffset)
}

// WindowsFile time (FILETIME, as seen in NTFS and the registry) is the
// number of hectonanoseconds since 1601-01-01, which is 11,644,473,600
// seconds before the Unix epoch.
func WindowsFile(num int64) (time.Time, error) {
	return epochToTime(num, 10_000_000, windowsFileOffset)
}

// ToWindowsFile converts t to a Windows file time.
func ToWindowsFile(t time.Time) int64 {
	return timeToEpoch(t, 10_000_000, windowsFileOffset)
}
