package epochs

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var (
	// ErrUnknownKind is returned by Registry.Lookup for names that have
	// not been registered.
	ErrUnknownKind = errors.New("unknown epoch kind")

	// ErrDuplicateKind is returned by Registry.Add when a kind with the
	// same name is already registered.
	ErrDuplicateKind = errors.New("epoch kind already registered")
)

// Kind describes one epoch convention as a constant record: the functions
// plus the metadata a consumer needs to present it. There is no hierarchy;
// lookup-by-name over these records replaces dynamic dispatch.
type Kind struct {
	// Name is the registry key, e.g. "chrome" or "windows_file".
	Name string
	// Description is a one-line human-readable summary.
	Description string
	// Reference is the instant a raw value of 0 maps to.
	Reference time.Time

	// Convert turns a raw integer value into a date-time.
	Convert func(int64) (time.Time, error)
	// ConvertFloat is non-nil for kinds whose native representation
	// carries a fractional part (icq days, unix seconds).
	ConvertFloat func(float64) (time.Time, error)
	// Inverse turns a date-time back into a raw integer value. Nil for
	// kinds whose native representation is not an integer.
	Inverse func(time.Time) int64
	// InverseFloat is the fractional counterpart of Inverse.
	InverseFloat func(time.Time) float64
}

// Registry maps kind names to their records.
type Registry struct {
	kinds map[string]Kind
}

// NewRegistry returns a registry preloaded with the builtin kinds.
func NewRegistry() *Registry {
	r := &Registry{kinds: make(map[string]Kind, len(builtinKinds))}
	for _, k := range builtinKinds {
		r.kinds[k.Name] = k
	}
	return r
}

// Add registers an additional kind, typically compiled from a KindSpec.
func (r *Registry) Add(k Kind) error {
	if k.Name == "" {
		return fmt.Errorf("%w: kind has no name", ErrBadSpec)
	}
	if _, exists := r.kinds[k.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateKind, k.Name)
	}
	r.kinds[k.Name] = k
	return nil
}

// Lookup returns the kind registered under name.
func (r *Registry) Lookup(name string) (Kind, error) {
	k, ok := r.kinds[name]
	if !ok {
		return Kind{}, fmt.Errorf("%w: %s", ErrUnknownKind, name)
	}
	return k, nil
}

// Kinds returns all registered kinds sorted by name.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, 0, len(r.kinds))
	for _, k := range r.kinds {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func utc(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

var builtinKinds = []Kind{
	{
		Name:        "apfs",
		Description: "Nanoseconds since the Unix epoch (APFS filesystem)",
		Reference:   utc(1970, time.January, 1),
		Convert:     APFS,
		Inverse:     ToAPFS,
	},
	{
		Name:        "chrome",
		Description: "Microseconds since 1601-01-01 (WebKit browsers)",
		Reference:   utc(1601, time.January, 1),
		Convert:     Chrome,
		Inverse:     ToChrome,
	},
	{
		Name:        "cocoa",
		Description: "Seconds since 2001-01-01 (Apple Cocoa / Core Data)",
		Reference:   utc(2001, time.January, 1),
		Convert:     Cocoa,
		Inverse:     ToCocoa,
	},
	{
		Name:        "google_calendar",
		Description: "Seconds on a 32-day-month calendar from 1969-12-31",
		Reference:   utc(1969, time.December, 31),
		Convert:     GoogleCalendar,
		Inverse:     ToGoogleCalendar,
	},
	{
		Name:         "icq",
		Description:  "Fractional days since 1899-12-30 (ICQ, OLE automation)",
		Reference:    utc(1899, time.December, 30),
		Convert:      func(num int64) (time.Time, error) { return ICQ(float64(num)) },
		ConvertFloat: ICQ,
		InverseFloat: ToICQ,
	},
	{
		Name:        "java",
		Description: "Milliseconds since the Unix epoch (Java, JavaScript)",
		Reference:   utc(1970, time.January, 1),
		Convert:     Java,
		Inverse:     ToJava,
	},
	{
		Name:        "mozilla",
		Description: "Microseconds since the Unix epoch (Firefox databases)",
		Reference:   utc(1970, time.January, 1),
		Convert:     Mozilla,
		Inverse:     ToMozilla,
	},
	{
		Name:        "symbian",
		Description: "Microseconds since the year 0 (Symbian OS)",
		Reference:   utc(0, time.January, 1),
		Convert:     Symbian,
		Inverse:     ToSymbian,
	},
	{
		Name:         "unix",
		Description:  "Seconds since 1970-01-01, fractional seconds accepted",
		Reference:    utc(1970, time.January, 1),
		Convert:      Unix,
		ConvertFloat: UnixFloat,
		Inverse:      ToUnix,
		InverseFloat: ToUnixFloat,
	},
	{
		Name:        "uuid_v1",
		Description: "100 ns ticks since 1582-10-15 (version 1 UUIDs)",
		Reference:   utc(1582, time.October, 15),
		Convert:     UUIDv1,
		Inverse:     ToUUIDv1,
	},
	{
		Name:        "windows_date",
		Description: "100 ns ticks since 0001-01-01 (.NET System.DateTime)",
		Reference:   utc(1, time.January, 1),
		Convert:     WindowsDate,
		Inverse:     ToWindowsDate,
	},
	{
		Name:        "windows_file",
		Description: "100 ns ticks since 1601-01-01 (Windows FILETIME, NTFS)",
		Reference:   utc(1601, time.January, 1),
		Convert:     WindowsFile,
		Inverse:     ToWindowsFile,
	},
}
