package epochs

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrBadSpec is returned for a kind declaration that cannot be compiled
// or registered.
var ErrBadSpec = errors.New("invalid epoch kind spec")

// unitTicks maps spec unit names to ticks per second. Days are the one
// unit coarser than a second and are handled separately.
var unitTicks = map[string]int64{
	"seconds":      1,
	"milliseconds": 1000,
	"microseconds": 1_000_000,
	"nanoseconds":  1_000_000_000,
	"ticks":        10_000_000, // 100 ns intervals
}

// KindSpec declares a direct-offset epoch kind as data, so conventions
// beyond the builtin table can be added without code:
//
//	- name: leet
//	  description: Microseconds since the NT epoch
//	  unit: microseconds
//	  offset: -11644473600
//
// Offset is the Unix time, in seconds, of the kind's reference instant.
type KindSpec struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Unit        string `yaml:"unit"`
	Offset      int64  `yaml:"offset"`
}

// ParseKindSpecs decodes a YAML list of kind specs. It does not touch the
// filesystem; callers hand it bytes.
func ParseKindSpecs(data []byte) ([]KindSpec, error) {
	var specs []KindSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSpec, err)
	}
	for _, s := range specs {
		if err := s.validate(); err != nil {
			return nil, err
		}
	}
	return specs, nil
}

func (s KindSpec) validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: missing name", ErrBadSpec)
	}
	if _, ok := unitTicks[s.Unit]; !ok && s.Unit != "days" {
		return fmt.Errorf("%w: kind %q has unsupported unit %q", ErrBadSpec, s.Name, s.Unit)
	}
	return nil
}

// Kind compiles the spec into a registrable Kind over the shared
// conversion arithmetic.
func (s KindSpec) Kind() (Kind, error) {
	if err := s.validate(); err != nil {
		return Kind{}, err
	}

	k := Kind{
		Name:        s.Name,
		Description: s.Description,
		Reference:   time.Unix(s.Offset, 0).UTC(),
	}

	offset := s.Offset
	if s.Unit == "days" {
		k.Convert = func(num int64) (time.Time, error) {
			sec, ok := mulInt64(num, secondsPerDay)
			if !ok {
				return time.Time{}, ErrOutOfRange
			}
			return epochToTime(sec, 1, offset)
		}
		k.Inverse = func(t time.Time) int64 {
			return timeToEpoch(t, 1, offset) / secondsPerDay
		}
		return k, nil
	}

	ticks := unitTicks[s.Unit]
	k.Convert = func(num int64) (time.Time, error) {
		return epochToTime(num, ticks, offset)
	}
	k.Inverse = func(t time.Time) int64 {
		return timeToEpoch(t, ticks, offset)
	}
	return k, nil
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	prod := a * b
	if prod/b != a {
		return 0, false
	}
	return prod, true
}
