package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/unowned-ai/epochs/pkg/epochs"
)

// buildRegistry returns the builtin kinds plus whatever the --kinds file
// declares.
func buildRegistry() (*epochs.Registry, error) {
	registry := epochs.NewRegistry()
	if kindsFile == "" {
		return registry, nil
	}

	data, err := os.ReadFile(kindsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read kinds file: %w", err)
	}
	specs, err := epochs.ParseKindSpecs(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse kinds file %s: %w", kindsFile, err)
	}
	for _, spec := range specs {
		kind, err := spec.Kind()
		if err != nil {
			return nil, err
		}
		if err := registry.Add(kind); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// convertRawValue parses a raw command-line value and converts it with the
// given kind. Fractional input routes to the kind's float form; integer
// input parses base-0 so hex tick counts work.
func convertRawValue(kind epochs.Kind, value string) (time.Time, error) {
	lower := strings.ToLower(value)
	if strings.ContainsAny(value, ".eE") && !strings.HasPrefix(lower, "0x") && !strings.HasPrefix(lower, "-0x") {
		if kind.ConvertFloat == nil {
			return time.Time{}, fmt.Errorf("kind %s takes integer values only", kind.Name)
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid numeric value %q: %w", value, err)
		}
		return kind.ConvertFloat(f)
	}

	n, err := strconv.ParseInt(value, 0, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid numeric value %q: %w", value, err)
	}
	return kind.Convert(n)
}

// dateTimeLayouts are the accepted input forms of the 'to' command.
var dateTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

func parseDateTime(value string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date-time %q, want YYYY-MM-DDTHH:MM:SS[.ffffff]", value)
}

// formatDateTime renders a naive instant as YYYY-MM-DDTHH:MM:SS with the
// fractional seconds appended only when present.
func formatDateTime(t time.Time) string {
	s := t.Format("2006-01-02T15:04:05")
	if ns := t.Nanosecond(); ns != 0 {
		s += strings.TrimRight(fmt.Sprintf(".%09d", ns), "0")
	}
	return s
}
