package mcp

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/unowned-ai/epochs/pkg/epochs"
)

// convertRaw parses a raw value carried as a string (JSON numbers are
// float64 and would corrupt 64-bit tick counts) and converts it with the
// given kind. Values with a fractional or exponent part go through the
// kind's float form when it has one.
func convertRaw(kind epochs.Kind, value string) (time.Time, error) {
	lower := strings.ToLower(value)
	if strings.ContainsAny(value, ".eE") && !strings.HasPrefix(lower, "0x") && !strings.HasPrefix(lower, "-0x") {
		if kind.ConvertFloat == nil {
			return time.Time{}, fmt.Errorf("kind %q takes integer values only", kind.Name)
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid numeric value %q: %w", value, err)
		}
		return kind.ConvertFloat(f)
	}

	// Base 0 so hex tick counts (0x1ea4f7dca4892ce) work as-is.
	n, err := strconv.ParseInt(value, 0, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid numeric value %q: %w", value, err)
	}
	return kind.Convert(n)
}

// dateTimeLayouts are the accepted forms of the to_epoch datetime
// argument, tried in order.
var dateTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// parseDateTime parses a naive ISO-8601-like date-time string.
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
