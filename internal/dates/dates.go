// Package dates provides the canonical ISO-8601 timestamp helpers shared by
// the query engine and the tuple sources.
//
// This package exists to avoid duplicating timestamp logic across:
// - comparator normalization (string/date equivalence)
// - schema-hinted date coercion in the criteria evaluator
// - source adapters decoding timestamp columns
package dates

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// isoRegex recognizes the ISO-8601 timestamp shape the engine treats as a
// date: YYYY-MM-DDTHH:MM:SS with optional fractional seconds and optional
// zone suffix. It is the single shared constant; every module that needs
// "does this string look like a date" goes through IsISO.
var isoRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:?\d{2})?$`)

// canonicalFormat is the millisecond-precision UTC form produced by Format.
const canonicalFormat = "2006-01-02T15:04:05.000Z"

// IsISO reports whether s has the ISO-8601 timestamp shape.
func IsISO(s string) bool {
	return isoRegex.MatchString(s)
}

// Parse parses an ISO-8601 timestamp in one of the accepted forms.
// A missing zone suffix is read as UTC.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("invalid timestamp: empty")
	}

	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04:05.999Z0700",
		"2006-01-02T15:04:05.999",
		"2006-01-02T15:04:05",
	}
	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp: %q", s)
}

// Format renders t in the canonical millisecond UTC form,
// e.g. 2020-01-01T00:00:00.000Z.
func Format(t time.Time) string {
	return t.UTC().Format(canonicalFormat)
}

// EpochMillis returns t as milliseconds since the Unix epoch.
func EpochMillis(t time.Time) int64 {
	return t.UnixMilli()
}
