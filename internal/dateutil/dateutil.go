// Package dateutil resolves the event date printed on the title page.
//
// A date value is either literal text ("December 5-7, 2025"), a date token
// expression ("auto", "auto:long", "auto:DD/MM/YYYY") resolved against the
// current time, or an ISO range ("2025-12-05..2025-12-07") rendered the way
// conference programmes print it.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format or range.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when "auto" is given without a format.
const DefaultDateFormat = "MMMM D, YYYY"

// rangeSep separates the two ends of an ISO date range.
const rangeSep = ".."

// tokens are tried in order, so longer tokens come first.
var tokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Presets are named shortcuts for common formats.
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// ParseDateFormat converts a token format (YYYY, YY, MMMM, MMM, MM, M, DD, D)
// into a Go time layout. Text in brackets is copied literally, so "[Day] D"
// yields "Day 2".
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var b strings.Builder
	for rest := format; rest != ""; {
		if rest[0] == '[' {
			end := strings.IndexByte(rest[1:], ']')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, len(format)-len(rest))
			}
			b.WriteString(rest[1 : end+1])
			rest = rest[end+2:]
			continue
		}
		n := matchToken(rest, &b)
		if n == 0 {
			b.WriteByte(rest[0])
			n = 1
		}
		rest = rest[n:]
	}
	return b.String(), nil
}

func matchToken(s string, b *strings.Builder) int {
	for _, t := range tokens {
		if strings.HasPrefix(s, t.token) {
			b.WriteString(t.layout)
			return len(t.token)
		}
	}
	return 0
}

// Resolve turns a configured date value into the text printed in the book.
//   - "auto" prints now in DefaultDateFormat
//   - "auto:FORMAT" or "auto:preset" prints now in that format
//   - "YYYY-MM-DD..YYYY-MM-DD" prints the range compactly (see FormatRange)
//   - anything else is returned unchanged
func Resolve(value string, now time.Time) (string, error) {
	if start, end, ok := strings.Cut(value, rangeSep); ok {
		return resolveRange(strings.TrimSpace(start), strings.TrimSpace(end))
	}

	lower := strings.ToLower(value)
	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}

	format := DefaultDateFormat
	switch {
	case lower == "auto":
	case strings.HasPrefix(lower, "auto:"):
		format = value[len("auto:"):]
		if preset, ok := Presets[strings.ToLower(format)]; ok {
			format = preset
		}
	default:
		return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	}

	layout, err := ParseDateFormat(format)
	if err != nil {
		return "", err
	}
	return now.Format(layout), nil
}

func resolveRange(start, end string) (string, error) {
	from, err := time.Parse(time.DateOnly, start)
	if err != nil {
		return "", fmt.Errorf("%w: range start %q: want YYYY-MM-DD", ErrInvalidDateFormat, start)
	}
	to, err := time.Parse(time.DateOnly, end)
	if err != nil {
		return "", fmt.Errorf("%w: range end %q: want YYYY-MM-DD", ErrInvalidDateFormat, end)
	}
	if to.Before(from) {
		return "", fmt.Errorf("%w: range ends before it starts", ErrInvalidDateFormat)
	}
	return FormatRange(from, to), nil
}

// FormatRange prints a day range with the shared parts collapsed:
//
//	December 5, 2025
//	December 5-7, 2025
//	November 30 - December 2, 2025
//	December 30, 2025 - January 2, 2026
func FormatRange(from, to time.Time) string {
	switch {
	case from.Year() != to.Year():
		return from.Format("January 2, 2006") + " - " + to.Format("January 2, 2006")
	case from.Month() != to.Month():
		return from.Format("January 2") + " - " + to.Format("January 2, 2006")
	case from.Day() != to.Day():
		return fmt.Sprintf("%s %d-%d, %d", from.Month(), from.Day(), to.Day(), from.Year())
	default:
		return from.Format("January 2, 2006")
	}
}
