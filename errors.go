package abstractbook

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for library operations.
var (
	// Input errors.
	ErrInputNotFound    = errors.New("input file not found")
	ErrInputUnreadable  = errors.New("cannot read input")
	ErrUnsupportedInput = errors.New("unsupported input format")
	ErrSheetNotFound    = errors.New("sheet not found")

	// Data errors.
	ErrMissingColumns = errors.New("missing required columns")
	ErrNoSubmissions  = errors.New("no submissions to include")

	// Output errors.
	ErrOutputPermission = errors.New("permission denied writing output")
	ErrWriteOutput      = errors.New("failed to write output")

	// Option errors.
	ErrInvalidTheme  = errors.New("invalid theme")
	ErrThemeNotFound = errors.New("theme not found")
	ErrInvalidDate   = errors.New("invalid event date")
)

// MissingColumnsError reports required headers absent from the input.
// Missing keeps the order of the required columns.
type MissingColumnsError struct {
	Missing   []string
	Available []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingColumns, quoteList(e.Missing))
}

// Is makes errors.Is(err, ErrMissingColumns) match.
func (e *MissingColumnsError) Is(target error) bool {
	return target == ErrMissingColumns
}

// NoSubmissionsError reports that the decision filter kept nothing.
// Seen counts the decision values that were present.
type NoSubmissionsError struct {
	Decision string
	Rows     int
	Seen     map[string]int
}

func (e *NoSubmissionsError) Error() string {
	if e.Rows == 0 {
		return fmt.Sprintf("%s: the input has no data rows", ErrNoSubmissions)
	}
	return fmt.Sprintf("%s: none of %d rows has decision %q", ErrNoSubmissions, e.Rows, e.Decision)
}

// Is makes errors.Is(err, ErrNoSubmissions) match.
func (e *NoSubmissionsError) Is(target error) bool {
	return target == ErrNoSubmissions
}

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}
