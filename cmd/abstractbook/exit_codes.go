package main

import (
	"errors"

	abstractbook "github.com/alnah/go-abstractbook"
	"github.com/alnah/go-abstractbook/internal/config"
)

// Exit codes for the abstractbook CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Book written or check passed
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, theme or date
	ExitIO      = 3 // Input not found or unreadable, output not writable
	ExitData    = 4 // Input read but rejected: missing columns, nothing to include
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Data errors (exit 4)
	if errors.Is(err, abstractbook.ErrMissingColumns) ||
		errors.Is(err, abstractbook.ErrNoSubmissions) ||
		errors.Is(err, ErrBrokenBook) {
		return ExitData
	}

	// Usage/config/validation errors (exit 2), checked before I/O so that a
	// missing config file is a usage problem.
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, abstractbook.ErrUnsupportedInput) ||
		errors.Is(err, abstractbook.ErrSheetNotFound) ||
		errors.Is(err, abstractbook.ErrInvalidTheme) ||
		errors.Is(err, abstractbook.ErrThemeNotFound) ||
		errors.Is(err, abstractbook.ErrInvalidDate) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, abstractbook.ErrInputNotFound) ||
		errors.Is(err, abstractbook.ErrInputUnreadable) ||
		errors.Is(err, abstractbook.ErrOutputPermission) ||
		errors.Is(err, abstractbook.ErrWriteOutput) {
		return ExitIO
	}

	return ExitGeneral
}
