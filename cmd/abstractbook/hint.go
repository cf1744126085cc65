package main

import (
	"errors"

	abstractbook "github.com/alnah/go-abstractbook"
	"github.com/alnah/go-abstractbook/internal/hints"
)

// hintedError attaches a hint that needs context unavailable where the
// error is reported, such as the output path.
type hintedError struct {
	err  error
	hint string
}

func (e *hintedError) Error() string { return e.err.Error() }
func (e *hintedError) Unwrap() error { return e.err }

func withHint(err error, hint string) error {
	if err == nil || hint == "" {
		return err
	}
	return &hintedError{err: err, hint: hint}
}

// hintFor returns the hint to print after err, or "".
func hintFor(err error) string {
	var he *hintedError
	if errors.As(err, &he) {
		return he.hint
	}

	var mce *abstractbook.MissingColumnsError
	if errors.As(err, &mce) {
		return hints.ForMissingColumns(mce.Available)
	}
	var nse *abstractbook.NoSubmissionsError
	if errors.As(err, &nse) {
		return hints.ForNoSubmissions(nse.Decision, nse.Seen)
	}

	switch {
	case errors.Is(err, abstractbook.ErrInputNotFound):
		return hints.ForInputNotFound()
	case errors.Is(err, abstractbook.ErrUnsupportedInput):
		return hints.ForUnsupportedInput()
	}
	return ""
}
