// Package logfields holds the canonical slog attribute keys used across the
// generator and CLI so diagnostics stay greppable.
package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field names.
const (
	KeyInput      = "input"
	KeyOutput     = "output"
	KeySheet      = "sheet"
	KeyTrack      = "track"
	KeyDecision   = "decision"
	KeyTheme      = "theme"
	KeyRows       = "rows"
	KeyIncluded   = "included"
	KeySkipped    = "skipped"
	KeyDuplicates = "duplicates"
	KeyID         = "submission_id"
	KeyRow        = "row"
	KeyBytes      = "bytes"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

func Input(path string) slog.Attr      { return slog.String(KeyInput, path) }
func Output(path string) slog.Attr     { return slog.String(KeyOutput, path) }
func Sheet(name string) slog.Attr      { return slog.String(KeySheet, name) }
func Track(name string) slog.Attr      { return slog.String(KeyTrack, name) }
func Decision(d string) slog.Attr      { return slog.String(KeyDecision, d) }
func Theme(name string) slog.Attr      { return slog.String(KeyTheme, name) }
func Rows(n int) slog.Attr             { return slog.Int(KeyRows, n) }
func Included(n int) slog.Attr         { return slog.Int(KeyIncluded, n) }
func Skipped(n int) slog.Attr          { return slog.Int(KeySkipped, n) }
func Duplicates(n int) slog.Attr       { return slog.Int(KeyDuplicates, n) }
func SubmissionID(id string) slog.Attr { return slog.String(KeyID, id) }
func Row(n int) slog.Attr              { return slog.Int(KeyRow, n) }
func Bytes(n int) slog.Attr            { return slog.Int(KeyBytes, n) }

// Since reports the milliseconds elapsed since start.
func Since(start time.Time) slog.Attr {
	return slog.Int64(KeyDurationMS, time.Since(start).Milliseconds())
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
