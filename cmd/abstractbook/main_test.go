package main

// Notes:
// - isCommand/hasVerboseFlag: we test argument classification.
// - runMain: we test dispatch and exit codes. The book content itself is
//   covered by the library tests and generate_test.go.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestIsCommand - Command name matching
// ---------------------------------------------------------------------------

func TestIsCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arg  string
		want bool
	}{
		{"generate", true},
		{"check", true},
		{"verify", true},
		{"version", true},
		{"help", true},
		{"completion", true},
		{"submissions.xlsx", false},
		{"--theme", false},
		{"Generate", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			t.Parallel()
			if got := isCommand(tt.arg); got != tt.want {
				t.Errorf("isCommand(%q) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestHasVerboseFlag - Raw argument scan
// ---------------------------------------------------------------------------

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"short", []string{"in.xlsx", "-v"}, true},
		{"long", []string{"--verbose", "check"}, true},
		{"absent", []string{"in.xlsx", "out.docx"}, false},
		{"after terminator", []string{"--", "-v"}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := hasVerboseFlag(tt.args); got != tt.want {
				t.Errorf("hasVerboseFlag(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain - Dispatch
// ---------------------------------------------------------------------------

func TestRunMain_Version(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	code := runMain(context.Background(), []string{"abstractbook", "version"}, env)

	if code != ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout.String(), "go-abstractbook "+Version) {
		t.Errorf("stdout = %q, want version line", stdout.String())
	}
}

func TestRunMain_PositionalGenerate(t *testing.T) {
	t.Parallel()

	input := writeInput(t, "submissions.csv", sampleCSV)
	output := filepath.Join(t.TempDir(), "book.docx")

	env, stdout, stderr := testEnv()
	code := runMain(context.Background(), []string{"abstractbook", input, output, "Finance"}, env)

	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d\nstderr: %s", code, ExitSuccess, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Track:       Finance") {
		t.Errorf("stdout should echo the track, got:\n%s", stdout.String())
	}
}

func TestRunMain_ExitCodes(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.xlsx")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"help", []string{"help"}, ExitSuccess},
		{"help unknown command", []string{"help", "bogus"}, ExitUsage},
		{"generate help flag", []string{"generate", "--help"}, ExitSuccess},
		{"unknown flag", []string{"generate", "--bogus"}, ExitUsage},
		{"too many arguments", []string{"a.xlsx", "b.docx", "T", "extra"}, ExitUsage},
		{"missing input", []string{missing}, ExitIO},
		{"unsupported input", []string{"notes.txt"}, ExitUsage},
		{"unknown shell", []string{"completion", "tcsh"}, ExitUsage},
		{"completion usage", []string{"completion"}, ExitSuccess},
		{"verify without path", []string{"verify"}, ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, _ := testEnv()
			args := append([]string{"abstractbook"}, tt.args...)
			if got := runMain(context.Background(), args, env); got != tt.want {
				t.Errorf("runMain(%v) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}

func TestReport(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv()
	if code := report(nil, env); code != ExitSuccess {
		t.Errorf("report(nil) = %d, want %d", code, ExitSuccess)
	}
	if stderr.Len() != 0 {
		t.Errorf("report(nil) wrote %q", stderr.String())
	}

	code := report(withHint(ErrUsage, "\n  hint: try again"), env)
	if code != ExitUsage {
		t.Errorf("report(ErrUsage) = %d, want %d", code, ExitUsage)
	}
	if got := stderr.String(); !strings.HasPrefix(got, "ERROR: invalid usage") || !strings.Contains(got, "hint: try again") {
		t.Errorf("stderr = %q, want error and hint", got)
	}
}
