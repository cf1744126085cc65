package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alnah/go-abstractbook/internal/assets"
)

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

const sampleCSV = `Submission ID,Title,Authors,Abstract,Decision
101,Pricing under uncertainty,"A. Rao, B. Shah","We study prices.",Oral Presentation
102,Supply chains,C. Iyer,Abstract two.,Poster
103,Family firms,D. Mehta,Abstract three.,Oral Presentation
`

func fixedNow() time.Time { return time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC) }

// testEnv returns an Environment writing into buffers, with the embedded
// themes and a fixed clock.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{
		Now:         fixedNow,
		Stdout:      &stdout,
		Stderr:      &stderr,
		ThemeLoader: assets.NewEmbeddedLoader(),
	}, &stdout, &stderr
}

// writeInput saves content as name in a fresh temp dir and returns its path.
func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}
