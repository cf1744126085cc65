package main

// Notes:
// - loadEnvConfig: we test that every ABSTRACTBOOK_* variable is read.
// - warnUnknownEnvVars: we test typo detection and that known vars don't warn.
// - applyEnvConfig: we test that set variables override config values and
//   unset ones leave them alone.
// - Tests use t.Setenv() which prevents t.Parallel().
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-abstractbook/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv("ABSTRACTBOOK_CONFIG", "/etc/book.yaml")
	t.Setenv("ABSTRACTBOOK_INPUT", "in.xlsx")
	t.Setenv("ABSTRACTBOOK_OUTPUT", "out.docx")
	t.Setenv("ABSTRACTBOOK_TRACK", "Finance")
	t.Setenv("ABSTRACTBOOK_THEME", "classic")
	t.Setenv("ABSTRACTBOOK_DECISION", "Poster")
	t.Setenv("ABSTRACTBOOK_SHEET", "Accepted")

	got := loadEnvConfig()
	want := envConfig{
		ConfigPath: "/etc/book.yaml",
		Input:      "in.xlsx",
		Output:     "out.docx",
		Track:      "Finance",
		Theme:      "classic",
		Decision:   "Poster",
		Sheet:      "Accepted",
	}
	if *got != want {
		t.Errorf("loadEnvConfig() = %+v, want %+v", *got, want)
	}
}

func TestLoadEnvConfig_Unset(t *testing.T) {
	for name := range knownEnvVars {
		t.Setenv(name, "")
	}
	if got := loadEnvConfig(); *got != (envConfig{}) {
		t.Errorf("loadEnvConfig() = %+v, want zero value", *got)
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("ABSTRACTBOOK_TRAK", "typo")
	t.Setenv("ABSTRACTBOOK_TRACK", "Finance")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	out := buf.String()
	if !strings.Contains(out, "ABSTRACTBOOK_TRAK") {
		t.Errorf("expected warning for ABSTRACTBOOK_TRAK, got %q", out)
	}
	if strings.Contains(out, "ABSTRACTBOOK_TRACK ") {
		t.Errorf("known variable should not warn, got %q", out)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Priority over config file
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Track = "From config"
	cfg.Theme = "imrc"
	cfg.Input.Sheet = "Sheet1"

	applyEnvConfig(&envConfig{Track: "From env", Decision: "Poster"}, cfg)

	if cfg.Track != "From env" {
		t.Errorf("Track = %q, want env value", cfg.Track)
	}
	if cfg.Input.Decision != "Poster" {
		t.Errorf("Input.Decision = %q, want Poster", cfg.Input.Decision)
	}
	if cfg.Theme != "imrc" {
		t.Errorf("Theme = %q, unset variable should keep config value", cfg.Theme)
	}
	if cfg.Input.Sheet != "Sheet1" {
		t.Errorf("Input.Sheet = %q, unset variable should keep config value", cfg.Input.Sheet)
	}
}
