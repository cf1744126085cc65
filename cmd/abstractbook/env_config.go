package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alnah/go-abstractbook/internal/config"
)

// envPrefix starts every variable the CLI reads.
const envPrefix = "ABSTRACTBOOK_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // ABSTRACTBOOK_CONFIG: config name or path
	Input      string // ABSTRACTBOOK_INPUT: submissions spreadsheet
	Output     string // ABSTRACTBOOK_OUTPUT: generated .docx
	Track      string // ABSTRACTBOOK_TRACK: track title
	Theme      string // ABSTRACTBOOK_THEME: theme name or path
	Decision   string // ABSTRACTBOOK_DECISION: decision value to include
	Sheet      string // ABSTRACTBOOK_SHEET: worksheet name
}

// knownEnvVars lists valid ABSTRACTBOOK_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"ABSTRACTBOOK_CONFIG":   true,
	"ABSTRACTBOOK_INPUT":    true,
	"ABSTRACTBOOK_OUTPUT":   true,
	"ABSTRACTBOOK_TRACK":    true,
	"ABSTRACTBOOK_THEME":    true,
	"ABSTRACTBOOK_DECISION": true,
	"ABSTRACTBOOK_SHEET":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath: os.Getenv("ABSTRACTBOOK_CONFIG"),
		Input:      os.Getenv("ABSTRACTBOOK_INPUT"),
		Output:     os.Getenv("ABSTRACTBOOK_OUTPUT"),
		Track:      os.Getenv("ABSTRACTBOOK_TRACK"),
		Theme:      os.Getenv("ABSTRACTBOOK_THEME"),
		Decision:   os.Getenv("ABSTRACTBOOK_DECISION"),
		Sheet:      os.Getenv("ABSTRACTBOOK_SHEET"),
	}
}

// warnUnknownEnvVars prints a warning for each unrecognized ABSTRACTBOOK_*
// variable, catching typos like ABSTRACTBOOK_TRAK.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overrides config values with the variables that are set.
// Flags are applied afterwards, giving: flags > env > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.Input.Path, env.Input)
	set(&cfg.Output.Path, env.Output)
	set(&cfg.Track, env.Track)
	set(&cfg.Theme, env.Theme)
	set(&cfg.Input.Decision, env.Decision)
	set(&cfg.Input.Sheet, env.Sheet)
}
