package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	abstractbook "github.com/alnah/go-abstractbook"
	"github.com/alnah/go-abstractbook/internal/assets"
)

// userDirName is the per-user directory holding configs and custom themes.
const userDirName = "go-abstractbook"

// Environment holds injectable dependencies for testability.
// Includes I/O, time and theme loading.
type Environment struct {
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
	ThemeLoader abstractbook.ThemeLoader
}

// DefaultEnv returns the production environment. Themes in
// <user config dir>/go-abstractbook/themes shadow the built-in ones.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		ThemeLoader: themeLoader(),
	}
}

// themeLoader returns a resolver over the user theme directory when it
// exists, otherwise the embedded themes.
func themeLoader() abstractbook.ThemeLoader {
	dir, err := os.UserConfigDir()
	if err == nil {
		base := filepath.Join(dir, userDirName)
		if info, err := os.Stat(filepath.Join(base, "themes")); err == nil && info.IsDir() {
			if r, err := assets.NewResolver(base); err == nil {
				return r
			}
		}
	}
	return assets.NewEmbeddedLoader()
}

// newLogger returns the diagnostic logger: text on stderr at Warn level,
// Debug with --verbose, Error only with --quiet.
func newLogger(w io.Writer, f commonFlags) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case f.verbose:
		level = slog.LevelDebug
	case f.quiet:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
