package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestNewResolver(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses embedded only", func(t *testing.T) {
		t.Parallel()
		r, err := NewResolver("")
		if err != nil {
			t.Fatalf("NewResolver(\"\") error = %v", err)
		}
		if r.HasCustomLoader() {
			t.Error("expected no custom loader for empty path")
		}
	})

	t.Run("valid custom path", func(t *testing.T) {
		t.Parallel()
		r, err := NewResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewResolver() error = %v", err)
		}
		if !r.HasCustomLoader() {
			t.Error("expected custom loader for valid path")
		}
	})

	t.Run("invalid custom path returns error", func(t *testing.T) {
		t.Parallel()
		_, err := NewResolver("/nonexistent/path/abc123xyz")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestResolver_LoadTheme(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTheme(t, dir, "imrc", "name: override\n")
	writeTheme(t, dir, "custom", "name: custom\n")

	r, err := NewResolver(dir)
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	tests := []struct {
		name     string
		theme    string
		contains string
		wantErr  error
	}{
		{"custom overrides embedded", "imrc", "name: override", nil},
		{"custom only", "custom", "name: custom", nil},
		{"falls back to embedded", "classic", "name: classic", nil},
		{"unknown everywhere", "nope", "", ErrThemeNotFound},
		{"invalid name not retried", "../x", "", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := r.LoadTheme(tt.theme)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadTheme(%q) error = %v, want %v", tt.theme, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadTheme(%q) error = %v", tt.theme, err)
			}
			if !strings.Contains(string(got), tt.contains) {
				t.Errorf("LoadTheme(%q) = %q, want containing %q", tt.theme, got, tt.contains)
			}
		})
	}
}

func TestResolver_ListThemes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTheme(t, dir, "imrc", "name: override\n")
	writeTheme(t, dir, "aurora", "name: aurora\n")

	r, err := NewResolver(dir)
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}
	if got := strings.Join(r.ListThemes(), ","); got != "aurora,classic,imrc" {
		t.Errorf("ListThemes() = %s, want aurora,classic,imrc", got)
	}
}
