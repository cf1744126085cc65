package abstractbook

// Notes:
// - ParseTheme: color normalization, validation messages and strict keys.
// - LoadTheme/ResolveTheme: built-in names, file paths and not-found
//   classification.
// These are acceptable gaps: fonts are only checked for presence, not for
// being installed.

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/alnah/go-abstractbook/internal/assets"
)

const validThemeYAML = `name: test
primary: "#1a237e"
muted: "555555"
text: "000000"
onPrimary: "ffffff"
zebraEven: "F0F4FF"
zebraOdd: "FFFFFF"
authorsFill: "F5F7FC"
gridLine: "D0D0D0"
font: Arial
titleFont: Arial Black
`

// ---------------------------------------------------------------------------
// TestParseTheme - Decoding and validation
// ---------------------------------------------------------------------------

func TestParseTheme(t *testing.T) {
	t.Parallel()

	theme, err := ParseTheme([]byte(validThemeYAML))
	if err != nil {
		t.Fatalf("ParseTheme() error = %v", err)
	}
	if theme.Primary != "1A237E" {
		t.Errorf("Primary = %q, want normalized 1A237E", theme.Primary)
	}
	if theme.OnPrimary != "FFFFFF" {
		t.Errorf("OnPrimary = %q, want FFFFFF", theme.OnPrimary)
	}
	if theme.TitleFont != "Arial Black" {
		t.Errorf("TitleFont = %q", theme.TitleFont)
	}
}

func TestParseTheme_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantMsg string
	}{
		{
			name:    "bad color",
			yaml:    strings.Replace(validThemeYAML, `"555555"`, `"grey"`, 1),
			wantMsg: "muted",
		},
		{
			name:    "short color",
			yaml:    strings.Replace(validThemeYAML, `"000000"`, `"000"`, 1),
			wantMsg: "text",
		},
		{
			name:    "missing font",
			yaml:    strings.Replace(validThemeYAML, "font: Arial\n", "", 1),
			wantMsg: "font is required",
		},
		{
			name:    "unknown key",
			yaml:    validThemeYAML + "accent: \"FF0000\"\n",
			wantMsg: "accent",
		},
		{
			name:    "not yaml",
			yaml:    "primary: [",
			wantMsg: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseTheme([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalidTheme) {
				t.Fatalf("ParseTheme() error = %v, want ErrInvalidTheme", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestTheme_Validate_Nil(t *testing.T) {
	t.Parallel()

	var theme *Theme
	if err := theme.Validate(); !errors.Is(err, ErrInvalidTheme) {
		t.Errorf("Validate() on nil = %v, want ErrInvalidTheme", err)
	}
}

// ---------------------------------------------------------------------------
// TestLoadTheme - Built-in and file themes
// ---------------------------------------------------------------------------

func TestLoadTheme_BuiltIn(t *testing.T) {
	t.Parallel()

	for _, name := range ListThemes() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			theme, err := LoadTheme(name)
			if err != nil {
				t.Fatalf("LoadTheme(%q) error = %v", name, err)
			}
			if theme.Name != name {
				t.Errorf("Name = %q, want %q", theme.Name, name)
			}
		})
	}
}

func TestLoadTheme_DefaultMatchesEmbedded(t *testing.T) {
	t.Parallel()

	theme, err := LoadTheme(assets.DefaultTheme)
	if err != nil {
		t.Fatalf("LoadTheme() error = %v", err)
	}
	if !reflect.DeepEqual(theme, DefaultTheme()) {
		t.Errorf("embedded %s theme = %+v, DefaultTheme() = %+v", assets.DefaultTheme, theme, DefaultTheme())
	}
}

func TestLoadTheme_Empty(t *testing.T) {
	t.Parallel()

	theme, err := LoadTheme("")
	if err != nil {
		t.Fatalf("LoadTheme(\"\") error = %v", err)
	}
	if theme.Primary != DefaultTheme().Primary {
		t.Error("empty name should return the default theme")
	}
}

func TestLoadTheme_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte(validThemeYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme(%q) error = %v", path, err)
	}
	if theme.Font != "Arial" {
		t.Errorf("Font = %q, want Arial", theme.Font)
	}
}

func TestLoadTheme_NotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"unknown name", "neon"},
		{"invalid name", "bad name!"},
		{"missing file", filepath.Join(t.TempDir(), "absent.yaml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadTheme(tt.input)
			if !errors.Is(err, ErrThemeNotFound) {
				t.Errorf("LoadTheme(%q) error = %v, want ErrThemeNotFound", tt.input, err)
			}
		})
	}
}

func TestResolveTheme_CustomLoader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "themes"), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "themes", "imrc.yaml"), []byte(validThemeYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	resolver, err := assets.NewResolver(dir)
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	theme, err := ResolveTheme(resolver, "imrc")
	if err != nil {
		t.Fatalf("ResolveTheme() error = %v", err)
	}
	if theme.Font != "Arial" {
		t.Errorf("custom theme should shadow built-in: Font = %q", theme.Font)
	}

	theme, err = ResolveTheme(resolver, "classic")
	if err != nil {
		t.Fatalf("ResolveTheme(classic) error = %v", err)
	}
	if theme.Name != "classic" {
		t.Errorf("fallback to built-in: Name = %q", theme.Name)
	}
}
