package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-abstractbook/internal/dateutil"
	"github.com/alnah/go-abstractbook/internal/fileutil"
	"github.com/alnah/go-abstractbook/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config field")
)

// Field length limits.
const (
	MaxEventNameLength  = 60   // "IMRC 2025"
	MaxTextLength       = 200  // conference, host, heading
	MaxDateLength       = 60   // "December 5-7, 2025" or "auto:FORMAT"
	MaxTrackLength      = 100  // "FAE"
	MaxDecisionLength   = 100  // "Oral Presentation"
	MaxColumnLength     = 100  // spreadsheet header cell
	MaxSheetLength      = 31   // Excel sheet name limit
	MaxPathLength       = 4096 // PATH_MAX
	MaxThemeLength      = 4096 // name or path
	configDirName       = "go-abstractbook"
	defaultConfigPrefix = "abstractbook"
)

// Config holds all configuration for book generation. Empty fields fall
// back to the library defaults.
type Config struct {
	Event  EventConfig  `yaml:"event"`
	Track  string       `yaml:"track"`
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Theme  string       `yaml:"theme"`  // built-in name or path to a theme file
	Markup bool         `yaml:"markup"` // render inline emphasis in abstracts
}

// EventConfig holds the title page text.
type EventConfig struct {
	Name       string `yaml:"name"`       // "IMRC 2025"
	Conference string `yaml:"conference"` // "India Management Research Conference"
	Host       string `yaml:"host"`       // "IIM Ahmedabad"
	Date       string `yaml:"date"`       // literal, "auto[:FORMAT]" or "YYYY-MM-DD..YYYY-MM-DD"
	Heading    string `yaml:"heading"`    // "Book of Abstracts"
}

// InputConfig defines the submissions source.
type InputConfig struct {
	Path     string        `yaml:"path"`
	Sheet    string        `yaml:"sheet"`    // empty = first sheet
	Decision string        `yaml:"decision"` // rows kept, matched exactly
	Columns  ColumnsConfig `yaml:"columns"`
}

// ColumnsConfig maps each required field to its header text.
type ColumnsConfig struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Authors  string `yaml:"authors"`
	Abstract string `yaml:"abstract"`
	Decision string `yaml:"decision"`
}

// OutputConfig defines the output destination.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// Validate checks field lengths, the date syntax and that column headers
// are distinct. Called by LoadConfig.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"event.name", c.Event.Name, MaxEventNameLength},
		{"event.conference", c.Event.Conference, MaxTextLength},
		{"event.host", c.Event.Host, MaxTextLength},
		{"event.date", c.Event.Date, MaxDateLength},
		{"event.heading", c.Event.Heading, MaxTextLength},
		{"track", c.Track, MaxTrackLength},
		{"input.path", c.Input.Path, MaxPathLength},
		{"input.sheet", c.Input.Sheet, MaxSheetLength},
		{"input.decision", c.Input.Decision, MaxDecisionLength},
		{"input.columns.id", c.Input.Columns.ID, MaxColumnLength},
		{"input.columns.title", c.Input.Columns.Title, MaxColumnLength},
		{"input.columns.authors", c.Input.Columns.Authors, MaxColumnLength},
		{"input.columns.abstract", c.Input.Columns.Abstract, MaxColumnLength},
		{"input.columns.decision", c.Input.Columns.Decision, MaxColumnLength},
		{"output.path", c.Output.Path, MaxPathLength},
		{"theme", c.Theme, MaxThemeLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if _, err := dateutil.Resolve(c.Event.Date, time.Time{}); err != nil {
		return fmt.Errorf("%w: event.date: %v", ErrInvalidField, err)
	}

	seen := make(map[string]string, 5)
	for _, col := range []struct{ name, header string }{
		{"id", c.Input.Columns.ID},
		{"title", c.Input.Columns.Title},
		{"authors", c.Input.Columns.Authors},
		{"abstract", c.Input.Columns.Abstract},
		{"decision", c.Input.Columns.Decision},
	} {
		h := strings.TrimSpace(col.header)
		if h == "" {
			continue
		}
		if other, ok := seen[h]; ok {
			return fmt.Errorf("%w: input.columns.%s and input.columns.%s both map to %q", ErrInvalidField, other, col.name, h)
		}
		seen[h] = col.name
	}

	if c.Output.Path != "" && !fileutil.HasExtension(c.Output.Path, ".docx") {
		return fmt.Errorf("%w: output.path: %q must end in .docx", ErrInvalidField, c.Output.Path)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns an empty configuration; every field uses the
// library default.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	return LoadFile(configPath)
}

// LoadFile reads and validates the config file at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Discover looks for the default config name ("abstractbook") in the
// standard locations. It returns "" without error when none exists, so the
// CLI can run without any config.
func Discover() string {
	path, err := resolveConfigPath(defaultConfigPrefix)
	if err != nil {
		return ""
	}
	return path
}

// SearchPaths lists where a config name is looked up, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, configDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
