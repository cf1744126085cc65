package abstractbook

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alnah/go-abstractbook/internal/assets"
	"github.com/alnah/go-abstractbook/internal/fileutil"
	"github.com/alnah/go-abstractbook/internal/yamlutil"
)

// Theme holds the colors (hex RRGGBB, no '#') and fonts of the book.
type Theme struct {
	Name        string `yaml:"name" validate:"max=64"`
	Primary     string `yaml:"primary" validate:"required,rrggbb"`     // headings, header fills, links
	Muted       string `yaml:"muted" validate:"required,rrggbb"`       // host, date, authors
	Text        string `yaml:"text" validate:"required,rrggbb"`        // body text
	OnPrimary   string `yaml:"onPrimary" validate:"required,rrggbb"`   // text on primary fills
	ZebraEven   string `yaml:"zebraEven" validate:"required,rrggbb"`   // contents rows 0, 2, 4...
	ZebraOdd    string `yaml:"zebraOdd" validate:"required,rrggbb"`    // contents rows 1, 3, 5...
	AuthorsFill string `yaml:"authorsFill" validate:"required,rrggbb"` // card authors row
	GridLine    string `yaml:"gridLine" validate:"required,rrggbb"`    // contents row borders
	Font        string `yaml:"font" validate:"required,max=64"`
	TitleFont   string `yaml:"titleFont" validate:"required,max=64"`
}

// DefaultTheme returns the navy IMRC theme.
func DefaultTheme() *Theme {
	return &Theme{
		Name:        assets.DefaultTheme,
		Primary:     "1A237E",
		Muted:       "555555",
		Text:        "000000",
		OnPrimary:   "FFFFFF",
		ZebraEven:   "F0F4FF",
		ZebraOdd:    "FFFFFF",
		AuthorsFill: "F5F7FC",
		GridLine:    "D0D0D0",
		Font:        "Calibri",
		TitleFont:   "Calibri Light",
	}
}

var rrggbb = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

var (
	themeValidator     *validator.Validate
	themeValidatorOnce sync.Once
)

func getThemeValidator() *validator.Validate {
	themeValidatorOnce.Do(func() {
		v := validator.New()
		// Report YAML keys rather than Go field names.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("rrggbb", func(fl validator.FieldLevel) bool {
			return rrggbb.MatchString(fl.Field().String())
		})
		themeValidator = v
	})
	return themeValidator
}

// Validate checks that every color is six hex digits and fonts are set.
func (t *Theme) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: nil theme", ErrInvalidTheme)
	}
	err := getThemeValidator().Struct(t)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidTheme, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidTheme, strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "rrggbb":
		return fmt.Sprintf("%s: %q is not a six digit hex color", fe.Field(), fe.Value())
	case "max":
		return fmt.Sprintf("%s: longer than %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s: failed %s", fe.Field(), fe.Tag())
	}
}

// ParseTheme decodes and validates a YAML theme. Unknown keys are errors.
func ParseTheme(data []byte) (*Theme, error) {
	var t Theme
	if err := yamlutil.UnmarshalStrict(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTheme, err)
	}
	t.normalize()
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// normalize strips a leading '#' and uppercases colors.
func (t *Theme) normalize() {
	for _, c := range []*string{
		&t.Primary, &t.Muted, &t.Text, &t.OnPrimary,
		&t.ZebraEven, &t.ZebraOdd, &t.AuthorsFill, &t.GridLine,
	} {
		*c = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(*c), "#"))
	}
}

// ThemeLoader returns the raw YAML of a named theme.
type ThemeLoader interface {
	LoadTheme(name string) ([]byte, error)
	ListThemes() []string
}

// LoadTheme loads a built-in theme by name, or a theme file when
// nameOrPath contains a path separator.
func LoadTheme(nameOrPath string) (*Theme, error) {
	return ResolveTheme(assets.NewEmbeddedLoader(), nameOrPath)
}

// ResolveTheme loads a theme file when nameOrPath contains a path
// separator, otherwise asks loader for the named theme. An empty value
// returns DefaultTheme.
func ResolveTheme(loader ThemeLoader, nameOrPath string) (*Theme, error) {
	if nameOrPath == "" {
		return DefaultTheme(), nil
	}

	if fileutil.IsFilePath(nameOrPath) {
		data, err := os.ReadFile(nameOrPath) // #nosec G304 -- theme path is user-provided
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, nameOrPath)
			}
			return nil, fmt.Errorf("%w: %v", ErrInvalidTheme, err)
		}
		return ParseTheme(data)
	}

	data, err := loader.LoadTheme(nameOrPath)
	switch {
	case errors.Is(err, assets.ErrThemeNotFound):
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, nameOrPath)
	case errors.Is(err, assets.ErrInvalidAssetName):
		return nil, fmt.Errorf("%w: %v", ErrThemeNotFound, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidTheme, err)
	}
	return ParseTheme(data)
}

// ListThemes returns the built-in theme names.
func ListThemes() []string {
	return assets.ListThemes()
}
