package assets

// ThemeLoader defines the contract for loading theme definitions.
type ThemeLoader interface {
	// LoadTheme returns the raw YAML of a theme by name (without extension).
	// Returns ErrThemeNotFound if the theme doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTheme(name string) ([]byte, error)

	// ListThemes returns the available theme names, sorted.
	ListThemes() []string
}

// themeExt is the file extension of theme files.
const themeExt = ".yaml"
