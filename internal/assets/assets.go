package assets

// DefaultTheme is the theme used when none is configured.
const DefaultTheme = "imrc"

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadTheme loads a built-in theme by name.
func LoadTheme(name string) ([]byte, error) {
	return defaultLoader.LoadTheme(name)
}

// ListThemes returns the built-in theme names.
func ListThemes() []string {
	return defaultLoader.ListThemes()
}
