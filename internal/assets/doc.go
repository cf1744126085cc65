// Package assets provides the color and font themes used to style the book.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	ThemeLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (imrc, classic)
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── Resolver          - combines both with custom-first fallback
//
// Resolver is the loader used by the CLI. When the user config directory
// holds a themes/ folder, a theme found there overrides the built-in one
// with the same name.
//
// # Directory Structure
//
//	{basePath}/
//	└── themes/
//	    └── {name}.yaml
//
// # Security
//
// Theme names are validated to prevent path traversal.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
