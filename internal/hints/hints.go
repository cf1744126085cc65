// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"sort"
	"strings"
)

// maxListed caps how many values a hint enumerates.
const maxListed = 8

// ForOutputPermission returns a hint for a document that cannot be written.
// The usual cause is the previous book still being open in a word processor.
func ForOutputPermission(path string) string {
	return format("close " + path + " if it is open in Word, or check the directory is writable")
}

// ForInputNotFound returns a hint for a missing input spreadsheet.
func ForInputNotFound() string {
	return format("pass the spreadsheet as the first argument: abstractbook <input.xlsx> [output.docx] [track]")
}

// ForMissingColumns lists the columns that were found so the user can spot
// a renamed header.
func ForMissingColumns(available []string) string {
	if len(available) == 0 {
		return format("the first row of the sheet must hold the column headers")
	}
	return format("available columns: " + list(available) + "; header names can be remapped in the config file")
}

// ForNoSubmissions lists the decision values present in the input, most
// frequent first, when none matched the filter.
func ForNoSubmissions(decision string, seen map[string]int) string {
	if len(seen) == 0 {
		return format("the input has no data rows")
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool {
		if seen[values[i]] != seen[values[j]] {
			return seen[values[i]] > seen[values[j]]
		}
		return values[i] < values[j]
	})
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + v + `"`
	}
	return format(`no row has decision "` + decision + `"; decisions found: ` + list(quoted) + "; use --decision to pick another")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-abstractbook/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, "go-abstractbook") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForThemeNotFound lists the built-in themes.
func ForThemeNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + ", or a path to a theme file")
}

// ForUnsupportedInput names the accepted input formats.
func ForUnsupportedInput() string {
	return format("supported inputs: .xlsx, .xlsm, .csv")
}

func list(values []string) string {
	if len(values) > maxListed {
		return strings.Join(values[:maxListed], ", ") + ", ..."
	}
	return strings.Join(values, ", ")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
