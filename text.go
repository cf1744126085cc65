package abstractbook

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CleanText NFC-normalizes s, collapses every run of Unicode whitespace
// into one space and trims the ends. CleanText(CleanText(s)) == CleanText(s).
func CleanText(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}
