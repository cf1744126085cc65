package abstractbook

import "strings"

// Bookmark names. Cards are SUB_<id>, contents rows TOC_SUB_<id>.
const (
	ContentsAnchor    = "TOC"
	cardPrefix        = "SUB_"
	contentsRowPrefix = "TOC_SUB_"

	// maxAnchorLength is Word's bookmark name limit.
	maxAnchorLength = 40
)

// CardAnchor returns the bookmark name of a submission's card.
func CardAnchor(id string) string {
	return anchorName(cardPrefix + id)
}

// ContentsRowAnchor returns the bookmark name of a submission's row in the
// table of contents.
func ContentsRowAnchor(id string) string {
	return anchorName(contentsRowPrefix + id)
}

// anchorName replaces characters Word rejects in bookmark names with '_'
// and truncates to maxAnchorLength. Distinct IDs can map to the same name.
func anchorName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if b.Len() == maxAnchorLength {
			break
		}
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
