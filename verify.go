package abstractbook

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/alnah/go-abstractbook/internal/docx"
)

// Verification summarizes the navigation of a generated book.
type Verification struct {
	Cards        int      `json:"cards"`
	ContentsRows int      `json:"contentsRows"`
	HasContents  bool     `json:"hasContents"`
	Links        int      `json:"links"`
	Dangling     []string `json:"dangling,omitempty"`   // link anchors with no bookmark
	Unpaired     []string `json:"unpaired,omitempty"`   // IDs with a card but no contents row, or the reverse
	Duplicated   []string `json:"duplicated,omitempty"` // bookmark names used more than once
}

// OK reports whether every link resolves and cards pair with contents rows.
func (v *Verification) OK() bool {
	return v.HasContents && len(v.Dangling) == 0 && len(v.Unpaired) == 0
}

// VerifyFile reads a .docx from disk and verifies it.
func VerifyFile(path string) (*Verification, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s: %w", ErrInputNotFound, path, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrInputUnreadable, path, err)
	}
	return Verify(data)
}

// Verify checks a generated book: each card bookmark has a matching
// contents row bookmark, and every internal link targets a bookmark.
func Verify(data []byte) (*Verification, error) {
	out, err := docx.ReadOutline(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnreadable, err)
	}

	v := &Verification{
		HasContents: out.HasBookmark(ContentsAnchor),
		Links:       len(out.Links),
	}
	cards := make(map[string]bool)
	rows := make(map[string]bool)
	counts := make(map[string]int)
	for _, name := range out.Bookmarks {
		counts[name]++
		switch {
		case strings.HasPrefix(name, contentsRowPrefix):
			rows[pairKey(strings.TrimPrefix(name, contentsRowPrefix))] = true
			v.ContentsRows++
		case strings.HasPrefix(name, cardPrefix):
			cards[pairKey(strings.TrimPrefix(name, cardPrefix))] = true
			v.Cards++
		}
	}

	for id := range cards {
		if !rows[id] {
			v.Unpaired = append(v.Unpaired, id)
		}
	}
	for id := range rows {
		if !cards[id] {
			v.Unpaired = append(v.Unpaired, id)
		}
	}
	for name, n := range counts {
		if n > 1 {
			v.Duplicated = append(v.Duplicated, name)
		}
	}
	seen := make(map[string]bool)
	for _, l := range out.Dangling() {
		if !seen[l.Anchor] {
			v.Dangling = append(v.Dangling, l.Anchor)
			seen[l.Anchor] = true
		}
	}
	sort.Strings(v.Unpaired)
	sort.Strings(v.Duplicated)
	return v, nil
}

// pairKey trims an ID to the length both bookmark families can hold, so a
// long ID truncated differently in SUB_ and TOC_SUB_ names still pairs.
func pairKey(id string) string {
	if n := maxAnchorLength - len(contentsRowPrefix); len(id) > n {
		return id[:n]
	}
	return id
}
