package abstractbook

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestAnchors - Bookmark naming
// ---------------------------------------------------------------------------

func TestCardAnchor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id   string
		card string
		row  string
	}{
		{"42", "SUB_42", "TOC_SUB_42"},
		{"IMRC-2025-7", "SUB_IMRC_2025_7", "TOC_SUB_IMRC_2025_7"},
		{"a b", "SUB_a_b", "TOC_SUB_a_b"},
		{"\u00e91", "SUB__1", "TOC_SUB__1"},
		{"", "SUB_", "TOC_SUB_"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			t.Parallel()
			if got := CardAnchor(tt.id); got != tt.card {
				t.Errorf("CardAnchor(%q) = %q, want %q", tt.id, got, tt.card)
			}
			if got := ContentsRowAnchor(tt.id); got != tt.row {
				t.Errorf("ContentsRowAnchor(%q) = %q, want %q", tt.id, got, tt.row)
			}
		})
	}
}

func TestAnchor_Truncated(t *testing.T) {
	t.Parallel()

	id := strings.Repeat("9", 60)
	for _, got := range []string{CardAnchor(id), ContentsRowAnchor(id)} {
		if len(got) != maxAnchorLength {
			t.Errorf("len(%q) = %d, want %d", got, len(got), maxAnchorLength)
		}
	}
}

func TestAnchor_CardAndRowDiffer(t *testing.T) {
	t.Parallel()

	// A card name must never equal a row name, whatever the ID.
	for _, id := range []string{"TOC_SUB_1", "1", "SUB_1"} {
		if CardAnchor(id) == ContentsRowAnchor(id) {
			t.Errorf("anchors collide for %q", id)
		}
	}
}
