package abstractbook

// Notes:
// - Build: document structure is checked by reading the archive back with
//   docx.ReadOutline (bookmarks, internal links, paragraph text).
// - Styling (colors, sizes, borders) is covered at the XML level in
//   internal/docx; here we only check the theme reaches the document.
// These are acceptable gaps: page breaks landing where Word paginates is a
// manual check.

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-abstractbook/internal/docx"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func buildOutline(t *testing.T, subs []Submission, opts BuildOptions) *docx.Outline {
	t.Helper()
	doc, err := Build(subs, opts)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	data, err := doc.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	out, err := docx.ReadOutline(data)
	if err != nil {
		t.Fatalf("ReadOutline() error = %v", err)
	}
	return out
}

func fixedOptions() BuildOptions {
	return BuildOptions{Track: "FAE", Created: fixedNow()}
}

// ---------------------------------------------------------------------------
// TestBuild - Navigation round trip
// ---------------------------------------------------------------------------

func TestBuild_RoundTripLinks(t *testing.T) {
	t.Parallel()

	subs := sampleSubmissions()
	out := buildOutline(t, subs, fixedOptions())

	if !out.HasBookmark(ContentsAnchor) {
		t.Error("missing contents bookmark")
	}
	for _, s := range subs {
		card, row := CardAnchor(s.ID), ContentsRowAnchor(s.ID)
		if n := out.BookmarkCount(card); n != 1 {
			t.Errorf("%s bookmarks = %d, want 1", card, n)
		}
		if n := out.BookmarkCount(row); n != 1 {
			t.Errorf("%s bookmarks = %d, want 1", row, n)
		}
		// ID, title and authors cells each link to the card.
		if n := len(out.LinksTo(card)); n != 3 {
			t.Errorf("links to %s = %d, want 3", card, n)
		}
		back := out.LinksTo(row)
		if len(back) != 1 || back[0].Text != BackLinkText {
			t.Errorf("back links to %s = %+v, want one %q", row, back, BackLinkText)
		}
	}
	if d := out.Dangling(); len(d) != 0 {
		t.Errorf("Dangling() = %v, want none", d)
	}
	if out.Tables != 1+len(subs) {
		t.Errorf("Tables = %d, want %d", out.Tables, 1+len(subs))
	}
}

func TestBuild_Content(t *testing.T) {
	t.Parallel()

	subs := []Submission{{
		ID:       " 7 ",
		Title:    "Pricing\n under  risk",
		Authors:  "A. Rao,\tB. Shah",
		Abstract: "Line one.\r\nLine two.",
	}}
	subs[0].ID = CleanText(subs[0].ID)
	out := buildOutline(t, subs, fixedOptions())

	want := []string{
		"IMRC 2025",
		"India Management Research Conference",
		"IIM Ahmedabad",
		"December 5-7, 2025",
		"Book of Abstracts",
		"Track: FAE",
		"Table of Contents",
		"Submission\nID",
		"Pricing under risk",
		"A. Rao, B. Shah",
		"Submission ID: 7",
		"Abstract: Line one. Line two.",
		BackLinkText,
	}
	for _, w := range want {
		if !slices.Contains(out.Paragraphs, w) {
			t.Errorf("missing paragraph %q", w)
		}
	}
}

func TestBuild_PreservesOrder(t *testing.T) {
	t.Parallel()

	subs := []Submission{{ID: "9"}, {ID: "2"}, {ID: "5"}}
	out := buildOutline(t, subs, fixedOptions())

	var cards []string
	for _, b := range out.Bookmarks {
		if strings.HasPrefix(b, cardPrefix) {
			cards = append(cards, b)
		}
	}
	want := []string{"SUB_9", "SUB_2", "SUB_5"}
	if !slices.Equal(cards, want) {
		t.Errorf("card order = %v, want %v", cards, want)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()

	render := func() []byte {
		doc, err := Build(sampleSubmissions(), fixedOptions())
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		data, err := doc.Bytes()
		if err != nil {
			t.Fatalf("Bytes() error = %v", err)
		}
		return data
	}
	if !bytes.Equal(render(), render()) {
		t.Error("same input and created time should give identical bytes")
	}
}

func TestBuild_Metadata(t *testing.T) {
	t.Parallel()

	doc, err := Build(sampleSubmissions(), fixedOptions())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if doc.Core.Title != "IMRC 2025 Book of Abstracts" {
		t.Errorf("Core.Title = %q", doc.Core.Title)
	}
	if doc.Core.Subject != "Track: FAE" {
		t.Errorf("Core.Subject = %q", doc.Core.Subject)
	}
	if !doc.Core.Created.Equal(fixedNow()) {
		t.Errorf("Core.Created = %v", doc.Core.Created)
	}
	if doc.DefaultFont != DefaultTheme().Font {
		t.Errorf("DefaultFont = %q", doc.DefaultFont)
	}
}

// ---------------------------------------------------------------------------
// TestBuild_Options - Event, track, dates and markup
// ---------------------------------------------------------------------------

func TestBuild_EventDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		date string
		want string
	}{
		{"literal", "Spring 2026", "Spring 2026"},
		{"auto preset", "auto:iso", "2025-12-01"},
		{"auto", "auto", "December 1, 2025"},
		{"range", "2026-03-02..2026-03-04", "March 2-4, 2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opts := fixedOptions()
			opts.Event = Event{Date: tt.date}
			out := buildOutline(t, sampleSubmissions(), opts)
			if !slices.Contains(out.Paragraphs, tt.want) {
				t.Errorf("date paragraph %q not found", tt.want)
			}
		})
	}
}

func TestBuild_DefaultTrack(t *testing.T) {
	t.Parallel()

	out := buildOutline(t, sampleSubmissions(), BuildOptions{Created: fixedNow()})
	if !slices.Contains(out.Paragraphs, "Track: "+DefaultTrack) {
		t.Errorf("default track %q not rendered", DefaultTrack)
	}
}

func TestBuild_Markup(t *testing.T) {
	t.Parallel()

	subs := []Submission{{ID: "1", Title: "A **bold** claim", Abstract: "Uses `go` *daily*."}}

	t.Run("enabled", func(t *testing.T) {
		t.Parallel()
		opts := fixedOptions()
		opts.Markup = true
		out := buildOutline(t, subs, opts)
		if !slices.Contains(out.Paragraphs, "A bold claim") {
			t.Error("markup should be rendered as formatting")
		}
		if !slices.Contains(out.Paragraphs, "Abstract: Uses go daily.") {
			t.Errorf("abstract paragraphs = %q", out.Paragraphs)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()
		out := buildOutline(t, subs, fixedOptions())
		if !slices.Contains(out.Paragraphs, "A **bold** claim") {
			t.Error("markup should be kept verbatim")
		}
	})
}

// ---------------------------------------------------------------------------
// TestBuild_Errors - Rejected inputs
// ---------------------------------------------------------------------------

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	badTheme := DefaultTheme()
	badTheme.Primary = "navy"

	tests := []struct {
		name    string
		subs    []Submission
		opts    BuildOptions
		wantErr error
	}{
		{"no submissions", nil, fixedOptions(), ErrNoSubmissions},
		{"invalid theme", sampleSubmissions(), BuildOptions{Theme: badTheme}, ErrInvalidTheme},
		{"reversed range", sampleSubmissions(), BuildOptions{Event: Event{Date: "2026-03-04..2026-03-02"}}, ErrInvalidDate},
		{"bad auto", sampleSubmissions(), BuildOptions{Event: Event{Date: "autoX"}}, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Build(tt.subs, tt.opts)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Build() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuild_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := build(ctx, sampleSubmissions(), BuildOptions{Created: time.Now()})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("build() error = %v, want context.Canceled", err)
	}
}
