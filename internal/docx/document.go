package docx

import "time"

// Block is a body-level element: a paragraph or a table.
type Block interface {
	writeXML(w *xmlWriter)
}

// Inline is paragraph content: runs, hyperlinks and bookmark markers.
type Inline interface {
	writeXML(w *xmlWriter)
}

// Margins holds page margins.
type Margins struct {
	Top, Right, Bottom, Left Twips
}

// PageSetup describes the single section of the document.
type PageSetup struct {
	Width   Twips
	Height  Twips
	Margins Margins
	Header  Twips // distance from page edge to header
	Footer  Twips // distance from page edge to footer
}

// DefaultPageSetup returns US Letter with one inch margins.
func DefaultPageSetup() PageSetup {
	return PageSetup{
		Width:   LetterWidth,
		Height:  LetterHeight,
		Margins: Margins{Top: Inches(1), Right: Inches(1), Bottom: Inches(1), Left: Inches(1)},
		Header:  Inches(0.5),
		Footer:  Inches(0.5),
	}
}

// CoreProperties is the docProps/core.xml metadata.
type CoreProperties struct {
	Title   string
	Subject string
	Creator string
	Created time.Time
}

// Document is an in-memory WordprocessingML document.
type Document struct {
	Body        []Block
	Page        PageSetup
	Core        CoreProperties
	DefaultFont string  // document default font (w:docDefaults)
	DefaultSize float64 // document default size in points

	bookmarkID int
}

// New returns an empty document with default page setup.
func New() *Document {
	return &Document{
		Page:        DefaultPageSetup(),
		DefaultFont: "Calibri",
		DefaultSize: 11,
	}
}

// AddParagraph appends a new empty paragraph and returns it.
func (d *Document) AddParagraph() *Paragraph {
	p := &Paragraph{}
	d.Body = append(d.Body, p)
	return p
}

// AddTable appends a table with the given column widths and returns it.
func (d *Document) AddTable(widths ...Twips) *Table {
	t := &Table{Grid: widths, Fixed: true}
	d.Body = append(d.Body, t)
	return t
}

// AddPageBreak appends a paragraph containing only a page break.
func (d *Document) AddPageBreak() {
	p := d.AddParagraph()
	p.Content = append(p.Content, &Run{Break: BreakPage})
}

// Bookmark wraps the current content of p in a named bookmark.
// Bookmark ids are allocated from a per-document counter so they are
// unique even when names repeat.
func (d *Document) Bookmark(p *Paragraph, name string) {
	d.bookmarkID++
	id := d.bookmarkID
	content := make([]Inline, 0, len(p.Content)+2)
	content = append(content, &bookmarkStart{ID: id, Name: name})
	content = append(content, p.Content...)
	content = append(content, &bookmarkEnd{ID: id})
	p.Content = content
}

// Bookmarks returns the number of bookmarks allocated so far.
func (d *Document) Bookmarks() int {
	return d.bookmarkID
}

// Spacing sets explicit paragraph spacing. Line is in 240ths of a line
// when LineRule is "auto".
type Spacing struct {
	Before   Twips
	After    Twips
	Line     int
	LineRule string
}

// NoSpacing removes space before and after, single line height.
func NoSpacing() *Spacing {
	return &Spacing{Before: 0, After: 0, Line: 240, LineRule: "auto"}
}

// ParagraphProps are paragraph-level properties (w:pPr).
type ParagraphProps struct {
	Align   Alignment
	Spacing *Spacing
}

// Paragraph is a w:p element.
type Paragraph struct {
	Props   ParagraphProps
	Content []Inline
}

// AddRun appends a text run.
func (p *Paragraph) AddRun(text string, props RunProps) *Run {
	r := &Run{Text: text, Props: props}
	p.Content = append(p.Content, r)
	return r
}

// AddBreak appends a line break run.
func (p *Paragraph) AddBreak() {
	p.Content = append(p.Content, &Run{Break: BreakLine})
}

// AddHyperlink appends an internal hyperlink targeting a bookmark name.
func (p *Paragraph) AddHyperlink(text, anchor string, props RunProps) *Hyperlink {
	h := &Hyperlink{Anchor: anchor, Runs: []*Run{{Text: text, Props: props}}}
	p.Content = append(p.Content, h)
	return h
}

// Clear removes all content, keeping properties.
func (p *Paragraph) Clear() {
	p.Content = nil
}

// RunProps are character properties (w:rPr).
// Zero values inherit from the document defaults.
type RunProps struct {
	Font      string
	Size      float64 // points
	Color     string  // hex RRGGBB
	Bold      bool
	Italic    bool
	Underline bool
	Mono      bool // use a monospace font, overriding Font
}

// BreakType selects the kind of w:br written by a Run.
type BreakType int

// Break kinds.
const (
	BreakNone BreakType = iota
	BreakLine
	BreakPage
)

// Run is a w:r element holding text or a break.
type Run struct {
	Text  string
	Props RunProps
	Break BreakType
}

// Hyperlink is a w:hyperlink pointing at a bookmark in the same document.
type Hyperlink struct {
	Anchor string
	Runs   []*Run
}

type bookmarkStart struct {
	ID   int
	Name string
}

type bookmarkEnd struct {
	ID int
}
