package abstractbook

import (
	"context"
	"fmt"
	"time"

	"github.com/alnah/go-abstractbook/internal/dateutil"
	"github.com/alnah/go-abstractbook/internal/docx"
)

// BackLinkText is the label of the link under each card.
const BackLinkText = "↑ Back to Contents"

// contentsHeading is the title above the contents table.
const contentsHeading = "Table of Contents"

// contentsHeaders holds the header cell lines of the contents table.
var contentsHeaders = [][]string{{"Submission", "ID"}, {"Title"}, {"Authors"}}

// Page layout.
var (
	pageMargins = docx.Margins{
		Top:    docx.Inches(0.7),
		Right:  docx.Inches(0.75),
		Bottom: docx.Inches(0.7),
		Left:   docx.Inches(0.75),
	}
	contentsWidths = []docx.Twips{docx.Inches(0.8), docx.Inches(3.5), docx.Inches(2.5)}
	cardWidths     = []docx.Twips{docx.Inches(3.4), docx.Inches(3.4)}
)

// Cell margins in twips, as top, bottom, left, right.
var (
	headerMargins   = docx.CellMargins{Top: 40, Bottom: 40, Left: 40, Right: 40}
	rowMargins      = docx.CellMargins{Top: 50, Bottom: 50, Left: 60, Right: 60}
	cardHeadMargins = docx.CellMargins{Top: 40, Bottom: 40, Left: 100, Right: 100}
	abstractMargins = docx.CellMargins{Top: 80, Bottom: 80, Left: 100, Right: 100}
)

// Border widths in eighths of a point.
const (
	headerBorder = 6
	rowBorder    = 4
	cardBorder   = 10
)

// BuildOptions controls the rendered book.
type BuildOptions struct {
	Track   string // empty = DefaultTrack
	Event   Event  // empty fields = DefaultEvent
	Theme   *Theme // nil = DefaultTheme
	Markup  bool   // render inline Markdown in titles and abstracts
	Created time.Time
}

// Build renders subs, in order, into a book: title page, hyperlinked table
// of contents, then one card per submission with a link back to its
// contents row. It returns ErrNoSubmissions for an empty slice.
func Build(subs []Submission, opts BuildOptions) (*docx.Document, error) {
	return build(context.Background(), subs, opts)
}

func build(ctx context.Context, subs []Submission, opts BuildOptions) (*docx.Document, error) {
	if len(subs) == 0 {
		return nil, ErrNoSubmissions
	}
	theme := opts.Theme
	if theme == nil {
		theme = DefaultTheme()
	}
	if err := theme.Validate(); err != nil {
		return nil, err
	}
	event := opts.Event.withDefaults()
	now := opts.Created
	if now.IsZero() {
		now = time.Now()
	}
	date, err := dateutil.Resolve(event.Date, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	event.Date = date

	b := &builder{
		doc:    docx.New(),
		theme:  theme,
		event:  event,
		track:  orDefault(opts.Track, DefaultTrack),
		markup: opts.Markup,
	}
	b.doc.Page.Margins = pageMargins
	b.doc.DefaultFont = theme.Font
	b.doc.Core = docx.CoreProperties{
		Title:   event.Name + " " + event.Heading,
		Subject: "Track: " + b.track,
		Creator: event.Conference,
		Created: opts.Created,
	}

	b.titlePage()
	b.contents(subs)
	for i, s := range subs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		b.card(s, i == len(subs)-1)
	}
	return b.doc, nil
}

type builder struct {
	doc    *docx.Document
	theme  *Theme
	event  Event
	track  string
	markup bool
}

func (b *builder) props(size float64, color string) docx.RunProps {
	return docx.RunProps{Font: b.theme.Font, Size: size, Color: color}
}

func (b *builder) linkProps(size float64) docx.RunProps {
	p := b.props(size, b.theme.Primary)
	p.Underline = true
	return p
}

func (b *builder) blank(n int) {
	for range n {
		b.doc.AddParagraph()
	}
}

func (b *builder) centered(text string, props docx.RunProps) *docx.Paragraph {
	p := b.doc.AddParagraph()
	p.Props.Align = docx.AlignCenter
	p.AddRun(text, props)
	return p
}

func (b *builder) titlePage() {
	t := b.theme
	b.blank(4)
	name := b.props(56, t.Primary)
	name.Font = t.TitleFont
	name.Bold = true
	b.centered(b.event.Name, name)
	b.blank(1)
	b.centered(b.event.Conference, b.props(22, t.Primary))
	b.blank(1)
	b.centered(b.event.Host, b.props(18, t.Muted))
	b.centered(b.event.Date, b.props(14, t.Muted))
	b.blank(3)
	heading := b.props(36, t.Text)
	heading.Bold = true
	b.centered(b.event.Heading, heading)
	b.blank(1)
	b.centered("Track: "+b.track, b.props(20, t.Primary))
	b.doc.AddPageBreak()
}

func (b *builder) contents(subs []Submission) {
	t := b.theme
	heading := b.props(24, t.Primary)
	heading.Bold = true
	b.doc.Bookmark(b.centered(contentsHeading, heading), ContentsAnchor)
	b.blank(1)

	tbl := b.doc.AddTable(contentsWidths...)
	tbl.Align = docx.AlignCenter

	head := b.props(10, t.OnPrimary)
	head.Bold = true
	headBorder := docx.AllBorders(docx.Border{Size: headerBorder, Color: t.Primary})
	for i, c := range tbl.AddRow().Cells {
		p := c.Paragraph()
		p.Props.Align = docx.AlignCenter
		p.Props.Spacing = docx.NoSpacing()
		for j, line := range contentsHeaders[i] {
			if j > 0 {
				p.AddBreak()
			}
			p.AddRun(line, head)
		}
		c.Props.Shading = t.Primary
		c.Props.Margins = &headerMargins
		c.Props.Borders = headBorder
	}

	link := b.linkProps(10)
	grid := docx.AllBorders(docx.Border{Size: rowBorder, Color: t.GridLine})
	for i, s := range subs {
		target := CardAnchor(s.ID)
		cells := tbl.AddRow().Cells

		id := cells[0].Paragraph()
		id.AddHyperlink(s.ID, target, link)
		b.doc.Bookmark(id, ContentsRowAnchor(s.ID))
		id.Props.Align = docx.AlignCenter

		title := cells[1].Paragraph()
		title.Content = append(title.Content, b.hyperlink(target, b.spans(s.Title), link))
		title.Props.Align = docx.AlignLeft

		authors := cells[2].Paragraph()
		authors.AddHyperlink(CleanText(s.Authors), target, link)
		authors.Props.Align = docx.AlignLeft

		fill := t.ZebraEven
		if i%2 == 1 {
			fill = t.ZebraOdd
		}
		for _, c := range cells {
			c.Props.Shading = fill
			c.Props.Margins = &rowMargins
			c.Props.Borders = grid
		}
	}
	b.doc.AddPageBreak()
}

func (b *builder) card(s Submission, last bool) {
	t := b.theme
	edge := &docx.Border{Size: cardBorder, Color: t.Primary}

	tbl := b.doc.AddTable(cardWidths...)
	tbl.Align = docx.AlignCenter

	head := b.props(11, t.OnPrimary)
	head.Bold = true
	row := tbl.AddRow()
	left, right := row.Cells[0], row.Cells[1]

	lp := left.Paragraph()
	lp.AddRun("Submission ID: "+s.ID, head)
	b.doc.Bookmark(lp, CardAnchor(s.ID))
	lp.Props.Spacing = docx.NoSpacing()

	rp := right.Paragraph()
	rp.AddRun("Track: "+b.track, head)
	rp.Props.Align = docx.AlignRight
	rp.Props.Spacing = docx.NoSpacing()

	for _, c := range row.Cells {
		c.Props.Shading = t.Primary
		c.Props.Margins = &cardHeadMargins
	}
	left.Props.Borders = &docx.Borders{Top: edge, Left: edge, Bottom: edge}
	right.Props.Borders = &docx.Borders{Top: edge, Right: edge, Bottom: edge}

	titleCell := tbl.AddMergedRow()
	title := titleCell.Paragraph()
	titleProps := b.props(13, t.Primary)
	titleProps.Bold = true
	b.addSpans(title, b.spans(s.Title), titleProps)
	title.Props.Align = docx.AlignCenter
	title.Props.Spacing = docx.NoSpacing()
	titleCell.Props.Borders = &docx.Borders{Left: edge, Right: edge}

	authorsCell := tbl.AddMergedRow()
	authors := authorsCell.Paragraph()
	authorsProps := b.props(11, t.Muted)
	authorsProps.Italic = true
	authors.AddRun(CleanText(s.Authors), authorsProps)
	authors.Props.Align = docx.AlignCenter
	authors.Props.Spacing = docx.NoSpacing()
	authorsCell.Props.Shading = t.AuthorsFill
	authorsCell.Props.Borders = &docx.Borders{Left: edge, Right: edge}

	abstractCell := tbl.AddMergedRow()
	abstract := abstractCell.Paragraph()
	label := b.props(11, t.Primary)
	label.Bold = true
	abstract.AddRun("Abstract: ", label)
	b.addSpans(abstract, b.spans(s.Abstract), b.props(11, t.Text))
	abstract.Props.Align = docx.AlignJustify
	abstractCell.Props.Margins = &abstractMargins
	abstractCell.Props.Borders = &docx.Borders{Left: edge, Right: edge, Bottom: edge}

	back := b.doc.AddParagraph()
	back.Props.Align = docx.AlignRight
	back.AddHyperlink(BackLinkText, ContentsRowAnchor(s.ID), b.linkProps(9))

	if !last {
		b.doc.AddParagraph().AddRun("", docx.RunProps{Size: 8})
	}
}

// spans cleans s and, with markup enabled, splits it into formatted spans.
func (b *builder) spans(s string) []span {
	s = CleanText(s)
	if !b.markup {
		return []span{{Text: s}}
	}
	if spans := parseInline(s); len(spans) > 0 {
		return spans
	}
	return []span{{Text: s}}
}

func (b *builder) runs(spans []span, base docx.RunProps) []*docx.Run {
	runs := make([]*docx.Run, 0, len(spans))
	for _, sp := range spans {
		p := base
		p.Bold = p.Bold || sp.Bold
		p.Italic = p.Italic || sp.Italic
		p.Mono = sp.Code
		runs = append(runs, &docx.Run{Text: sp.Text, Props: p})
	}
	return runs
}

func (b *builder) addSpans(p *docx.Paragraph, spans []span, base docx.RunProps) {
	for _, r := range b.runs(spans, base) {
		p.Content = append(p.Content, r)
	}
}

func (b *builder) hyperlink(anchor string, spans []span, base docx.RunProps) *docx.Hyperlink {
	return &docx.Hyperlink{Anchor: anchor, Runs: b.runs(spans, base)}
}
