package abstractbook

import (
	"log/slog"
	"time"
)

// Defaults applied when no value is configured.
const (
	DefaultInput    = "IMRC2025_submissions.xlsx"
	DefaultOutput   = "IMRC2025_Book_of_Abstracts.docx"
	DefaultTrack    = "FAE"
	DefaultDecision = "Oral Presentation"
)

// Submission is one row of the input. ID is whitespace-normalized; the
// other fields are kept as read and cleaned when rendered.
type Submission struct {
	ID       string
	Title    string
	Authors  string
	Abstract string
	Decision string
	Row      int // 1-based sheet row, the header being row 1
}

// Columns maps each field to the header text of its input column.
type Columns struct {
	ID       string
	Title    string
	Authors  string
	Abstract string
	Decision string
}

// DefaultColumns returns the IMRC submission export headers.
func DefaultColumns() Columns {
	return Columns{
		ID:       "Submission ID",
		Title:    "Title",
		Authors:  "Authors",
		Abstract: "Abstract",
		Decision: "Decision",
	}
}

// Required lists the headers in field order.
func (c Columns) Required() []string {
	return []string{c.ID, c.Title, c.Authors, c.Abstract, c.Decision}
}

// withDefaults fills empty headers from DefaultColumns.
func (c Columns) withDefaults() Columns {
	d := DefaultColumns()
	c.ID = orDefault(c.ID, d.ID)
	c.Title = orDefault(c.Title, d.Title)
	c.Authors = orDefault(c.Authors, d.Authors)
	c.Abstract = orDefault(c.Abstract, d.Abstract)
	c.Decision = orDefault(c.Decision, d.Decision)
	return c
}

// Event is the title page text.
type Event struct {
	Name       string // "IMRC 2025"
	Conference string // "India Management Research Conference"
	Host       string // "IIM Ahmedabad"
	Date       string // literal, "auto[:FORMAT]" or "YYYY-MM-DD..YYYY-MM-DD"
	Heading    string // "Book of Abstracts"
}

// DefaultEvent returns the IMRC 2025 branding.
func DefaultEvent() Event {
	return Event{
		Name:       "IMRC 2025",
		Conference: "India Management Research Conference",
		Host:       "IIM Ahmedabad",
		Date:       "December 5-7, 2025",
		Heading:    "Book of Abstracts",
	}
}

// withDefaults fills empty fields from DefaultEvent.
func (e Event) withDefaults() Event {
	d := DefaultEvent()
	e.Name = orDefault(e.Name, d.Name)
	e.Conference = orDefault(e.Conference, d.Conference)
	e.Host = orDefault(e.Host, d.Host)
	e.Date = orDefault(e.Date, d.Date)
	e.Heading = orDefault(e.Heading, d.Heading)
	return e
}

// Input is one generation request.
type Input struct {
	Path  string // .xlsx, .xlsm or .csv
	Track string // empty = DefaultTrack
}

// Result is a generated book.
type Result struct {
	Document    []byte       // .docx bytes
	Submissions []Submission // included, in input order
	Sheet       string       // sheet read; empty for CSV
	Rows        int          // data rows read
	Included    int
	Skipped     int
	Duplicates  []string // IDs whose anchors collide
	Bookmarks   int
}

// Option configures a Generator.
type Option func(*Generator)

// WithTheme sets the colors and fonts. A nil theme keeps the default.
func WithTheme(t *Theme) Option {
	return func(g *Generator) {
		if t != nil {
			g.theme = t
		}
	}
}

// WithEvent sets the title page text. Empty fields keep their defaults.
func WithEvent(e Event) Option {
	return func(g *Generator) {
		g.event = e.withDefaults()
	}
}

// WithDecision sets the decision value of included rows.
func WithDecision(decision string) Option {
	return func(g *Generator) {
		if decision != "" {
			g.decision = decision
		}
	}
}

// WithColumns remaps input headers. Empty fields keep their defaults.
func WithColumns(c Columns) Option {
	return func(g *Generator) {
		g.columns = c.withDefaults()
	}
}

// WithSheet selects the worksheet to read. Empty means the first sheet.
func WithSheet(name string) Option {
	return func(g *Generator) {
		g.sheet = name
	}
}

// WithInlineMarkup renders *italic*, **bold** and `code` in titles and
// abstracts.
func WithInlineMarkup(enabled bool) Option {
	return func(g *Generator) {
		g.markup = enabled
	}
}

// WithLogger sets the diagnostic logger. A nil logger keeps the default,
// which discards.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithNow sets the clock used for "auto" dates and document metadata.
func WithNow(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
