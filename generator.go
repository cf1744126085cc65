package abstractbook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alnah/go-abstractbook/internal/dateutil"
	"github.com/alnah/go-abstractbook/internal/fileutil"
	"github.com/alnah/go-abstractbook/internal/logfields"
)

// outputPerm is the mode of written books.
const outputPerm = 0o644

// Generator turns a submissions spreadsheet into a book of abstracts.
// Create with NewGenerator; a Generator is safe to reuse.
type Generator struct {
	theme    *Theme
	event    Event
	decision string
	columns  Columns
	sheet    string
	markup   bool
	logger   *slog.Logger
	now      func() time.Time
}

// NewGenerator creates a Generator with the IMRC defaults, customized by
// opts. It returns ErrInvalidTheme or ErrInvalidDate for bad options.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		theme:    DefaultTheme(),
		event:    DefaultEvent(),
		decision: DefaultDecision,
		columns:  DefaultColumns(),
		logger:   slog.New(slog.DiscardHandler),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}

	if err := g.theme.Validate(); err != nil {
		return nil, err
	}
	if _, err := dateutil.Resolve(g.event.Date, time.Time{}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return g, nil
}

// Generate reads in.Path, keeps the rows matching the decision filter and
// renders them. Nothing is written; see WriteFile.
func (g *Generator) Generate(ctx context.Context, in Input) (*Result, error) {
	start := time.Now()
	track := orDefault(in.Track, DefaultTrack)

	table, subs, err := g.load(in.Path)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kept := FilterByDecision(subs, g.decision)
	if len(kept) == 0 {
		return nil, &NoSubmissionsError{Decision: g.decision, Rows: len(subs), Seen: DecisionCounts(subs)}
	}

	dups := DuplicateIDs(kept)
	for _, id := range dups {
		g.logger.Warn("duplicate submission id; its anchors collide", logfields.SubmissionID(id))
	}

	doc, err := build(ctx, kept, BuildOptions{
		Track:   track,
		Event:   g.event,
		Theme:   g.theme,
		Markup:  g.markup,
		Created: g.now(),
	})
	if err != nil {
		return nil, err
	}
	data, err := doc.Bytes()
	if err != nil {
		return nil, fmt.Errorf("serializing document: %w", err)
	}

	res := &Result{
		Document:    data,
		Submissions: kept,
		Sheet:       table.Sheet,
		Rows:        len(subs),
		Included:    len(kept),
		Skipped:     len(subs) - len(kept),
		Duplicates:  dups,
		Bookmarks:   doc.Bookmarks(),
	}
	g.logger.Debug("book generated",
		logfields.Input(in.Path),
		logfields.Track(track),
		logfields.Rows(res.Rows),
		logfields.Included(res.Included),
		logfields.Skipped(res.Skipped),
		logfields.Duplicates(len(dups)),
		logfields.Bytes(len(data)),
		logfields.Since(start),
	)
	return res, nil
}

// load reads the table and converts its rows.
func (g *Generator) load(path string) (*Table, []Submission, error) {
	table, err := ReadTable(path, g.sheet)
	if err != nil {
		return nil, nil, err
	}
	g.logger.Debug("input read",
		logfields.Input(path),
		logfields.Sheet(table.Sheet),
		logfields.Rows(len(table.Rows)),
	)
	subs, err := table.Submissions(g.columns)
	if err != nil {
		return nil, nil, err
	}
	return table, subs, nil
}

// Report describes an input without rendering it.
type Report struct {
	Path       string         `json:"path"`
	Sheet      string         `json:"sheet,omitempty"`
	Sheets     []string       `json:"sheets,omitempty"`
	Columns    []string       `json:"columns"`
	Missing    []string       `json:"missing,omitempty"`
	Rows       int            `json:"rows"`
	Decision   string         `json:"decision"`
	Decisions  map[string]int `json:"decisions"`
	Included   int            `json:"included"`
	Duplicates []string       `json:"duplicates,omitempty"`
}

// Inspect reads and validates the input the way Generate does and reports
// what would be included. Missing columns are reported in the Report and
// returned as a *MissingColumnsError.
func (g *Generator) Inspect(ctx context.Context, path string) (*Report, error) {
	table, err := ReadTable(path, g.sheet)
	if err != nil {
		return nil, err
	}
	rep := &Report{
		Path:     path,
		Sheet:    table.Sheet,
		Sheets:   table.Sheets,
		Columns:  table.Columns(),
		Decision: g.decision,
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	subs, err := table.Submissions(g.columns)
	var mce *MissingColumnsError
	if errors.As(err, &mce) {
		rep.Missing = mce.Missing
		return rep, err
	}
	if err != nil {
		return nil, err
	}

	kept := FilterByDecision(subs, g.decision)
	rep.Rows = len(subs)
	rep.Decisions = DecisionCounts(subs)
	rep.Included = len(kept)
	rep.Duplicates = DuplicateIDs(kept)
	return rep, nil
}

// WriteFile writes the generated book to path atomically: a failed write
// leaves any existing file untouched and no partial file behind.
func WriteFile(path string, r *Result) error {
	if r == nil || len(r.Document) == 0 {
		return fmt.Errorf("%w: empty document", ErrWriteOutput)
	}
	if err := fileutil.WriteFileAtomic(path, r.Document, outputPerm); err != nil {
		if errors.Is(err, os.ErrPermission) {
			return fmt.Errorf("%w: %s: %w", ErrOutputPermission, path, err)
		}
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, path, err)
	}
	return nil
}
