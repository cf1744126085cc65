package abstractbook

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alnah/go-abstractbook/internal/fileutil"
)

// Supported input extensions.
var (
	spreadsheetExts = []string{".xlsx", ".xlsm"}
	csvExts         = []string{".csv"}
)

// utf8BOM is stripped from the start of CSV input.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Table is the raw content of one sheet: a header row and data rows.
// Rows may be shorter than Header; missing cells are empty.
type Table struct {
	Sheet  string   // empty for CSV
	Sheets []string // every sheet in the workbook, empty for CSV
	Header []string
	Rows   [][]string
}

// ReadTable reads an .xlsx/.xlsm workbook or a .csv file. sheet selects the
// worksheet; empty means the first one. It is ignored for CSV.
func ReadTable(path, sheet string) (*Table, error) {
	csvInput := fileutil.HasExtension(path, csvExts...)
	if !csvInput && !fileutil.HasExtension(path, spreadsheetExts...) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedInput, path)
	}

	f, err := os.Open(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrInputNotFound, path, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrInputUnreadable, path, err)
	}
	defer func() { _ = f.Close() }()

	if info, err := f.Stat(); err == nil && info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInputUnreadable, path)
	}

	if csvInput {
		return ParseCSV(f)
	}
	return ParseWorkbook(f, sheet)
}

// ParseWorkbook reads one sheet of an Excel workbook.
func ParseWorkbook(r io.Reader, sheet string) (*Table, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputUnreadable, err)
	}
	defer func() { _ = wb.Close() }()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrInputUnreadable)
	}
	switch {
	case sheet == "":
		sheet = sheets[0]
	case !slices.Contains(sheets, sheet):
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrSheetNotFound, sheet, strings.Join(sheets, ", "))
	}

	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %v", ErrInputUnreadable, sheet, err)
	}

	t := newTable(rows)
	t.Sheet = sheet
	t.Sheets = sheets
	return t, nil
}

// ParseCSV reads comma-separated UTF-8 input with an optional BOM. Rows may
// have differing field counts.
func ParseCSV(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputUnreadable, err)
	}
	cr := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputUnreadable, err)
	}
	return newTable(rows), nil
}

func newTable(rows [][]string) *Table {
	if len(rows) == 0 {
		return &Table{}
	}
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}
	return &Table{Header: header, Rows: rows[1:]}
}

// Columns returns the non-empty header names.
func (t *Table) Columns() []string {
	cols := make([]string, 0, len(t.Header))
	for _, h := range t.Header {
		if h != "" {
			cols = append(cols, h)
		}
	}
	return cols
}

// index returns the position of each required header. The first column
// wins when a header repeats.
func (t *Table) index(required []string) (map[string]int, error) {
	pos := make(map[string]int, len(t.Header))
	for i, h := range t.Header {
		if _, dup := pos[h]; !dup && h != "" {
			pos[h] = i
		}
	}
	var missing []string
	for _, name := range required {
		if _, ok := pos[strings.TrimSpace(name)]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing, Available: t.Columns()}
	}
	return pos, nil
}

// Submissions converts data rows using cols. Every required header must be
// present or a *MissingColumnsError is returned. Blank rows are skipped.
func (t *Table) Submissions(cols Columns) ([]Submission, error) {
	cols = cols.withDefaults()
	pos, err := t.index(cols.Required())
	if err != nil {
		return nil, err
	}
	at := func(row []string, header string) string {
		i := pos[strings.TrimSpace(header)]
		if i < len(row) {
			return row[i]
		}
		return ""
	}

	subs := make([]Submission, 0, len(t.Rows))
	for i, row := range t.Rows {
		if isBlank(row) {
			continue
		}
		subs = append(subs, Submission{
			ID:       CleanText(at(row, cols.ID)),
			Title:    at(row, cols.Title),
			Authors:  at(row, cols.Authors),
			Abstract: at(row, cols.Abstract),
			Decision: at(row, cols.Decision),
			Row:      i + 2,
		})
	}
	return subs, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
