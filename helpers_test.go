package abstractbook

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

var header = []string{"Submission ID", "Title", "Authors", "Abstract", "Decision"}

// fixedNow is the clock used wherever output must be reproducible.
var fixedNow = func() time.Time { return time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC) }

func sampleRows() [][]string {
	return [][]string{
		header,
		{"101", "Pricing under  uncertainty", "A. Rao, B. Shah", "We study\nprices.", "Oral Presentation"},
		{"102", "Supply chains", "C. Iyer", "Abstract two.", "Poster"},
		{"103", "Family firms", "D. Mehta", "Abstract three.", "Oral Presentation"},
		{"104", "Rejected work", "E. Nair", "Abstract four.", "Reject"},
	}
}

// writeWorkbook saves sheets (name -> rows) as an .xlsx file in a temp dir.
// The first entry of names becomes the first sheet.
func writeWorkbook(t *testing.T, names []string, sheets map[string][][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, name := range names {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				t.Fatalf("SetSheetName() error = %v", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("NewSheet(%q) error = %v", name, err)
		}
		for r, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatalf("CoordinatesToCellName() error = %v", err)
			}
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				t.Fatalf("SetSheetRow() error = %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "submissions.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs() error = %v", err)
	}
	return path
}

// writeSheet saves rows as a single-sheet workbook.
func writeSheet(t *testing.T, rows [][]string) string {
	t.Helper()
	return writeWorkbook(t, []string{"Submissions"}, map[string][][]string{"Submissions": rows})
}

// writeCSV saves rows as a .csv file in a temp dir.
func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "submissions.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func csvOf(rows [][]string) string {
	var b strings.Builder
	for _, row := range rows {
		for i, c := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(`"` + strings.ReplaceAll(c, `"`, `""`) + `"`)
		}
		b.WriteString("\r\n")
	}
	return b.String()
}

func sampleSubmissions() []Submission {
	return []Submission{
		{ID: "101", Title: "Pricing", Authors: "A. Rao", Abstract: "One.", Decision: DefaultDecision, Row: 2},
		{ID: "103", Title: "Family firms", Authors: "D. Mehta", Abstract: "Three.", Decision: DefaultDecision, Row: 4},
	}
}
