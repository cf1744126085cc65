package docx

// Border is one edge of a cell border (w:top, w:left, ...).
// Size is in eighths of a point.
type Border struct {
	Size  int
	Color string
}

// Borders selects which cell edges get a border; nil edges are omitted.
type Borders struct {
	Top, Left, Bottom, Right *Border
}

// AllBorders returns the same border on every edge.
func AllBorders(b Border) *Borders {
	return &Borders{Top: &b, Left: &b, Bottom: &b, Right: &b}
}

// CellMargins are internal cell margins (w:tcMar).
type CellMargins struct {
	Top, Bottom, Left, Right Twips
}

// CellProps are cell-level properties (w:tcPr).
type CellProps struct {
	Width    Twips
	GridSpan int // number of grid columns spanned, 0 or 1 means one
	Borders  *Borders
	Shading  string // fill color, hex RRGGBB
	Margins  *CellMargins
}

// Cell is a w:tc element. A cell always holds at least one paragraph.
type Cell struct {
	Props      CellProps
	Paragraphs []*Paragraph
}

// Paragraph returns the first paragraph of the cell, creating it if needed.
func (c *Cell) Paragraph() *Paragraph {
	if len(c.Paragraphs) == 0 {
		c.Paragraphs = append(c.Paragraphs, &Paragraph{})
	}
	return c.Paragraphs[0]
}

// Row is a w:tr element.
type Row struct {
	Cells []*Cell
}

// Table is a w:tbl element with a fixed column grid.
type Table struct {
	Align Alignment
	Grid  []Twips // column widths
	Fixed bool    // fixed layout, widths are not autofit
	Rows  []*Row
}

// AddRow appends a row with one cell per grid column, each cell sized to
// its column.
func (t *Table) AddRow() *Row {
	r := &Row{Cells: make([]*Cell, len(t.Grid))}
	for i, w := range t.Grid {
		r.Cells[i] = &Cell{Props: CellProps{Width: w}}
	}
	t.Rows = append(t.Rows, r)
	return r
}

// AddMergedRow appends a row holding a single cell that spans every grid
// column.
func (t *Table) AddMergedRow() *Cell {
	var width Twips
	for _, w := range t.Grid {
		width += w
	}
	c := &Cell{Props: CellProps{Width: width, GridSpan: len(t.Grid)}}
	t.Rows = append(t.Rows, &Row{Cells: []*Cell{c}})
	return c
}
