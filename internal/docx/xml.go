package docx

import (
	"bytes"
	"encoding/xml"
	"math"
	"strconv"
)

const (
	nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

	xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

	monoFont = "Consolas"
)

// xmlWriter builds WordprocessingML by hand. Element order inside the
// property containers (pPr, rPr, tcPr, tblPr) follows the schema sequence,
// which Word enforces.
type xmlWriter struct {
	buf bytes.Buffer
}

// start writes an opening tag; attrs are name/value pairs.
func (w *xmlWriter) start(name string, attrs ...string) {
	w.buf.WriteByte('<')
	w.buf.WriteString(name)
	w.attrs(attrs)
	w.buf.WriteByte('>')
}

// empty writes a self-closing tag; attrs are name/value pairs.
func (w *xmlWriter) empty(name string, attrs ...string) {
	w.buf.WriteByte('<')
	w.buf.WriteString(name)
	w.attrs(attrs)
	w.buf.WriteString("/>")
}

func (w *xmlWriter) end(name string) {
	w.buf.WriteString("</")
	w.buf.WriteString(name)
	w.buf.WriteByte('>')
}

func (w *xmlWriter) attrs(attrs []string) {
	for i := 0; i+1 < len(attrs); i += 2 {
		w.buf.WriteByte(' ')
		w.buf.WriteString(attrs[i])
		w.buf.WriteString(`="`)
		w.text(attrs[i+1])
		w.buf.WriteByte('"')
	}
}

// text writes escaped character data. Characters outside the XML range
// are replaced with U+FFFD by xml.EscapeText.
func (w *xmlWriter) text(s string) {
	_ = xml.EscapeText(&w.buf, []byte(s))
}

// element writes <name>escaped text</name>.
func (w *xmlWriter) element(name, value string, attrs ...string) {
	w.start(name, attrs...)
	w.text(value)
	w.end(name)
}

func itoa[T ~int](v T) string {
	return strconv.Itoa(int(v))
}

func halfPoints(pt float64) string {
	return strconv.Itoa(int(math.Round(pt * 2)))
}

func (p *Paragraph) writeXML(w *xmlWriter) {
	if p.Props.Align == AlignDefault && p.Props.Spacing == nil && len(p.Content) == 0 {
		w.empty("w:p")
		return
	}
	w.start("w:p")
	p.Props.writeXML(w)
	for _, c := range p.Content {
		c.writeXML(w)
	}
	w.end("w:p")
}

func (pp ParagraphProps) writeXML(w *xmlWriter) {
	if pp.Align == AlignDefault && pp.Spacing == nil {
		return
	}
	w.start("w:pPr")
	if s := pp.Spacing; s != nil {
		attrs := []string{"w:before", itoa(s.Before), "w:after", itoa(s.After)}
		if s.Line > 0 {
			rule := s.LineRule
			if rule == "" {
				rule = "auto"
			}
			attrs = append(attrs, "w:line", strconv.Itoa(s.Line), "w:lineRule", rule)
		}
		w.empty("w:spacing", attrs...)
	}
	if pp.Align != AlignDefault {
		w.empty("w:jc", "w:val", string(pp.Align))
	}
	w.end("w:pPr")
}

func (rp RunProps) isZero() bool {
	return rp == RunProps{}
}

func (rp RunProps) writeXML(w *xmlWriter) {
	if rp.isZero() {
		return
	}
	w.start("w:rPr")
	font := rp.Font
	if rp.Mono {
		font = monoFont
	}
	if font != "" {
		w.empty("w:rFonts", "w:ascii", font, "w:hAnsi", font, "w:cs", font)
	}
	if rp.Bold {
		w.empty("w:b")
	}
	if rp.Italic {
		w.empty("w:i")
	}
	if rp.Color != "" {
		w.empty("w:color", "w:val", rp.Color)
	}
	if rp.Size > 0 {
		w.empty("w:sz", "w:val", halfPoints(rp.Size))
		w.empty("w:szCs", "w:val", halfPoints(rp.Size))
	}
	if rp.Underline {
		w.empty("w:u", "w:val", "single")
	}
	w.end("w:rPr")
}

func (r *Run) writeXML(w *xmlWriter) {
	w.start("w:r")
	r.Props.writeXML(w)
	switch r.Break {
	case BreakLine:
		w.empty("w:br")
	case BreakPage:
		w.empty("w:br", "w:type", "page")
	}
	if r.Text != "" {
		w.element("w:t", r.Text, "xml:space", "preserve")
	}
	w.end("w:r")
}

func (h *Hyperlink) writeXML(w *xmlWriter) {
	w.start("w:hyperlink", "w:anchor", h.Anchor, "w:history", "1")
	for _, r := range h.Runs {
		r.writeXML(w)
	}
	w.end("w:hyperlink")
}

func (b *bookmarkStart) writeXML(w *xmlWriter) {
	w.empty("w:bookmarkStart", "w:id", strconv.Itoa(b.ID), "w:name", b.Name)
}

func (b *bookmarkEnd) writeXML(w *xmlWriter) {
	w.empty("w:bookmarkEnd", "w:id", strconv.Itoa(b.ID))
}

func (t *Table) writeXML(w *xmlWriter) {
	var total Twips
	for _, g := range t.Grid {
		total += g
	}

	w.start("w:tbl")
	w.start("w:tblPr")
	if total > 0 {
		w.empty("w:tblW", "w:w", itoa(total), "w:type", "dxa")
	} else {
		w.empty("w:tblW", "w:w", "0", "w:type", "auto")
	}
	if t.Align != AlignDefault {
		w.empty("w:jc", "w:val", string(t.Align))
	}
	if t.Fixed {
		w.empty("w:tblLayout", "w:type", "fixed")
	}
	w.end("w:tblPr")

	w.start("w:tblGrid")
	for _, g := range t.Grid {
		w.empty("w:gridCol", "w:w", itoa(g))
	}
	w.end("w:tblGrid")

	for _, row := range t.Rows {
		w.start("w:tr")
		for _, c := range row.Cells {
			c.writeXML(w)
		}
		w.end("w:tr")
	}
	w.end("w:tbl")
}

func (c *Cell) writeXML(w *xmlWriter) {
	w.start("w:tc")
	c.Props.writeXML(w)
	if len(c.Paragraphs) == 0 {
		w.empty("w:p")
	}
	for _, p := range c.Paragraphs {
		p.writeXML(w)
	}
	w.end("w:tc")
}

func (cp CellProps) writeXML(w *xmlWriter) {
	w.start("w:tcPr")
	if cp.Width > 0 {
		w.empty("w:tcW", "w:w", itoa(cp.Width), "w:type", "dxa")
	}
	if cp.GridSpan > 1 {
		w.empty("w:gridSpan", "w:val", strconv.Itoa(cp.GridSpan))
	}
	if b := cp.Borders; b != nil {
		w.start("w:tcBorders")
		writeBorder(w, "w:top", b.Top)
		writeBorder(w, "w:left", b.Left)
		writeBorder(w, "w:bottom", b.Bottom)
		writeBorder(w, "w:right", b.Right)
		w.end("w:tcBorders")
	}
	if cp.Shading != "" {
		w.empty("w:shd", "w:val", "clear", "w:color", "auto", "w:fill", cp.Shading)
	}
	if m := cp.Margins; m != nil {
		w.start("w:tcMar")
		w.empty("w:top", "w:w", itoa(m.Top), "w:type", "dxa")
		w.empty("w:left", "w:w", itoa(m.Left), "w:type", "dxa")
		w.empty("w:bottom", "w:w", itoa(m.Bottom), "w:type", "dxa")
		w.empty("w:right", "w:w", itoa(m.Right), "w:type", "dxa")
		w.end("w:tcMar")
	}
	w.end("w:tcPr")
}

func writeBorder(w *xmlWriter, name string, b *Border) {
	if b == nil {
		return
	}
	color := b.Color
	if color == "" {
		color = "000000"
	}
	w.empty(name, "w:val", "single", "w:sz", strconv.Itoa(b.Size), "w:space", "0", "w:color", color)
}

func (ps PageSetup) writeXML(w *xmlWriter) {
	w.start("w:sectPr")
	w.empty("w:pgSz", "w:w", itoa(ps.Width), "w:h", itoa(ps.Height))
	w.empty("w:pgMar",
		"w:top", itoa(ps.Margins.Top),
		"w:right", itoa(ps.Margins.Right),
		"w:bottom", itoa(ps.Margins.Bottom),
		"w:left", itoa(ps.Margins.Left),
		"w:header", itoa(ps.Header),
		"w:footer", itoa(ps.Footer),
		"w:gutter", "0")
	w.end("w:sectPr")
}

// documentXML renders word/document.xml.
func (d *Document) documentXML() []byte {
	w := &xmlWriter{}
	w.buf.WriteString(xmlHeader)
	w.start("w:document", "xmlns:w", nsW, "xmlns:r", nsR)
	w.start("w:body")
	for _, b := range d.Body {
		b.writeXML(w)
	}
	d.Page.writeXML(w)
	w.end("w:body")
	w.end("w:document")
	return w.buf.Bytes()
}

// stylesXML renders word/styles.xml with the document default font.
func (d *Document) stylesXML() []byte {
	font := d.DefaultFont
	if font == "" {
		font = "Calibri"
	}
	size := d.DefaultSize
	if size <= 0 {
		size = 11
	}

	w := &xmlWriter{}
	w.buf.WriteString(xmlHeader)
	w.start("w:styles", "xmlns:w", nsW)

	w.start("w:docDefaults")
	w.start("w:rPrDefault")
	w.start("w:rPr")
	w.empty("w:rFonts", "w:ascii", font, "w:hAnsi", font, "w:eastAsia", font, "w:cs", font)
	w.empty("w:sz", "w:val", halfPoints(size))
	w.empty("w:szCs", "w:val", halfPoints(size))
	w.empty("w:lang", "w:val", "en-US")
	w.end("w:rPr")
	w.end("w:rPrDefault")
	w.start("w:pPrDefault")
	w.start("w:pPr")
	w.empty("w:spacing", "w:after", "200", "w:line", "276", "w:lineRule", "auto")
	w.end("w:pPr")
	w.end("w:pPrDefault")
	w.end("w:docDefaults")

	w.start("w:style", "w:type", "paragraph", "w:default", "1", "w:styleId", "Normal")
	w.empty("w:name", "w:val", "Normal")
	w.empty("w:qFormat")
	w.end("w:style")

	w.start("w:style", "w:type", "character", "w:default", "1", "w:styleId", "DefaultParagraphFont")
	w.empty("w:name", "w:val", "Default Paragraph Font")
	w.empty("w:uiPriority", "w:val", "1")
	w.empty("w:semiHidden")
	w.end("w:style")

	w.start("w:style", "w:type", "table", "w:default", "1", "w:styleId", "TableNormal")
	w.empty("w:name", "w:val", "Normal Table")
	w.empty("w:semiHidden")
	w.start("w:tblPr")
	w.empty("w:tblInd", "w:w", "0", "w:type", "dxa")
	w.start("w:tblCellMar")
	w.empty("w:top", "w:w", "0", "w:type", "dxa")
	w.empty("w:left", "w:w", "108", "w:type", "dxa")
	w.empty("w:bottom", "w:w", "0", "w:type", "dxa")
	w.empty("w:right", "w:w", "108", "w:type", "dxa")
	w.end("w:tblCellMar")
	w.end("w:tblPr")
	w.end("w:style")

	w.end("w:styles")
	return w.buf.Bytes()
}
