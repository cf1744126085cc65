// Package docx writes and reads the small subset of WordprocessingML
// (Office Open XML) needed for a fixed-shape report.
//
// # Model
//
//	Document
//	    ├── Paragraph  (runs, hyperlinks, bookmarks, breaks)
//	    └── Table      (rows of cells, each cell holding paragraphs)
//
// Formatting that the high-level model of most document libraries hides
// (cell borders, cell shading, cell margins, zero paragraph spacing,
// internal hyperlinks to bookmarks) is expressed directly on the model
// types and written as the corresponding w:tcBorders, w:shd, w:tcMar,
// w:spacing, w:hyperlink and w:bookmarkStart elements.
//
// # Package Layout
//
// Document.Write produces a minimal, valid .docx archive:
//
//	[Content_Types].xml
//	_rels/.rels
//	docProps/app.xml
//	docProps/core.xml
//	word/_rels/document.xml.rels
//	word/document.xml
//	word/settings.xml
//	word/styles.xml
//
// Archive entries carry a fixed timestamp so identical documents produce
// identical bytes.
//
// # Reading
//
// ReadOutline parses word/document.xml back into bookmarks, internal links
// and paragraph text, which is enough to verify navigation in a generated
// document.
package docx
