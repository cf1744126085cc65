package abstractbook

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// span is a run of text with uniform inline formatting.
type span struct {
	Text   string
	Bold   bool
	Italic bool
	Code   bool
}

// inlineParser parses Markdown inline syntax. Block syntax is not rendered:
// input that does not parse as a single paragraph stays plain text.
var inlineParser = goldmark.New().Parser()

// parseInline splits s into formatted spans. s should already be cleaned.
func parseInline(s string) []span {
	if s == "" {
		return nil
	}
	source := []byte(s)
	doc := inlineParser.Parse(text.NewReader(source))

	para, ok := doc.FirstChild().(*ast.Paragraph)
	if !ok || doc.ChildCount() != 1 {
		return []span{{Text: s}}
	}

	w := &spanWriter{source: source}
	w.walk(para, span{})
	if len(w.spans) == 0 {
		return []span{{Text: s}}
	}
	return w.spans
}

type spanWriter struct {
	source []byte
	spans  []span
}

func (w *spanWriter) walk(n ast.Node, style span) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Emphasis:
			inner := style
			if node.Level >= 2 {
				inner.Bold = true
			} else {
				inner.Italic = true
			}
			w.walk(node, inner)
		case *ast.CodeSpan:
			inner := style
			inner.Code = true
			w.emit(w.rawText(node), inner)
		case *ast.Text:
			w.emit(string(unescape(node.Segment.Value(w.source))), style)
			if node.SoftLineBreak() || node.HardLineBreak() {
				w.emit(" ", style)
			}
		case *ast.String:
			w.emit(string(node.Value), style)
		case *ast.RawHTML:
			for i := 0; i < node.Segments.Len(); i++ {
				seg := node.Segments.At(i)
				w.emit(string(seg.Value(w.source)), style)
			}
		case *ast.AutoLink:
			w.emit(string(node.Label(w.source)), style)
		default:
			w.walk(node, style)
		}
	}
}

// rawText concatenates the text children of a code span verbatim.
func (w *spanWriter) rawText(n ast.Node) string {
	var b []byte
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b = append(b, t.Segment.Value(w.source)...)
		}
	}
	return string(b)
}

// emit appends s, merging with the previous span when styles match.
func (w *spanWriter) emit(s string, style span) {
	if s == "" {
		return
	}
	if n := len(w.spans); n > 0 {
		last := &w.spans[n-1]
		if last.Bold == style.Bold && last.Italic == style.Italic && last.Code == style.Code {
			last.Text += s
			return
		}
	}
	style.Text = s
	w.spans = append(w.spans, style)
}

func unescape(b []byte) []byte {
	b = util.UnescapePunctuations(b)
	b = util.ResolveNumericReferences(b)
	return util.ResolveEntityNames(b)
}
