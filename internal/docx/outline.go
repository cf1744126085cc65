package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Link is an internal hyperlink found in a document.
type Link struct {
	Anchor string
	Text   string
}

// Outline is the navigational skeleton of a document: its bookmarks,
// internal links and paragraph text in document order.
type Outline struct {
	Bookmarks  []string
	Links      []Link
	Paragraphs []string
	Tables     int
}

// HasBookmark reports whether a bookmark with the given name exists.
func (o *Outline) HasBookmark(name string) bool {
	return o.BookmarkCount(name) > 0
}

// BookmarkCount returns how many bookmarks carry the given name.
func (o *Outline) BookmarkCount(name string) int {
	n := 0
	for _, b := range o.Bookmarks {
		if b == name {
			n++
		}
	}
	return n
}

// LinksTo returns the links whose anchor is name.
func (o *Outline) LinksTo(name string) []Link {
	var links []Link
	for _, l := range o.Links {
		if l.Anchor == name {
			links = append(links, l)
		}
	}
	return links
}

// Dangling returns links whose anchor matches no bookmark.
func (o *Outline) Dangling() []Link {
	known := make(map[string]bool, len(o.Bookmarks))
	for _, b := range o.Bookmarks {
		known[b] = true
	}
	var dangling []Link
	for _, l := range o.Links {
		if !known[l.Anchor] {
			dangling = append(dangling, l)
		}
	}
	return dangling
}

// ReadOutline parses a .docx archive held in memory.
func ReadOutline(data []byte) (*Outline, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotDocx, err)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, ErrMissingDocument
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, fmt.Errorf("opening document.xml: %w", err)
	}
	defer func() { _ = rc.Close() }()

	return parseOutline(rc)
}

func parseOutline(r io.Reader) (*Outline, error) {
	out := &Outline{}
	dec := xml.NewDecoder(r)

	var (
		para     strings.Builder
		link     *Link
		linkText strings.Builder
		inPara   bool
		inText   bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedXML, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inPara = true
				para.Reset()
			case "t":
				inText = true
			case "br":
				if inPara {
					para.WriteByte('\n')
				}
			case "tbl":
				out.Tables++
			case "bookmarkStart":
				out.Bookmarks = append(out.Bookmarks, attr(t, "name"))
			case "hyperlink":
				link = &Link{Anchor: attr(t, "anchor")}
				linkText.Reset()
			}

		case xml.CharData:
			if inText {
				para.Write(t)
				if link != nil {
					linkText.Write(t)
				}
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "hyperlink":
				if link != nil {
					link.Text = linkText.String()
					out.Links = append(out.Links, *link)
					link = nil
				}
			case "p":
				if inPara {
					out.Paragraphs = append(out.Paragraphs, para.String())
					inPara = false
				}
			}
		}
	}

	return out, nil
}

func attr(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}
