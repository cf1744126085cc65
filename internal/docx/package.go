package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"time"
)

// archiveTime is stamped on every zip entry so output is reproducible.
var archiveTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

const contentTypesXML = xmlHeader + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/word/settings.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"/>` +
	`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>` +
	`<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>` +
	`</Types>`

const packageRelsXML = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` +
	`<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>` +
	`</Relationships>`

const documentRelsXML = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/settings" Target="settings.xml"/>` +
	`</Relationships>`

const settingsXML = xmlHeader + `<w:settings xmlns:w="` + nsW + `">` +
	`<w:defaultTabStop w:val="720"/>` +
	`<w:characterSpacingControl w:val="doNotCompress"/>` +
	`<w:compat><w:compatSetting w:name="compatibilityMode" w:uri="http://schemas.microsoft.com/office/word" w:val="15"/></w:compat>` +
	`</w:settings>`

// Application is written to docProps/app.xml.
const Application = "go-abstractbook"

func appXML() []byte {
	w := &xmlWriter{}
	w.buf.WriteString(xmlHeader)
	w.start("Properties",
		"xmlns", "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties",
		"xmlns:vt", "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes")
	w.element("Application", Application)
	w.end("Properties")
	return w.buf.Bytes()
}

func (c CoreProperties) xml() []byte {
	w := &xmlWriter{}
	w.buf.WriteString(xmlHeader)
	w.start("cp:coreProperties",
		"xmlns:cp", "http://schemas.openxmlformats.org/package/2006/metadata/core-properties",
		"xmlns:dc", "http://purl.org/dc/elements/1.1/",
		"xmlns:dcterms", "http://purl.org/dc/terms/",
		"xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance")
	if c.Title != "" {
		w.element("dc:title", c.Title)
	}
	if c.Subject != "" {
		w.element("dc:subject", c.Subject)
	}
	if c.Creator != "" {
		w.element("dc:creator", c.Creator)
		w.element("cp:lastModifiedBy", c.Creator)
	}
	if !c.Created.IsZero() {
		stamp := c.Created.UTC().Format(time.RFC3339)
		w.element("dcterms:created", stamp, "xsi:type", "dcterms:W3CDTF")
		w.element("dcterms:modified", stamp, "xsi:type", "dcterms:W3CDTF")
	}
	w.end("cp:coreProperties")
	return w.buf.Bytes()
}

// Write serializes the document as a .docx archive.
func (d *Document) Write(out io.Writer) error {
	parts := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(packageRelsXML)},
		{"docProps/app.xml", appXML()},
		{"docProps/core.xml", d.Core.xml()},
		{"word/_rels/document.xml.rels", []byte(documentRelsXML)},
		{"word/document.xml", d.documentXML()},
		{"word/settings.xml", []byte(settingsXML)},
		{"word/styles.xml", d.stylesXML()},
	}

	zw := zip.NewWriter(out)
	for _, p := range parts {
		hdr := &zip.FileHeader{
			Name:     p.name,
			Method:   zip.Deflate,
			Modified: archiveTime,
		}
		fw, err := zw.CreateHeader(hdr)
		if err != nil {
			return fmt.Errorf("creating %s: %w", p.name, err)
		}
		if _, err := fw.Write(p.data); err != nil {
			return fmt.Errorf("writing %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("closing archive: %w", err)
	}
	return nil
}

// Bytes serializes the document into memory.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
