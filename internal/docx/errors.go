package docx

import "errors"

// Sentinel errors for docx operations.
var (
	ErrNotDocx         = errors.New("not a docx archive")
	ErrMissingDocument = errors.New("word/document.xml not found")
	ErrMalformedXML    = errors.New("malformed document xml")
)
