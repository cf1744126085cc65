// Package abstractbook builds a conference book of abstracts as a Word
// document from a submissions spreadsheet.
//
// # Quick Start
//
// Create a generator, generate, and write the result:
//
//	gen, err := abstractbook.NewGenerator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := gen.Generate(ctx, abstractbook.Input{
//	    Path:  "IMRC2025_submissions.xlsx",
//	    Track: "FAE",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := abstractbook.WriteFile("book.docx", result); err != nil {
//	    log.Fatal(err)
//	}
//
// # Document Layout
//
// The book has three parts:
//
//  1. A title page with the event name, conference, host, date and track
//  2. A table of contents, one row per submission, linking to its card
//  3. One card per submission (ID, track, title, authors, abstract) with a
//     link back to its contents row
//
// Cards are bookmarked SUB_<id> and contents rows TOC_SUB_<id>, so every
// link resolves inside the document. Verify reads a generated book back and
// checks those pairs.
//
// # Input
//
// Input is an .xlsx/.xlsm workbook (first sheet unless WithSheet is given)
// or a UTF-8 .csv file. The first row is the header; the columns named by
// DefaultColumns are required. Only rows whose decision equals
// DefaultDecision (see WithDecision) are included.
//
// # Configuration
//
// Use functional options to customize the generator:
//
//	theme, err := abstractbook.LoadTheme("classic")
//	gen, err := abstractbook.NewGenerator(
//	    abstractbook.WithTheme(theme),
//	    abstractbook.WithEvent(abstractbook.Event{Date: "2026-03-02..2026-03-04"}),
//	    abstractbook.WithDecision("Poster"),
//	    abstractbook.WithInlineMarkup(true),
//	)
//
// # Error Handling
//
// Errors wrap the sentinels in errors.go and can be checked with errors.Is:
//
//	_, err := gen.Generate(ctx, in)
//	if errors.Is(err, abstractbook.ErrMissingColumns) {
//	    var mce *abstractbook.MissingColumnsError
//	    errors.As(err, &mce)
//	    fmt.Println(mce.Missing)
//	}
package abstractbook
