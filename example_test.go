package abstractbook_test

import (
	"fmt"
	"time"

	abstractbook "github.com/alnah/go-abstractbook"
)

// Example builds a book from submissions already in memory and checks its
// navigation.
func Example() {
	subs := []abstractbook.Submission{
		{ID: "101", Title: "Pricing under uncertainty", Authors: "A. Rao", Abstract: "We study prices."},
		{ID: "103", Title: "Family firms", Authors: "D. Mehta", Abstract: "We study firms."},
	}

	doc, err := abstractbook.Build(subs, abstractbook.BuildOptions{
		Track:   "FAE",
		Created: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	data, err := doc.Bytes()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	v, err := abstractbook.Verify(data)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("cards=%d rows=%d ok=%t\n", v.Cards, v.ContentsRows, v.OK())
	// Output: cards=2 rows=2 ok=true
}

// ExampleCleanText shows the whitespace normalization applied to every cell.
func ExampleCleanText() {
	fmt.Printf("%q\n", abstractbook.CleanText("  Pricing\n under\t\tuncertainty "))
	// Output: "Pricing under uncertainty"
}

// ExampleCardAnchor shows the bookmark names a submission ID maps to.
func ExampleCardAnchor() {
	fmt.Println(abstractbook.CardAnchor("IMRC-7"))
	fmt.Println(abstractbook.ContentsRowAnchor("IMRC-7"))
	// Output:
	// SUB_IMRC_7
	// TOC_SUB_IMRC_7
}

// ExampleMissingColumnsError shows the message for a sheet lacking columns.
func ExampleMissingColumnsError() {
	err := &abstractbook.MissingColumnsError{Missing: []string{"Abstract"}}
	fmt.Println(err)
	// Output: missing required columns: "Abstract"
}
