package docx

import "math"

// Twips is a length in twentieths of a point (1440 per inch).
type Twips int

// Inches converts inches to twips.
func Inches(in float64) Twips {
	return Twips(math.Round(in * 1440))
}

// Points converts points to twips.
func Points(pt float64) Twips {
	return Twips(math.Round(pt * 20))
}

// Alignment is a paragraph or table justification value.
type Alignment string

// Alignment values as written in w:jc.
const (
	AlignDefault Alignment = ""
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "both"
)

// Page dimensions for US Letter, portrait.
const (
	LetterWidth  Twips = 12240
	LetterHeight Twips = 15840
)
