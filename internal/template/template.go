// Package template holds the visual configuration records for document
// generation. A Config is a fully resolved value: lookups happen once at the
// start of a run and the rest of the pipeline reads plain fields.
package template

// RGB is a 24-bit color with channels in 0..255.
type RGB struct {
	R, G, B int
}

// Font names a core PDF font by family and style string ("", "B", "I", "BI").
type Font struct {
	Family string
	Style  string
}

// Flag selects an optional decoration. Flags are a closed set: page
// furniture is chosen by testing bits on Config.Decorations, never by
// switching on the template id.
type Flag uint8

const (
	// FlagCardBackground draws a filled card behind each recipe header.
	FlagCardBackground Flag = 1 << iota
	// FlagOrnateBorder frames body pages with a double border and corner ticks.
	FlagOrnateBorder
	// FlagFamilyGlyph prints a decorative glyph beside each recipe title.
	FlagFamilyGlyph
	// FlagChefTable renders nutrition as a header-band table instead of plain rules.
	FlagChefTable
	// FlagPageNumbers prints a centered page number in the body footer.
	FlagPageNumbers
	// FlagSectionTab marks body pages with a colored edge tab for their section.
	FlagSectionTab
)

// Has reports whether f contains the given flag.
func (f Flag) Has(flag Flag) bool { return f&flag != 0 }

// Config is the resolved presentation for one template.
type Config struct {
	ID string

	TitleFont   Font
	HeadingFont Font
	BodyFont    Font

	TitleSize   float64
	HeadingSize float64
	BodySize    float64
	SmallSize   float64

	Primary   RGB // main text
	Secondary RGB // fills and card backgrounds
	Accent    RGB // rules, borders, tabs

	Margin float64 // page margin in mm

	Decorations Flag
}
