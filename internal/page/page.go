// Package page holds the intermediate representation produced by layout and
// consumed by rendering: pages of absolute-positioned draw commands. All
// coordinates are page-relative millimeters and stay unrounded floats;
// rounding happens only at serialization.
package page

import "github.com/recipress/recipress/internal/template"

// Command is a single drawing operation. The set of variants is closed:
// renderers switch over the concrete types below.
type Command interface {
	isCommand()
}

// TextRun places a single line of text. Y is the baseline.
type TextRun struct {
	X, Y  float64
	Text  string
	Font  template.Font
	Size  float64 // points
	Color template.RGB
}

// Rule is a straight line segment.
type Rule struct {
	X1, Y1 float64
	X2, Y2 float64
	Width  float64 // line width in mm
	Color  template.RGB
}

// FilledRect is a solid rectangle.
type FilledRect struct {
	X, Y, W, H float64
	Color      template.RGB
}

// Outline is a stroked, unfilled rectangle.
type Outline struct {
	X, Y, W, H float64
	LineWidth  float64
	Color      template.RGB
}

// ImageRef places a raster image. Key identifies the decoded image in the
// run's image set; the raster bytes are embedded at serialization, the
// finished document never references external resources.
type ImageRef struct {
	X, Y, W, H float64
	Key        string
}

func (TextRun) isCommand()    {}
func (Rule) isCommand()       {}
func (FilledRect) isCommand() {}
func (Outline) isCommand()    {}
func (ImageRef) isCommand()   {}

// Page represents a single page: an ordered command list. Commands draw in
// slice order, so backgrounds must be appended before the content they sit
// under.
type Page struct {
	Index    int // 1-based, assigned at assembly
	Commands []Command
}

// Add appends commands to the page.
func (p *Page) Add(cmds ...Command) {
	p.Commands = append(p.Commands, cmds...)
}

// Size represents a page format in millimeters.
type Size struct {
	Width  float64
	Height float64
	Name   string
}

// Standard page sizes in millimeters.
var (
	SizeA4     = Size{Width: 210, Height: 297, Name: "A4"}
	SizeLetter = Size{Width: 215.9, Height: 279.4, Name: "Letter"}
)

// Margins represents page margins in millimeters.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Uniform returns equal margins on all sides.
func Uniform(m float64) Margins {
	return Margins{Top: m, Right: m, Bottom: m, Left: m}
}
