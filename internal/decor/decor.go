// Package decor builds the optional page furniture: cards, borders, glyphs
// and table chrome. Every renderer is a pure function from a bounding box
// and a template configuration to draw commands; which renderers run is
// decided by the template's decoration flags, never by its id.
package decor

import (
	"hash/fnv"

	"github.com/recipress/recipress/internal/page"
	"github.com/recipress/recipress/internal/template"
)

const mmToPt = 72 / 25.4

// Box is an axis-aligned bounding box in page millimeters.
type Box struct {
	X, Y, W, H float64
}

// Card returns a filled card with a thin outline, drawn behind content.
func Card(b Box, cfg template.Config) []page.Command {
	return []page.Command{
		page.FilledRect{X: b.X, Y: b.Y, W: b.W, H: b.H, Color: cfg.Secondary},
		page.Outline{X: b.X, Y: b.Y, W: b.W, H: b.H, LineWidth: 0.3, Color: cfg.Accent},
	}
}

// OrnateBorder frames the box with a double border and short corner ticks.
func OrnateBorder(b Box, cfg template.Config) []page.Command {
	const inset = 1.8
	const tick = 4.0

	cmds := []page.Command{
		page.Outline{X: b.X, Y: b.Y, W: b.W, H: b.H, LineWidth: 0.5, Color: cfg.Accent},
		page.Outline{
			X: b.X + inset, Y: b.Y + inset,
			W: b.W - 2*inset, H: b.H - 2*inset,
			LineWidth: 0.2, Color: cfg.Accent,
		},
	}

	ix, iy := b.X+inset, b.Y+inset
	iw, ih := b.W-2*inset, b.H-2*inset
	corners := [4][2]float64{
		{ix, iy},
		{ix + iw, iy},
		{ix, iy + ih},
		{ix + iw, iy + ih},
	}
	for _, c := range corners {
		dx, dy := tick, tick
		if c[0] > ix {
			dx = -tick
		}
		if c[1] > iy {
			dy = -tick
		}
		cmds = append(cmds,
			page.Rule{X1: c[0], Y1: c[1], X2: c[0] + dx, Y2: c[1], Width: 0.4, Color: cfg.Accent},
			page.Rule{X1: c[0], Y1: c[1], X2: c[0], Y2: c[1] + dy, Width: 0.4, Color: cfg.Accent},
		)
	}
	return cmds
}

// Star and sparkle ornament codes from the ZapfDingbats chart. The set is
// fixed so a given seed always maps to the same glyph.
var familyGlyphs = []string{"H", "I", "J", "K", "L", "M"}

// FamilyGlyph places one decorative ZapfDingbats ornament inside the box.
// The glyph is chosen by hashing the seed, so each recipe keeps its ornament
// across regenerations.
func FamilyGlyph(b Box, cfg template.Config, seed string) []page.Command {
	h := fnv.New32a()
	h.Write([]byte(seed))
	glyph := familyGlyphs[h.Sum32()%uint32(len(familyGlyphs))]

	size := b.H * mmToPt * 0.8
	return []page.Command{
		page.TextRun{
			X:     b.X,
			Y:     b.Y + b.H*0.82,
			Text:  glyph,
			Font:  template.Font{Family: "ZapfDingbats"},
			Size:  size,
			Color: cfg.Accent,
		},
	}
}

// ChefTable draws the professional nutrition-table chrome: a filled header
// band, an outline around the whole table, and a rule under each row. Row
// positions are the y coordinates of the row bottoms.
func ChefTable(b Box, headerHeight float64, rowBottoms []float64, cfg template.Config) []page.Command {
	cmds := []page.Command{
		page.FilledRect{X: b.X, Y: b.Y, W: b.W, H: headerHeight, Color: cfg.Accent},
		page.Outline{X: b.X, Y: b.Y, W: b.W, H: b.H, LineWidth: 0.3, Color: cfg.Primary},
	}
	for _, y := range rowBottoms {
		if y >= b.Y+b.H {
			continue
		}
		cmds = append(cmds, page.Rule{
			X1: b.X, Y1: y, X2: b.X + b.W, Y2: y,
			Width: 0.15, Color: cfg.Accent,
		})
	}
	return cmds
}

// SectionTab marks a body page's outer edge with a small filled tab.
func SectionTab(b Box, cfg template.Config) []page.Command {
	return []page.Command{
		page.FilledRect{X: b.X, Y: b.Y, W: b.W, H: b.H, Color: cfg.Accent},
	}
}
