package layout

import (
	"time"

	"github.com/recipress/recipress/internal/book"
	"github.com/recipress/recipress/internal/decor"
	"github.com/recipress/recipress/internal/page"
	"github.com/recipress/recipress/internal/richtext"
	"github.com/recipress/recipress/internal/template"
)

// BuildCover builds the cover as a standalone page: book name centered in
// the upper third, description and author beneath, generation date at the
// foot. Template decorations apply the same way they do on body pages.
func (e *Engine) BuildCover(bk *book.RecipeBook, now time.Time) *page.Page {
	p := &page.Page{}
	e.decoratePage(p)

	sz := e.doc.Size()
	cw := e.contentWidth()
	titleSize := e.cfg.TitleSize * 1.4
	tm := e.m.Wrap(bk.Name, e.cfg.TitleFont, titleSize, cw*0.84)

	y := sz.Height * 0.30

	if e.cfg.Decorations.Has(template.FlagCardBackground) {
		p.Add(decor.Card(decor.Box{
			X: e.contentLeft() + cw*0.04, Y: y - 7,
			W: cw * 0.92, H: tm.Height() + 14,
		}, e.cfg)...)
	}
	if e.cfg.Decorations.Has(template.FlagFamilyGlyph) {
		p.Add(decor.FamilyGlyph(decor.Box{
			X: sz.Width/2 - 5, Y: y - 19,
			W: 10, H: 10,
		}, e.cfg, bk.Name)...)
	}

	const ruleW = 44.0
	p.Add(page.Rule{
		X1: (sz.Width - ruleW) / 2, Y1: y - 3,
		X2: (sz.Width + ruleW) / 2, Y2: y - 3,
		Width: 0.4, Color: e.cfg.Accent,
	})

	asc := e.m.Ascent(e.cfg.TitleFont, titleSize)
	for _, ln := range tm.Lines {
		p.Add(page.TextRun{
			X: e.contentLeft() + (cw-ln.Width)/2, Y: y + asc,
			Text: ln.Text, Font: e.cfg.TitleFont, Size: titleSize, Color: e.cfg.Primary,
		})
		y += tm.LineHeight
	}

	y += 3
	p.Add(page.Rule{
		X1: (sz.Width - ruleW) / 2, Y1: y,
		X2: (sz.Width + ruleW) / 2, Y2: y,
		Width: 0.4, Color: e.cfg.Accent,
	})
	y += 12

	if desc := richtext.Flatten(bk.Description); desc != "" {
		font := italicOf(e.cfg.BodyFont)
		size := e.cfg.BodySize + 1
		dm := e.m.Wrap(desc, font, size, cw*0.7)
		dasc := e.m.Ascent(font, size)
		for _, ln := range dm.Lines {
			p.Add(page.TextRun{
				X: e.contentLeft() + (cw-ln.Width)/2, Y: y + dasc,
				Text: ln.Text, Font: font, Size: size, Color: e.cfg.Primary,
			})
			y += dm.LineHeight
		}
		y += 8
	}

	if bk.Author != "" {
		byline := "by " + bk.Author
		w := e.m.Width(byline, e.cfg.BodyFont, e.cfg.BodySize)
		p.Add(page.TextRun{
			X: e.contentLeft() + (cw-w)/2, Y: y + e.m.Ascent(e.cfg.BodyFont, e.cfg.BodySize),
			Text: byline, Font: e.cfg.BodyFont, Size: e.cfg.BodySize, Color: e.cfg.Primary,
		})
	}

	date := now.Format("January 2006")
	dw := e.m.Width(date, e.cfg.BodyFont, e.cfg.SmallSize)
	p.Add(page.TextRun{
		X: e.contentLeft() + (cw-dw)/2, Y: e.contentBottom(),
		Text: date, Font: e.cfg.BodyFont, Size: e.cfg.SmallSize, Color: e.cfg.Accent,
	})

	return p
}
