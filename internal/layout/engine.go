package layout

import (
	"fmt"

	"github.com/recipress/recipress/internal/book"
	"github.com/recipress/recipress/internal/decor"
	"github.com/recipress/recipress/internal/page"
	"github.com/recipress/recipress/internal/res"
	"github.com/recipress/recipress/internal/template"
	"github.com/recipress/recipress/internal/text"
)

// Vertical rhythm in mm.
const (
	blockGap   = 3.0
	headingGap = 1.8
	stepGap    = 1.2

	photoMaxHeight = 85.0

	// Two-column region proportions of the content width.
	textColFrac  = 0.60
	photoColFrac = 0.35
)

// Options selects which optional recipe blocks are laid out.
type Options struct {
	IncludePhotos    bool
	IncludeNotes     bool
	IncludeNutrition bool
	IncludeTips      bool
	Debug            bool
}

// Engine lays out one document. It owns no I/O: photos arrive pre-decoded
// as an ImageSet and only their dimensions are consulted here.
type Engine struct {
	doc  *page.Document
	cfg  template.Config
	m    *text.Measurer
	imgs res.ImageSet
	opts Options

	pageSections []int // section index per page added by this engine, -1 outside sections
	curSection   int
}

// BodyResult is the explicit product of the first pass: where every recipe
// starts, counted within the body only, plus the per-page section mapping
// used for edge tabs.
type BodyResult struct {
	StartPage    map[string]int
	PageSections []int
}

// NewEngine creates a layout engine writing into doc.
func NewEngine(doc *page.Document, cfg template.Config, m *text.Measurer, imgs res.ImageSet, opts Options) *Engine {
	return &Engine{doc: doc, cfg: cfg, m: m, imgs: imgs, opts: opts, curSection: -1}
}

// forDoc returns an engine with the same configuration writing into a
// different document. Used for the table of contents, which is laid out
// into its own page list before front insertion.
func (e *Engine) forDoc(doc *page.Document) *Engine {
	return &Engine{doc: doc, cfg: e.cfg, m: e.m, imgs: e.imgs, opts: e.opts, curSection: -1}
}

func (e *Engine) contentTop() float64    { return e.doc.Margins().Top }
func (e *Engine) contentLeft() float64   { return e.doc.Margins().Left }
func (e *Engine) contentRight() float64  { return e.doc.Size().Width - e.doc.Margins().Right }
func (e *Engine) contentBottom() float64 { return e.doc.Size().Height - e.doc.Margins().Bottom }
func (e *Engine) contentWidth() float64  { return e.contentRight() - e.contentLeft() }

// newPage starts a fresh page, applies per-page decorations and resets the
// cursor to the top of the content box.
func (e *Engine) newPage(cur *Cursor) {
	p := e.doc.AddPage()
	e.decoratePage(p)
	e.pageSections = append(e.pageSections, e.curSection)
	cur.Page = p
	cur.Y = e.contentTop()
}

func (e *Engine) decoratePage(p *page.Page) {
	if e.cfg.Decorations.Has(template.FlagOrnateBorder) {
		m := e.doc.Margins()
		sz := e.doc.Size()
		b := decor.Box{
			X: m.Left / 2,
			Y: m.Top / 2,
			W: sz.Width - (m.Left+m.Right)/2,
			H: sz.Height - (m.Top+m.Bottom)/2,
		}
		p.Add(decor.OrnateBorder(b, e.cfg)...)
	}
}

// placeAtomic places a block that may not split. A block that no longer
// fits moves to a fresh page; a block taller than a full page stays alone
// at the top of its own page and runs past the bottom, which downstream
// treats as handled overflow, not an error.
func (e *Engine) placeAtomic(cur *Cursor, h float64, draw func(p *page.Page, top float64)) {
	if cur.Y+h > e.contentBottom() && cur.Y > e.contentTop() {
		e.newPage(cur)
	}
	if e.opts.Debug && cur.Y+h > e.contentBottom() {
		fmt.Printf("layout: %.1fmm block overflows page %d\n", h, cur.Page.Index)
	}
	draw(cur.Page, cur.Y)
	cur.Y += h
}

// placeLines places wrapped lines one at a time, breaking to a new page
// whenever the next line would cross the bottom of the content box.
func (e *Engine) placeLines(cur *Cursor, lines []text.Line, lh, x float64, font template.Font, size float64, color template.RGB) {
	asc := e.m.Ascent(font, size)
	for _, ln := range lines {
		if cur.Y+lh > e.contentBottom() {
			e.newPage(cur)
		}
		cur.Page.Add(page.TextRun{X: x, Y: cur.Y + asc, Text: ln.Text, Font: font, Size: size, Color: color})
		cur.Y += lh
	}
}

// placeHeading writes a block heading, keeping at least minFollow mm of
// content with it on the same page.
func (e *Engine) placeHeading(cur *Cursor, title string, minFollow float64) {
	font := e.cfg.HeadingFont
	size := e.cfg.HeadingSize
	lh := e.m.LineHeight(font, size)
	if cur.Y+lh+minFollow > e.contentBottom() && cur.Y > e.contentTop() {
		e.newPage(cur)
	}
	cur.Page.Add(page.TextRun{
		X: e.contentLeft(), Y: cur.Y + e.m.Ascent(font, size),
		Text: title, Font: font, Size: size, Color: e.cfg.Primary,
	})
	cur.Y += lh + headingGap
}

// LayoutBody lays out every recipe, one fresh page each, and records the
// body page on which each recipe starts.
func (e *Engine) LayoutBody(bk *book.RecipeBook) BodyResult {
	start := make(map[string]int)
	cur := &Cursor{}

	for _, item := range Order(bk) {
		e.curSection = item.Section
		e.newPage(cur)
		start[item.Recipe.ID] = e.doc.PageCount()
		e.layoutRecipe(cur, item.Recipe)
	}

	return BodyResult{StartPage: start, PageSections: e.pageSections}
}

// Ordered pairs a recipe with the index of the section that owns it, -1 for
// recipes no section references.
type Ordered struct {
	Recipe  *book.Recipe
	Section int
}

// Order returns the body order: section by section where sections exist,
// then any recipe no section references, in input order. Without sections
// the input order is the body order. The contents and the document outline
// follow the same order.
func Order(bk *book.RecipeBook) []Ordered {
	byID := make(map[string]*book.Recipe, len(bk.Recipes))
	for i := range bk.Recipes {
		byID[bk.Recipes[i].ID] = &bk.Recipes[i]
	}

	used := make(map[string]bool)
	var out []Ordered
	for si, s := range bk.Sections {
		for _, id := range s.RecipeIDs {
			if r, ok := byID[id]; ok && !used[id] {
				out = append(out, Ordered{Recipe: r, Section: si})
				used[id] = true
			}
		}
	}
	for i := range bk.Recipes {
		if !used[bk.Recipes[i].ID] {
			out = append(out, Ordered{Recipe: &bk.Recipes[i], Section: -1})
		}
	}
	return out
}

// FinishPages adds the page furniture that depends on final page indices:
// footer numbers and section tabs on body pages. frontCount is the number
// of cover and contents pages inserted before the body.
func (e *Engine) FinishPages(frontCount int, sections []int) {
	pages := e.doc.Pages()
	for i := frontCount; i < len(pages); i++ {
		p := pages[i]
		if e.cfg.Decorations.Has(template.FlagPageNumbers) {
			num := fmt.Sprintf("%d", p.Index)
			w := e.m.Width(num, e.cfg.BodyFont, e.cfg.SmallSize)
			p.Add(page.TextRun{
				X:     e.contentLeft() + (e.contentWidth()-w)/2,
				Y:     e.contentBottom() + e.doc.Margins().Bottom*0.55,
				Text:  num,
				Font:  e.cfg.BodyFont,
				Size:  e.cfg.SmallSize,
				Color: e.cfg.Accent,
			})
		}
		if e.cfg.Decorations.Has(template.FlagSectionTab) {
			bodyIdx := i - frontCount
			if bodyIdx < len(sections) && sections[bodyIdx] >= 0 {
				b := decor.Box{
					X: e.doc.Size().Width - 3.5,
					Y: e.contentTop() + float64(sections[bodyIdx])*14,
					W: 3.5,
					H: 10,
				}
				p.Add(decor.SectionTab(b, e.cfg)...)
			}
		}
	}
}
