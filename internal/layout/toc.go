package layout

import (
	"strconv"
	"strings"

	"github.com/recipress/recipress/internal/book"
	"github.com/recipress/recipress/internal/page"
)

// tocEntry is one contents row. Section headings carry no page reference.
type tocEntry struct {
	title   string
	indent  float64
	pageRef int // body page the recipe starts on
	heading bool
}

// BuildTOC lays out the table of contents for an already laid-out body.
// Page references need the front-matter offset, and the offset depends on
// how many pages the contents itself takes, so the contents is laid out
// twice: a probe pass to learn its page count, then the real pass with
// final absolute numbers. Entry heights cannot change between passes
// because titles clip to a fixed column, so the second pass is exact.
func (e *Engine) BuildTOC(bk *book.RecipeBook, start map[string]int) []*page.Page {
	entries := tocEntries(bk, start)
	probe := e.layoutTOC(entries, 0)
	offset := 1 + len(probe)
	return e.layoutTOC(entries, offset)
}

// tocEntries mirrors the body order exactly: section headings precede their
// recipes, ungrouped recipes follow at the end.
func tocEntries(bk *book.RecipeBook, start map[string]int) []tocEntry {
	var entries []tocEntry
	prevSection := -2
	for _, item := range Order(bk) {
		if item.Section >= 0 && item.Section != prevSection {
			entries = append(entries, tocEntry{
				title:   bk.Sections[item.Section].Title,
				heading: true,
			})
		}
		prevSection = item.Section

		indent := 0.0
		if item.Section >= 0 {
			indent = 5.0
		}
		entries = append(entries, tocEntry{
			title:   item.Recipe.Title,
			indent:  indent,
			pageRef: start[item.Recipe.ID],
		})
	}
	return entries
}

func (e *Engine) layoutTOC(entries []tocEntry, offset int) []*page.Page {
	tocDoc := page.NewDocument(e.doc.Size(), e.doc.Margins())
	te := e.forDoc(tocDoc)
	cur := &Cursor{}
	te.newPage(cur)

	headSize := e.cfg.TitleSize * 0.85
	headLH := e.m.LineHeight(e.cfg.TitleFont, headSize)
	cur.Page.Add(page.TextRun{
		X: e.contentLeft(), Y: cur.Y + e.m.Ascent(e.cfg.TitleFont, headSize),
		Text: "Contents", Font: e.cfg.TitleFont, Size: headSize, Color: e.cfg.Primary,
	})
	cur.Y += headLH + 1.5
	cur.Page.Add(page.Rule{
		X1: e.contentLeft(), Y1: cur.Y, X2: e.contentRight(), Y2: cur.Y,
		Width: 0.5, Color: e.cfg.Accent,
	})
	cur.Y += 2 * blockGap

	// Page numbers live in a fixed right-aligned column so late numbering
	// cannot reflow the rows.
	numColW := e.m.Width("000", e.cfg.BodyFont, e.cfg.BodySize) + 2

	for _, en := range entries {
		if en.heading {
			te.placeTOCHeading(cur, en.title)
			continue
		}
		te.placeTOCEntry(cur, en, offset, numColW)
	}

	return tocDoc.Pages()
}

func (e *Engine) placeTOCHeading(cur *Cursor, title string) {
	font := e.cfg.HeadingFont
	size := e.cfg.HeadingSize
	lh := e.m.LineHeight(font, size) + 1.2
	if cur.Y+lh+blockGap > e.contentBottom() {
		e.newPage(cur)
	}
	cur.Y += 1.5
	cur.Page.Add(page.TextRun{
		X: e.contentLeft(), Y: cur.Y + e.m.Ascent(font, size),
		Text: title, Font: font, Size: size, Color: e.cfg.Primary,
	})
	cur.Y += lh
}

func (e *Engine) placeTOCEntry(cur *Cursor, en tocEntry, offset int, numColW float64) {
	font := e.cfg.BodyFont
	size := e.cfg.BodySize
	lh := e.m.LineHeight(font, size) + 1.2
	if cur.Y+lh > e.contentBottom() {
		e.newPage(cur)
	}

	left := e.contentLeft() + en.indent
	const leaderPad = 1.5
	titleMax := e.contentRight() - numColW - 2*leaderPad - left
	title := e.m.Truncate(en.title, font, size, titleMax)
	asc := e.m.Ascent(font, size)

	cur.Page.Add(page.TextRun{
		X: left, Y: cur.Y + asc,
		Text: title, Font: font, Size: size, Color: e.cfg.Primary,
	})

	num := strconv.Itoa(en.pageRef + offset)
	numW := e.m.Width(num, font, size)
	cur.Page.Add(page.TextRun{
		X: e.contentRight() - numW, Y: cur.Y + asc,
		Text: num, Font: font, Size: size, Color: e.cfg.Primary,
	})

	titleW := e.m.Width(title, font, size)
	leadStart := left + titleW + leaderPad
	leadEnd := e.contentRight() - numColW - leaderPad
	if dotW := e.m.Width(".", font, size); dotW > 0 && leadEnd > leadStart {
		n := int((leadEnd - leadStart) / dotW / 2)
		if n > 0 {
			leader := strings.TrimRight(strings.Repeat(". ", n), " ")
			cur.Page.Add(page.TextRun{
				X: leadStart, Y: cur.Y + asc,
				Text: leader, Font: font, Size: size, Color: e.cfg.Accent,
			})
		}
	}

	cur.Y += lh
}
