package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/recipress/recipress/internal/book"
	"github.com/recipress/recipress/internal/decor"
	"github.com/recipress/recipress/internal/page"
	"github.com/recipress/recipress/internal/richtext"
	"github.com/recipress/recipress/internal/template"
)

// layoutRecipe places every block of one recipe. Empty blocks emit nothing
// and take no vertical space.
func (e *Engine) layoutRecipe(cur *Cursor, r *book.Recipe) {
	e.placeTitleBlock(cur, r)
	e.placeDescription(cur, r)
	e.placeIngredients(cur, r)
	e.placeSteps(cur, r)
	if e.opts.IncludeTips {
		e.placeTips(cur, r)
	}
	if e.opts.IncludeNotes {
		e.placeNotes(cur, r)
	}
	if e.opts.IncludeNutrition {
		e.placeNutrition(cur, r)
	}
}

// placeTitleBlock lays the recipe header: optional card and ornament, the
// wrapped title, the servings/timings line and an accent rule. The header
// moves as one block.
func (e *Engine) placeTitleBlock(cur *Cursor, r *book.Recipe) {
	cw := e.contentWidth()
	hasCard := e.cfg.Decorations.Has(template.FlagCardBackground)
	hasGlyph := e.cfg.Decorations.Has(template.FlagFamilyGlyph)

	const pad = 2.5
	inset := 0.0
	if hasCard {
		inset = pad
	}
	titleW := cw - 2*inset
	if hasGlyph {
		titleW -= 14
	}

	tm := e.m.Wrap(r.Title, e.cfg.TitleFont, e.cfg.TitleSize, titleW)
	meta := metaLine(r)
	smallLH := e.m.LineHeight(e.cfg.BodyFont, e.cfg.SmallSize)

	h := pad + tm.Height() + pad
	if meta != "" {
		h += smallLH + 1
	}
	const ruleGap = 1.6
	h += ruleGap

	e.placeAtomic(cur, h, func(p *page.Page, top float64) {
		if hasCard {
			p.Add(decor.Card(decor.Box{
				X: e.contentLeft() - 1.5, Y: top,
				W: cw + 3, H: h - ruleGap,
			}, e.cfg)...)
		}
		if hasGlyph {
			p.Add(decor.FamilyGlyph(decor.Box{
				X: e.contentRight() - inset - 9, Y: top + pad,
				W: 8, H: 8,
			}, e.cfg, r.Title)...)
		}

		y := top + pad
		asc := e.m.Ascent(e.cfg.TitleFont, e.cfg.TitleSize)
		for _, ln := range tm.Lines {
			p.Add(page.TextRun{
				X: e.contentLeft() + inset, Y: y + asc,
				Text: ln.Text, Font: e.cfg.TitleFont, Size: e.cfg.TitleSize, Color: e.cfg.Primary,
			})
			y += tm.LineHeight
		}
		if meta != "" {
			y++
			p.Add(page.TextRun{
				X: e.contentLeft() + inset, Y: y + e.m.Ascent(e.cfg.BodyFont, e.cfg.SmallSize),
				Text: meta, Font: e.cfg.BodyFont, Size: e.cfg.SmallSize, Color: e.cfg.Accent,
			})
		}
		ry := top + h - 0.5
		p.Add(page.Rule{
			X1: e.contentLeft(), Y1: ry, X2: e.contentRight(), Y2: ry,
			Width: 0.5, Color: e.cfg.Accent,
		})
	})
	cur.Y += blockGap
}

// metaLine builds the servings and timing summary, empty when the recipe
// carries none of it.
func metaLine(r *book.Recipe) string {
	var parts []string
	if r.Servings > 0 {
		parts = append(parts, fmt.Sprintf("Serves %d", r.Servings))
	}
	if r.PrepMinutes > 0 {
		parts = append(parts, fmt.Sprintf("Prep %d min", r.PrepMinutes))
	}
	if r.CookMinutes > 0 {
		parts = append(parts, fmt.Sprintf("Cook %d min", r.CookMinutes))
	}
	if r.PrepMinutes > 0 && r.CookMinutes > 0 {
		parts = append(parts, fmt.Sprintf("Total %d min", r.TotalMinutes()))
	}
	return strings.Join(parts, "  |  ")
}

func (e *Engine) placeDescription(cur *Cursor, r *book.Recipe) {
	flat := richtext.Flatten(r.Description)
	if flat == "" {
		return
	}
	e.placeProse(cur, flat, italicOf(e.cfg.BodyFont), e.cfg.BodySize, e.cfg.Primary, e.contentLeft(), e.contentWidth())
	cur.Y += blockGap
}

// placeIngredients lays the ingredient list, beside the photo in a
// two-column region when one is available. The region spans the taller of
// the two columns and moves as one block; without a photo the list takes
// the full content width.
func (e *Engine) placeIngredients(cur *Cursor, r *book.Recipe) {
	if len(r.Ingredients) == 0 {
		return
	}
	font := e.cfg.BodyFont
	size := e.cfg.BodySize
	lh := e.m.LineHeight(font, size)
	headLH := e.m.LineHeight(e.cfg.HeadingFont, e.cfg.HeadingSize)
	cw := e.contentWidth()

	usePhoto := e.opts.IncludePhotos && e.imgs.Has(r.ID)
	photoW, photoH := 0.0, 0.0
	if usePhoto {
		aspect := e.imgs.AspectRatio(r.ID)
		if aspect <= 0 {
			usePhoto = false
		} else {
			photoW = cw * photoColFrac
			photoH = photoW / aspect
			if photoH > photoMaxHeight {
				photoH = photoMaxHeight
				photoW = photoH * aspect
				if photoW > cw*photoColFrac {
					photoW = cw * photoColFrac
				}
			}
		}
	}

	colW := cw
	if usePhoto {
		colW = cw * textColFrac
	}

	var lines []string
	for _, in := range r.Ingredients {
		meas := e.m.Wrap(formatIngredient(in), font, size, colW)
		for _, ln := range meas.Lines {
			lines = append(lines, ln.Text)
		}
	}

	listH := headLH + headingGap + float64(len(lines))*lh
	span := listH
	if photoH > span {
		span = photoH
	}

	e.placeAtomic(cur, span, func(p *page.Page, top float64) {
		y := top
		p.Add(page.TextRun{
			X: e.contentLeft(), Y: y + e.m.Ascent(e.cfg.HeadingFont, e.cfg.HeadingSize),
			Text: "Ingredients", Font: e.cfg.HeadingFont, Size: e.cfg.HeadingSize, Color: e.cfg.Primary,
		})
		y += headLH + headingGap

		asc := e.m.Ascent(font, size)
		for _, ln := range lines {
			p.Add(page.TextRun{X: e.contentLeft(), Y: y + asc, Text: ln, Font: font, Size: size, Color: e.cfg.Primary})
			y += lh
		}

		if usePhoto {
			p.Add(page.ImageRef{
				X: e.contentRight() - photoW, Y: top,
				W: photoW, H: photoH, Key: r.ID,
			})
		}
	})
	cur.Y += blockGap
}

// formatIngredient renders one ingredient line: "200 g spaghetti, fresh".
func formatIngredient(in book.Ingredient) string {
	var sb strings.Builder
	if in.Quantity > 0 {
		sb.WriteString(strconv.FormatFloat(in.Quantity, 'f', -1, 64))
		if in.Unit != "" {
			sb.WriteByte(' ')
			sb.WriteString(in.Unit)
		}
		sb.WriteByte(' ')
	}
	sb.WriteString(in.Name)
	if in.Note != "" {
		sb.WriteString(", ")
		sb.WriteString(in.Note)
	}
	return sb.String()
}

// placeSteps lays the numbered instructions with a hanging number column.
// Step text is free flowing and may break across pages line by line.
func (e *Engine) placeSteps(cur *Cursor, r *book.Recipe) {
	if len(r.Instructions) == 0 {
		return
	}
	font := e.cfg.BodyFont
	size := e.cfg.BodySize
	numFont := boldOf(font)
	numW := e.m.Width("00.", numFont, size) + 2

	e.placeHeading(cur, "Instructions", 2*e.m.LineHeight(font, size))

	for _, st := range r.Instructions {
		flat := richtext.Flatten(st.Text)
		meas := e.m.Wrap(flat, font, size, e.contentWidth()-numW)
		asc := e.m.Ascent(font, size)
		for j, ln := range meas.Lines {
			if cur.Y+meas.LineHeight > e.contentBottom() {
				e.newPage(cur)
			}
			if j == 0 {
				cur.Page.Add(page.TextRun{
					X: e.contentLeft(), Y: cur.Y + asc,
					Text: fmt.Sprintf("%d.", st.Number), Font: numFont, Size: size, Color: e.cfg.Accent,
				})
			}
			cur.Page.Add(page.TextRun{
				X: e.contentLeft() + numW, Y: cur.Y + asc,
				Text: ln.Text, Font: font, Size: size, Color: e.cfg.Primary,
			})
			cur.Y += meas.LineHeight
		}
		cur.Y += stepGap
	}
	cur.Y += blockGap - stepGap
}

func (e *Engine) placeTips(cur *Cursor, r *book.Recipe) {
	var tips []string
	for _, t := range r.Tips {
		if flat := richtext.Flatten(t); flat != "" {
			tips = append(tips, flat)
		}
	}
	if len(tips) == 0 {
		return
	}
	font := e.cfg.BodyFont
	size := e.cfg.BodySize
	bulletW := e.m.Width("-", font, size) + 1.5

	e.placeHeading(cur, "Tips", 2*e.m.LineHeight(font, size))

	for _, tip := range tips {
		meas := e.m.Wrap(tip, font, size, e.contentWidth()-bulletW)
		asc := e.m.Ascent(font, size)
		for j, ln := range meas.Lines {
			if cur.Y+meas.LineHeight > e.contentBottom() {
				e.newPage(cur)
			}
			if j == 0 {
				cur.Page.Add(page.TextRun{
					X: e.contentLeft(), Y: cur.Y + asc,
					Text: "-", Font: font, Size: size, Color: e.cfg.Accent,
				})
			}
			cur.Page.Add(page.TextRun{
				X: e.contentLeft() + bulletW, Y: cur.Y + asc,
				Text: ln.Text, Font: font, Size: size, Color: e.cfg.Primary,
			})
			cur.Y += meas.LineHeight
		}
		cur.Y += stepGap
	}
	cur.Y += blockGap - stepGap
}

func (e *Engine) placeNotes(cur *Cursor, r *book.Recipe) {
	flat := richtext.Flatten(r.PersonalNotes)
	if flat == "" {
		return
	}
	e.placeHeading(cur, "Notes", 2*e.m.LineHeight(e.cfg.BodyFont, e.cfg.BodySize))
	e.placeProse(cur, flat, italicOf(e.cfg.BodyFont), e.cfg.BodySize, e.cfg.Primary, e.contentLeft(), e.contentWidth())
	cur.Y += blockGap
}

// placeNutrition lays the per-serving table: header-band chrome for
// templates carrying the chef-table flag, a plain ruled list otherwise.
// The table never splits.
func (e *Engine) placeNutrition(cur *Cursor, r *book.Recipe) {
	if r.Nutrition == nil {
		return
	}
	rows := nutritionRows(r.Nutrition)
	if len(rows) == 0 {
		return
	}

	font := e.cfg.BodyFont
	size := e.cfg.BodySize
	rowH := e.m.LineHeight(font, size) + 1.6
	tableW := e.contentWidth() * 0.55
	const cellPad = 2.0

	if e.cfg.Decorations.Has(template.FlagChefTable) {
		headFont := boldOf(font)
		headerH := e.m.LineHeight(headFont, size) + 1.6
		h := headerH + float64(len(rows))*rowH

		e.placeAtomic(cur, h, func(p *page.Page, top float64) {
			b := decor.Box{X: e.contentLeft(), Y: top, W: tableW, H: h}
			var bottoms []float64
			for i := 0; i < len(rows)-1; i++ {
				bottoms = append(bottoms, top+headerH+float64(i+1)*rowH)
			}
			p.Add(decor.ChefTable(b, headerH, bottoms, e.cfg)...)

			white := template.RGB{R: 255, G: 255, B: 255}
			p.Add(page.TextRun{
				X: e.contentLeft() + cellPad, Y: top + 0.8 + e.m.Ascent(headFont, size),
				Text: "PER SERVING", Font: headFont, Size: size, Color: white,
			})

			y := top + headerH
			asc := e.m.Ascent(font, size)
			for _, row := range rows {
				p.Add(page.TextRun{X: e.contentLeft() + cellPad, Y: y + 0.8 + asc, Text: row[0], Font: font, Size: size, Color: e.cfg.Primary})
				vw := e.m.Width(row[1], font, size)
				p.Add(page.TextRun{X: e.contentLeft() + tableW - cellPad - vw, Y: y + 0.8 + asc, Text: row[1], Font: font, Size: size, Color: e.cfg.Primary})
				y += rowH
			}
		})
	} else {
		e.placeHeading(cur, "Per serving", rowH)
		h := float64(len(rows)) * rowH
		e.placeAtomic(cur, h, func(p *page.Page, top float64) {
			y := top
			asc := e.m.Ascent(font, size)
			for i, row := range rows {
				p.Add(page.TextRun{X: e.contentLeft(), Y: y + asc, Text: row[0], Font: font, Size: size, Color: e.cfg.Primary})
				vw := e.m.Width(row[1], font, size)
				p.Add(page.TextRun{X: e.contentLeft() + tableW - vw, Y: y + asc, Text: row[1], Font: font, Size: size, Color: e.cfg.Primary})
				if i < len(rows)-1 {
					p.Add(page.Rule{
						X1: e.contentLeft(), Y1: y + rowH - 0.6,
						X2: e.contentLeft() + tableW, Y2: y + rowH - 0.6,
						Width: 0.15, Color: e.cfg.Accent,
					})
				}
				y += rowH
			}
		})
	}
	cur.Y += blockGap
}

func nutritionRows(n *book.NutritionInfo) [][2]string {
	var rows [][2]string
	if n.Calories > 0 {
		rows = append(rows, [2]string{"Calories", strconv.Itoa(n.Calories)})
	}
	if n.ProteinG > 0 {
		rows = append(rows, [2]string{"Protein", fmt.Sprintf("%d g", n.ProteinG)})
	}
	if n.CarbsG > 0 {
		rows = append(rows, [2]string{"Carbohydrates", fmt.Sprintf("%d g", n.CarbsG)})
	}
	if n.FatG > 0 {
		rows = append(rows, [2]string{"Fat", fmt.Sprintf("%d g", n.FatG)})
	}
	if n.ServingSize != "" {
		rows = append(rows, [2]string{"Serving size", n.ServingSize})
	}
	return rows
}

// placeProse places flattened paragraphs, each wrapped to width, breaking
// line by line across pages.
func (e *Engine) placeProse(cur *Cursor, flat string, font template.Font, size float64, color template.RGB, x, width float64) {
	for _, para := range strings.Split(flat, "\n") {
		meas := e.m.Wrap(para, font, size, width)
		if len(meas.Lines) == 0 {
			continue
		}
		e.placeLines(cur, meas.Lines, meas.LineHeight, x, font, size, color)
		cur.Y += 0.8
	}
}

func boldOf(f template.Font) template.Font {
	if strings.Contains(f.Style, "B") {
		return f
	}
	return template.Font{Family: f.Family, Style: f.Style + "B"}
}

func italicOf(f template.Font) template.Font {
	if strings.Contains(f.Style, "I") {
		return f
	}
	return template.Font{Family: f.Family, Style: f.Style + "I"}
}
