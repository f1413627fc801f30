package layout

import (
	"fmt"
	"image"
	"strings"
	"testing"

	"github.com/recipress/recipress/internal/book"
	"github.com/recipress/recipress/internal/page"
	"github.com/recipress/recipress/internal/res"
	"github.com/recipress/recipress/internal/template"
	"github.com/recipress/recipress/internal/text"
)

func testEngine(t *testing.T, imgs res.ImageSet, opts Options) (*Engine, *page.Document) {
	t.Helper()
	cfg, _ := template.Lookup(template.Minimalist)
	doc := page.NewDocument(page.SizeA4, page.Uniform(cfg.Margin))
	e := NewEngine(doc, cfg, text.NewMeasurer(), imgs, opts)
	return e, doc
}

func allOptions() Options {
	return Options{IncludePhotos: true, IncludeNotes: true, IncludeNutrition: true, IncludeTips: true}
}

func makeRecipe(id, title string, ingredients, steps int) book.Recipe {
	r := book.Recipe{
		ID:          id,
		Title:       title,
		Description: "A reliable standby for busy evenings.",
		Servings:    4,
		PrepMinutes: 15,
		CookMinutes: 30,
	}
	for i := 0; i < ingredients; i++ {
		r.Ingredients = append(r.Ingredients, book.Ingredient{
			Name: fmt.Sprintf("ingredient %d", i+1), Quantity: float64(i + 1), Unit: "g",
		})
	}
	for i := 0; i < steps; i++ {
		r.Instructions = append(r.Instructions, book.Step{
			Number: i + 1,
			Text:   fmt.Sprintf("Step %d: stir everything thoroughly and keep an eye on the heat.", i+1),
		})
	}
	return r
}

func textRuns(p *page.Page) []page.TextRun {
	var runs []page.TextRun
	for _, c := range p.Commands {
		if r, ok := c.(page.TextRun); ok {
			runs = append(runs, r)
		}
	}
	return runs
}

func pageHasText(p *page.Page, s string) bool {
	for _, r := range textRuns(p) {
		if strings.Contains(r.Text, s) {
			return true
		}
	}
	return false
}

func countImageRefs(doc *page.Document) int {
	n := 0
	for _, p := range doc.Pages() {
		for _, c := range p.Commands {
			if _, ok := c.(page.ImageRef); ok {
				n++
			}
		}
	}
	return n
}

func TestLayoutBodyFreshPagePerRecipe(t *testing.T) {
	e, doc := testEngine(t, nil, allOptions())
	bk := &book.RecipeBook{
		Recipes: []book.Recipe{
			makeRecipe("r1", "Lemon Pasta", 5, 4),
			makeRecipe("r2", "Tomato Soup", 6, 3),
			makeRecipe("r3", "Flatbread", 4, 5),
		},
	}
	result := e.LayoutBody(bk)

	if doc.PageCount() < 3 {
		t.Fatalf("3 recipes need at least 3 pages, got %d", doc.PageCount())
	}
	if result.StartPage["r1"] != 1 || result.StartPage["r2"] <= result.StartPage["r1"] || result.StartPage["r3"] <= result.StartPage["r2"] {
		t.Fatalf("start pages not increasing: %v", result.StartPage)
	}
	for id, start := range result.StartPage {
		p := doc.Pages()[start-1]
		title := map[string]string{"r1": "Lemon Pasta", "r2": "Tomato Soup", "r3": "Flatbread"}[id]
		if !pageHasText(p, title) {
			t.Fatalf("page %d should open recipe %s", start, id)
		}
	}
}

func TestLayoutStaysInsideContentBox(t *testing.T) {
	e, doc := testEngine(t, nil, allOptions())
	long := makeRecipe("r1", "Slow Braised Shoulder", 14, 18)
	long.Tips = []string{"Rest the meat before carving.", "Save the braising liquid for soup."}
	long.PersonalNotes = "Double the garlic. Always."
	long.Nutrition = &book.NutritionInfo{Calories: 640, ProteinG: 38, CarbsG: 12, FatG: 41, ServingSize: "350 g"}
	bk := &book.RecipeBook{Recipes: []book.Recipe{long}}

	e.LayoutBody(bk)

	top := doc.Margins().Top
	bottom := page.SizeA4.Height - doc.Margins().Bottom
	for _, p := range doc.Pages() {
		for _, r := range textRuns(p) {
			if r.Y < top || r.Y > bottom {
				t.Fatalf("page %d: text %q at y=%.2f escapes the content box [%.1f, %.1f]",
					p.Index, r.Text, r.Y, top, bottom)
			}
		}
	}
}

func TestTwoColumnRegionWithPhoto(t *testing.T) {
	imgs := res.ImageSet{"r1": image.NewRGBA(image.Rect(0, 0, 400, 300))}
	e, doc := testEngine(t, imgs, allOptions())
	bk := &book.RecipeBook{Recipes: []book.Recipe{makeRecipe("r1", "Shakshuka", 8, 5)}}

	e.LayoutBody(bk)

	if n := countImageRefs(doc); n != 1 {
		t.Fatalf("expected exactly one photo placement, got %d", n)
	}

	var ref page.ImageRef
	for _, c := range doc.Pages()[0].Commands {
		if r, ok := c.(page.ImageRef); ok {
			ref = r
		}
	}
	cw := page.SizeA4.Width - doc.Margins().Left - doc.Margins().Right
	if ref.W > cw*photoColFrac+0.01 {
		t.Fatalf("photo column %.2fmm exceeds %.0f%% of content width %.2fmm", ref.W, photoColFrac*100, cw)
	}
	if ref.Key != "r1" {
		t.Fatalf("photo key = %q, want r1", ref.Key)
	}

	// ingredient lines must stay inside the text column
	right := doc.Margins().Left + cw*textColFrac
	for _, r := range textRuns(doc.Pages()[0]) {
		if strings.HasPrefix(r.Text, "ingredient") && r.X > right {
			t.Fatalf("ingredient line %q at x=%.2f crosses into the photo column", r.Text, r.X)
		}
	}
}

func TestFullWidthWithoutPhoto(t *testing.T) {
	tests := []struct {
		name string
		imgs res.ImageSet
		opts Options
	}{
		{name: "no decoded photo", imgs: nil, opts: allOptions()},
		{
			name: "photos excluded",
			imgs: res.ImageSet{"r1": image.NewRGBA(image.Rect(0, 0, 400, 300))},
			opts: Options{IncludePhotos: false, IncludeNotes: true, IncludeNutrition: true, IncludeTips: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, doc := testEngine(t, tt.imgs, tt.opts)
			bk := &book.RecipeBook{Recipes: []book.Recipe{makeRecipe("r1", "Shakshuka", 8, 5)}}
			e.LayoutBody(bk)
			if n := countImageRefs(doc); n != 0 {
				t.Fatalf("expected no photo placements, got %d", n)
			}
		})
	}
}

func TestOversizedBlockGetsOwnPage(t *testing.T) {
	e, doc := testEngine(t, nil, allOptions())
	huge := makeRecipe("r1", "Preserving Marathon", 160, 2)
	bk := &book.RecipeBook{Recipes: []book.Recipe{huge}}

	e.LayoutBody(bk)

	if doc.PageCount() < 2 {
		t.Fatalf("oversized ingredient list should push to its own page, got %d pages", doc.PageCount())
	}

	// The ingredient block must start a fresh page: its heading sits at the
	// top of the content box.
	var headingPage *page.Page
	var headingY float64
	for _, p := range doc.Pages() {
		for _, r := range textRuns(p) {
			if r.Text == "Ingredients" {
				headingPage, headingY = p, r.Y
			}
		}
	}
	if headingPage == nil {
		t.Fatal("ingredient heading not found")
	}
	if headingPage.Index == 1 {
		t.Fatal("oversized block should not share the title page")
	}
	maxTop := doc.Margins().Top + 10
	if headingY > maxTop {
		t.Fatalf("oversized block should start at the page top, heading at y=%.2f", headingY)
	}
}

func TestOptionGating(t *testing.T) {
	full := makeRecipe("r1", "Gated", 3, 2)
	full.Tips = []string{"Use a heavy pan."}
	full.PersonalNotes = "Grandma's version used lard."
	full.Nutrition = &book.NutritionInfo{Calories: 300}

	tests := []struct {
		name    string
		opts    Options
		absent  []string
		present []string
	}{
		{
			name:    "everything on",
			opts:    allOptions(),
			present: []string{"Tips", "Notes", "Calories"},
		},
		{
			name:   "nutrition off",
			opts:   Options{IncludePhotos: true, IncludeNotes: true, IncludeTips: true},
			absent: []string{"Calories"},
		},
		{
			name:   "notes off",
			opts:   Options{IncludePhotos: true, IncludeNutrition: true, IncludeTips: true},
			absent: []string{"Notes", "lard"},
		},
		{
			name:   "tips off",
			opts:   Options{IncludePhotos: true, IncludeNutrition: true, IncludeNotes: true},
			absent: []string{"Tips", "heavy pan"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, doc := testEngine(t, nil, tt.opts)
			bk := &book.RecipeBook{Recipes: []book.Recipe{full}}
			e.LayoutBody(bk)

			found := func(s string) bool {
				for _, p := range doc.Pages() {
					if pageHasText(p, s) {
						return true
					}
				}
				return false
			}
			for _, s := range tt.present {
				if !found(s) {
					t.Errorf("%q missing from layout", s)
				}
			}
			for _, s := range tt.absent {
				if found(s) {
					t.Errorf("%q should be gated out", s)
				}
			}
		})
	}
}

func TestSectionOrderingDrivesBody(t *testing.T) {
	e, _ := testEngine(t, nil, allOptions())
	bk := &book.RecipeBook{
		Sections: []book.Section{
			{Title: "Desserts", RecipeIDs: []string{"r3"}},
			{Title: "Mains", RecipeIDs: []string{"r1"}},
		},
		Recipes: []book.Recipe{
			makeRecipe("r1", "Roast", 3, 2),
			makeRecipe("r2", "Unlisted Salad", 3, 2),
			makeRecipe("r3", "Custard", 3, 2),
		},
	}
	result := e.LayoutBody(bk)

	if !(result.StartPage["r3"] < result.StartPage["r1"] && result.StartPage["r1"] < result.StartPage["r2"]) {
		t.Fatalf("section order should drive the body, got %v", result.StartPage)
	}
	if result.PageSections[result.StartPage["r3"]-1] != 0 {
		t.Fatalf("first body page should belong to section 0, got %v", result.PageSections)
	}
	if result.PageSections[result.StartPage["r2"]-1] != -1 {
		t.Fatalf("unlisted recipe pages should carry no section, got %v", result.PageSections)
	}
}

func TestFinishPagesFooters(t *testing.T) {
	e, doc := testEngine(t, nil, allOptions())
	bk := &book.RecipeBook{Recipes: []book.Recipe{
		makeRecipe("r1", "One", 3, 2),
		makeRecipe("r2", "Two", 3, 2),
	}}
	result := e.LayoutBody(bk)

	cover := &page.Page{}
	toc := &page.Page{}
	doc.InsertFront(cover, toc)
	e.FinishPages(2, result.PageSections)

	if len(textRuns(cover)) != 0 || len(textRuns(toc)) != 0 {
		t.Fatal("front matter must not receive footers")
	}
	for _, p := range doc.Pages()[2:] {
		want := fmt.Sprintf("%d", p.Index)
		foundFooter := false
		bottom := page.SizeA4.Height - doc.Margins().Bottom
		for _, r := range textRuns(p) {
			if r.Text == want && r.Y > bottom {
				foundFooter = true
			}
		}
		if !foundFooter {
			t.Fatalf("body page %d missing its footer number", p.Index)
		}
	}
}
