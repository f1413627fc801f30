// Package api is the public surface of the recipe book generator: a
// Generator configured once with Options, producing one PDF per call. Each
// call owns its own document, cursor and image state, so a Generator may be
// reused sequentially across books.
package api

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/recipress/recipress/internal/book"
	"github.com/recipress/recipress/internal/layout"
	"github.com/recipress/recipress/internal/page"
	"github.com/recipress/recipress/internal/render/pdf"
	"github.com/recipress/recipress/internal/res"
	"github.com/recipress/recipress/internal/template"
	"github.com/recipress/recipress/internal/text"
)

// Domain records re-exported so callers assemble books without reaching
// into internal packages.
type (
	RecipeBook    = book.RecipeBook
	Recipe        = book.Recipe
	Section       = book.Section
	Ingredient    = book.Ingredient
	Step          = book.Step
	NutritionInfo = book.NutritionInfo

	// ImageSet maps recipe ids to pre-decoded photos for GenerateWithImages.
	ImageSet = res.ImageSet
)

// WarningKind classifies a recoverable condition recorded during generation.
type WarningKind string

const (
	// WarnImageAcquisition marks a photo that could not be loaded or
	// decoded; its recipe was laid out text-only.
	WarnImageAcquisition WarningKind = "image-acquisition"
	// WarnUnknownTemplate marks an unrecognized template id; the default
	// configuration was used instead.
	WarnUnknownTemplate WarningKind = "unknown-template"
)

// Warning is one recoverable condition. Generation continued past it.
type Warning struct {
	Kind     WarningKind
	RecipeID string // set for per-recipe conditions
	Err      error
}

func (w Warning) String() string {
	if w.RecipeID != "" {
		return fmt.Sprintf("%s (recipe %s): %v", w.Kind, w.RecipeID, w.Err)
	}
	return fmt.Sprintf("%s: %v", w.Kind, w.Err)
}

// Result is the product of one generation call.
type Result struct {
	// PDF is the serialized document.
	PDF []byte
	// PageCount is the number of pages, front matter included.
	PageCount int
	// Warnings lists the recoverable conditions hit along the way.
	Warnings []Warning
}

// Generator is the main API for turning recipe books into PDF documents.
type Generator struct {
	options  Options
	loader   *res.Loader
	measurer *text.Measurer
}

// New creates a generator with default options.
func New() *Generator {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a generator with the specified options.
func NewWithOptions(options Options) *Generator {
	loader := res.NewLoader("")
	for _, p := range options.ResourcePaths {
		loader.AddSearchPath(p)
	}
	return &Generator{
		options:  options,
		loader:   loader,
		measurer: text.NewMeasurer(),
	}
}

// WithOption returns a new generator with the given option applied.
func (g *Generator) WithOption(option Option) *Generator {
	newOptions := g.options
	option(&newOptions)
	return NewWithOptions(newOptions)
}

// SetDebug returns a new generator with debug mode set.
func (g *Generator) SetDebug(debug bool) *Generator {
	return g.WithOption(WithDebug(debug))
}

// AddResourcePath returns a new generator that also searches path for
// local photos.
func (g *Generator) AddResourcePath(path string) *Generator {
	return g.WithOption(WithResourcePath(path))
}

// Generate validates the book, acquires its photos and produces the PDF.
// Photo loads run concurrently but all complete, successfully or not, before
// layout starts; a failed photo degrades its recipe to text-only layout and
// is recorded as a warning. Only validation and serialization failures abort.
func (g *Generator) Generate(bk *RecipeBook) (*Result, error) {
	if err := book.Validate(bk); err != nil {
		return nil, fmt.Errorf("invalid recipe book: %w", err)
	}

	images := res.ImageSet{}
	var warnings []Warning
	if g.options.IncludePhotos {
		refs := photoRefs(bk)
		set, failures := res.Prefetch(context.Background(), refs, g.loader, g.options.PrefetchWorkers)
		images = set
		for _, f := range failures {
			if g.options.Debug {
				fmt.Printf("Photo failed for recipe %s: %v\n", f.ID, f.Err)
			}
			warnings = append(warnings, Warning{Kind: WarnImageAcquisition, RecipeID: f.ID, Err: f.Err})
		}
	}

	return g.generate(bk, images, warnings)
}

// GenerateWithImages produces the PDF from a book and pre-decoded photos,
// performing no acquisition of its own. It is a pure function of its inputs
// apart from the configured clock.
func (g *Generator) GenerateWithImages(bk *RecipeBook, images ImageSet) (*Result, error) {
	if err := book.Validate(bk); err != nil {
		return nil, fmt.Errorf("invalid recipe book: %w", err)
	}
	return g.generate(bk, images, nil)
}

// GenerateToFile generates the document and writes it to outputPath.
func (g *Generator) GenerateToFile(bk *RecipeBook, outputPath string) error {
	result, err := g.Generate(bk)
	if err != nil {
		return err
	}
	if g.options.Debug {
		for _, w := range result.Warnings {
			fmt.Printf("Warning: %s\n", w)
		}
	}

	outputDir := filepath.Dir(outputPath)
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, result.PDF, 0644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// generate runs the two layout passes and the final serialization. The flow
// is: body pages first, recording where each recipe starts; then the cover
// and contents built from those positions; front matter inserted and page
// indices reassigned; page furniture that needs final numbers last.
func (g *Generator) generate(bk *RecipeBook, images res.ImageSet, warnings []Warning) (*Result, error) {
	cfg, known := template.Lookup(bk.TemplateID)
	if !known {
		if g.options.Debug {
			fmt.Printf("Unknown template %q, using %q\n", bk.TemplateID, cfg.ID)
		}
		warnings = append(warnings, Warning{
			Kind: WarnUnknownTemplate,
			Err:  fmt.Errorf("unknown template %q, using %q", bk.TemplateID, cfg.ID),
		})
	}

	now := time.Now()
	if g.options.Now != nil {
		now = g.options.Now()
	}

	doc := page.NewDocument(g.options.PageSize.dimensions(), page.Uniform(cfg.Margin))
	engine := layout.NewEngine(doc, cfg, g.measurer, images, layout.Options{
		IncludePhotos:    g.options.IncludePhotos,
		IncludeNotes:     g.options.IncludeNotes,
		IncludeNutrition: g.options.IncludeNutrition,
		IncludeTips:      g.options.IncludeTips,
		Debug:            g.options.Debug,
	})

	body := engine.LayoutBody(bk)
	cover := engine.BuildCover(bk, now)
	toc := engine.BuildTOC(bk, body.StartPage)

	front := make([]*page.Page, 0, 1+len(toc))
	front = append(front, cover)
	front = append(front, toc...)
	doc.InsertFront(front...)
	engine.FinishPages(len(front), body.PageSections)

	if g.options.Debug {
		fmt.Printf("Laid out %d pages (%d front matter)\n", doc.PageCount(), len(front))
	}

	renderer := pdf.NewRenderer()
	renderer.Debug = g.options.Debug
	if g.options.PhotoDPI > 0 {
		renderer.PhotoDPI = g.options.PhotoDPI
	}
	meta := pdf.Metadata{
		Title:     bk.Name,
		Author:    bk.Author,
		Subject:   "Recipe book",
		Keywords:  "recipes, cookbook",
		Created:   now,
		Bookmarks: bookmarks(bk, body.StartPage, len(front)),
	}

	out, err := renderer.Render(doc, images, meta)
	if err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	return &Result{PDF: out, PageCount: doc.PageCount(), Warnings: warnings}, nil
}

// photoRefs lists the photos the book needs, one per recipe with a URL.
func photoRefs(bk *RecipeBook) []res.Ref {
	var refs []res.Ref
	for _, r := range bk.Recipes {
		if r.PhotoURL != "" {
			refs = append(refs, res.Ref{ID: r.ID, URL: r.PhotoURL})
		}
	}
	return refs
}

// bookmarks builds the document outline in body order: section titles at the
// top level with their recipes nested, ungrouped recipes at the top level.
// Page numbers are final document indices, front matter included.
func bookmarks(bk *RecipeBook, start map[string]int, frontCount int) []pdf.Bookmark {
	var marks []pdf.Bookmark
	prevSection := -2
	for _, item := range layout.Order(bk) {
		dest := start[item.Recipe.ID] + frontCount
		if item.Section >= 0 && item.Section != prevSection {
			marks = append(marks, pdf.Bookmark{Title: bk.Sections[item.Section].Title, Level: 0, Page: dest})
		}
		prevSection = item.Section

		level := 0
		if item.Section >= 0 {
			level = 1
		}
		marks = append(marks, pdf.Bookmark{Title: item.Recipe.Title, Level: level, Page: dest})
	}
	return marks
}
