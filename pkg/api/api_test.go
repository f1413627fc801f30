package api

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/recipress/recipress/internal/book"
	"github.com/recipress/recipress/internal/res"
)

func testBook() *RecipeBook {
	return &RecipeBook{
		ID:         "bk-1",
		Name:       "Weeknight Favorites",
		Author:     "R. Cook",
		TemplateID: "minimalist",
		Recipes: []Recipe{
			{
				ID:       "r1",
				Title:    "Tomato Soup",
				Servings: 4,
				Ingredients: []Ingredient{
					{Name: "tomatoes", Quantity: 6, Unit: ""},
					{Name: "stock", Quantity: 1, Unit: "l"},
				},
				Instructions: []Step{
					{Number: 1, Text: "Roast the tomatoes until they blister."},
					{Number: 2, Text: "Simmer with the stock and blend smooth."},
				},
			},
			{
				ID:          "r2",
				Title:       "Garlic Bread",
				Servings:    8,
				PrepMinutes: 10,
				CookMinutes: 12,
				Ingredients: []Ingredient{
					{Name: "baguette", Quantity: 1, Unit: ""},
					{Name: "garlic butter", Quantity: 100, Unit: "g"},
				},
				Instructions: []Step{
					{Number: 1, Text: "Split the loaf and spread the butter."},
					{Number: 2, Text: "Bake until golden at the edges."},
				},
			},
		},
	}
}

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 40, 30))
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 6), G: uint8(y * 8), B: 90, A: 255})
		}
	}
	return img
}

func testPhotoDataURL(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage()); err != nil {
		t.Fatalf("encode test photo: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func countPages(out []byte) int {
	return bytes.Count(out, []byte("/Type /Page")) - bytes.Count(out, []byte("/Type /Pages"))
}

func TestGenerateMinimalBook(t *testing.T) {
	g := New().WithOption(WithoutPhotos())
	result, err := g.Generate(testBook())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !bytes.HasPrefix(result.PDF, []byte("%PDF-")) {
		t.Error("output does not start with a PDF header")
	}
	// Cover, contents, and one page per recipe.
	if result.PageCount < 4 {
		t.Errorf("PageCount = %d, want at least 4", result.PageCount)
	}
	if got := countPages(result.PDF); got != result.PageCount {
		t.Errorf("document has %d pages, result reports %d", got, result.PageCount)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
	if bytes.Contains(result.PDF, []byte("/XObject")) {
		t.Error("photo-free book should embed no images")
	}
}

func TestGenerateUnknownTemplateWarns(t *testing.T) {
	bk := testBook()
	bk.TemplateID = "nonexistent"

	g := New().WithOption(WithoutPhotos())
	result, err := g.Generate(bk)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	found := false
	for _, w := range result.Warnings {
		if w.Kind == WarnUnknownTemplate {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings = %v, want one of kind %q", result.Warnings, WarnUnknownTemplate)
	}
	if result.PageCount < 4 {
		t.Errorf("PageCount = %d, want at least 4 despite unknown template", result.PageCount)
	}
}

func TestGeneratePhotoFailureDegrades(t *testing.T) {
	bk := testBook()
	bk.Recipes[0].PhotoURL = "/no/such/dir/photo.png"

	g := New()
	result, err := g.Generate(bk)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var warning *Warning
	for i := range result.Warnings {
		if result.Warnings[i].Kind == WarnImageAcquisition {
			warning = &result.Warnings[i]
		}
	}
	if warning == nil {
		t.Fatalf("warnings = %v, want one of kind %q", result.Warnings, WarnImageAcquisition)
	}
	if warning.RecipeID != "r1" {
		t.Errorf("warning recipe = %q, want %q", warning.RecipeID, "r1")
	}
	if bytes.Contains(result.PDF, []byte("/XObject")) {
		t.Error("failed photo should not be embedded")
	}
}

func TestGenerateAcquiresDataURLPhoto(t *testing.T) {
	bk := testBook()
	bk.Recipes[0].PhotoURL = testPhotoDataURL(t)

	g := New()
	result, err := g.Generate(bk)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", result.Warnings)
	}
	if !bytes.Contains(result.PDF, []byte("/XObject")) {
		t.Error("acquired photo was not embedded")
	}
	if !bytes.Contains(result.PDF, []byte("/Subtype /Image")) {
		t.Error("no image object in output")
	}
}

func TestGenerateWithImagesEmbedsPhotos(t *testing.T) {
	bk := testBook()
	bk.Recipes[0].PhotoURL = "photo.png" // must not be fetched

	images := ImageSet{"r1": testImage()}
	g := New()
	result, err := g.GenerateWithImages(bk, images)
	if err != nil {
		t.Fatalf("GenerateWithImages failed: %v", err)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
	if !bytes.Contains(result.PDF, []byte("/XObject")) {
		t.Error("supplied photo was not embedded")
	}
}

func TestGeneratePageSizes(t *testing.T) {
	tests := []struct {
		name     string
		size     PageSize
		mediaBox string
	}{
		{"a4", PageSizeA4, "595.28 841.89"},
		{"letter", PageSizeLetter, "612.00 792.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New().WithOption(WithPageSize(tt.size)).WithOption(WithoutPhotos())
			result, err := g.Generate(testBook())
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			if !bytes.Contains(result.PDF, []byte(tt.mediaBox)) {
				t.Errorf("output lacks %s media box %q", tt.name, tt.mediaBox)
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	g := New().
		WithOption(WithoutPhotos()).
		WithOption(WithNow(func() time.Time { return fixed }))

	first, err := g.Generate(testBook())
	if err != nil {
		t.Fatalf("first Generate failed: %v", err)
	}
	second, err := g.Generate(testBook())
	if err != nil {
		t.Fatalf("second Generate failed: %v", err)
	}
	if !bytes.Equal(first.PDF, second.PDF) {
		t.Error("same book and clock produced different bytes")
	}
}

func TestGenerateInvalidBook(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RecipeBook)
		wantErr error
	}{
		{
			name:    "no recipes",
			mutate:  func(bk *RecipeBook) { bk.Recipes = nil },
			wantErr: book.ErrNoRecipes,
		},
		{
			name: "section references missing recipe",
			mutate: func(bk *RecipeBook) {
				bk.Sections = []Section{{Title: "Mains", RecipeIDs: []string{"ghost"}}}
			},
			wantErr: book.ErrUnknownRecipeID,
		},
		{
			name: "steps misnumbered",
			mutate: func(bk *RecipeBook) {
				bk.Recipes[0].Instructions[1].Number = 7
			},
			wantErr: book.ErrStepNumbering,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bk := testBook()
			tt.mutate(bk)

			g := New()
			result, err := g.Generate(bk)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Generate error = %v, want %v", err, tt.wantErr)
			}
			if result != nil {
				t.Error("invalid book should produce no result")
			}
		})
	}
}

func TestGenerateBookmarks(t *testing.T) {
	bk := testBook()
	bk.Sections = []Section{{Title: "Starters", RecipeIDs: []string{"r1", "r2"}}}

	g := New().WithOption(WithoutPhotos())
	result, err := g.Generate(bk)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !bytes.Contains(result.PDF, []byte("/Outlines")) {
		t.Error("sectioned book should carry a document outline")
	}
}

func TestGenerateToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books", "out.pdf")

	g := New().WithOption(WithoutPhotos())
	if err := g.GenerateToFile(testBook(), path); err != nil {
		t.Fatalf("GenerateToFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("written file is not a PDF")
	}
}

func TestOptionsApply(t *testing.T) {
	opts := DefaultOptions()
	if !opts.IncludePhotos || !opts.IncludeNotes || !opts.IncludeNutrition || !opts.IncludeTips {
		t.Error("defaults should include every optional block")
	}
	if opts.PageSize != PageSizeA4 {
		t.Errorf("default page size = %q, want %q", opts.PageSize, PageSizeA4)
	}
	if opts.PrefetchWorkers != res.DefaultWorkers {
		t.Errorf("default workers = %d, want %d", opts.PrefetchWorkers, res.DefaultWorkers)
	}

	opts = DefaultOptions()
	for _, o := range []Option{WithoutPhotos(), WithoutNotes(), WithoutNutrition(), WithoutTips(), WithPhotoDPI(96), WithPrefetchWorkers(2)} {
		o(&opts)
	}
	if opts.IncludePhotos || opts.IncludeNotes || opts.IncludeNutrition || opts.IncludeTips {
		t.Error("Without* options should clear their blocks")
	}
	if opts.PhotoDPI != 96 {
		t.Errorf("PhotoDPI = %v, want 96", opts.PhotoDPI)
	}
	if opts.PrefetchWorkers != 2 {
		t.Errorf("PrefetchWorkers = %d, want 2", opts.PrefetchWorkers)
	}
}

func TestWithOptionReturnsNewGenerator(t *testing.T) {
	base := New()
	letter := base.WithOption(WithPageSize(PageSizeLetter))
	if base == letter {
		t.Fatal("WithOption should not return the receiver")
	}
	if base.options.PageSize != PageSizeA4 {
		t.Errorf("receiver page size changed to %q", base.options.PageSize)
	}
	if letter.options.PageSize != PageSizeLetter {
		t.Errorf("derived generator page size = %q, want %q", letter.options.PageSize, PageSizeLetter)
	}
}

func TestWarningString(t *testing.T) {
	w := Warning{Kind: WarnImageAcquisition, RecipeID: "r9", Err: errors.New("timeout")}
	if got := w.String(); !strings.Contains(got, "r9") || !strings.Contains(got, "timeout") {
		t.Errorf("String() = %q, want recipe id and cause", got)
	}
}
