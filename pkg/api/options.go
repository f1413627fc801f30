package api

import (
	"time"

	"github.com/recipress/recipress/internal/page"
	"github.com/recipress/recipress/internal/res"
)

// Options represents configuration options for recipe book generation.
// DefaultOptions is the documented input contract: every optional content
// kind included and A4 pages; callers building Options by hand opt in to
// each kind explicitly.
type Options struct {
	// Page format, A4 or Letter
	PageSize PageSize

	// Optional content toggles
	IncludePhotos    bool
	IncludeNotes     bool
	IncludeNutrition bool
	IncludeTips      bool

	// PhotoDPI caps the resolution of embedded photos at their placed size
	PhotoDPI float64

	// PrefetchWorkers bounds concurrent photo loads during Generate
	PrefetchWorkers int

	// Debug enables verbose logging to stdout
	Debug bool

	// Now supplies the generation date printed on the cover and stamped into
	// the document metadata. Tests inject a fixed clock for stable output.
	Now func() time.Time

	// ResourcePaths are extra directories searched for photos stored as
	// local paths
	ResourcePaths []string
}

// Option is a function that modifies Options
type Option func(*Options)

// PageSize names a page format.
type PageSize string

const (
	// PageSizeA4 selects 210 x 297 mm pages
	PageSizeA4 PageSize = "A4"
	// PageSizeLetter selects 215.9 x 279.4 mm pages
	PageSizeLetter PageSize = "Letter"
)

// dimensions resolves the format to page geometry. Anything unrecognized,
// including the zero value, means A4.
func (s PageSize) dimensions() page.Size {
	if s == PageSizeLetter {
		return page.SizeLetter
	}
	return page.SizeA4
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		PageSize: PageSizeA4,

		IncludePhotos:    true,
		IncludeNotes:     true,
		IncludeNutrition: true,
		IncludeTips:      true,

		PhotoDPI:        150,
		PrefetchWorkers: res.DefaultWorkers,

		Debug: false,

		Now: time.Now,
	}
}

// WithPageSize sets the page format
func WithPageSize(size PageSize) Option {
	return func(o *Options) {
		o.PageSize = size
	}
}

// WithPageSizeA4 sets the page format to A4
func WithPageSizeA4() Option {
	return WithPageSize(PageSizeA4)
}

// WithPageSizeLetter sets the page format to US Letter
func WithPageSizeLetter() Option {
	return WithPageSize(PageSizeLetter)
}

// WithoutPhotos drops recipe photos from the document
func WithoutPhotos() Option {
	return func(o *Options) {
		o.IncludePhotos = false
	}
}

// WithoutNotes drops personal notes from the document
func WithoutNotes() Option {
	return func(o *Options) {
		o.IncludeNotes = false
	}
}

// WithoutNutrition drops nutrition tables from the document
func WithoutNutrition() Option {
	return func(o *Options) {
		o.IncludeNutrition = false
	}
}

// WithoutTips drops tips from the document
func WithoutTips() Option {
	return func(o *Options) {
		o.IncludeTips = false
	}
}

// WithPhotoDPI caps the embedded photo resolution
func WithPhotoDPI(dpi float64) Option {
	return func(o *Options) {
		o.PhotoDPI = dpi
	}
}

// WithPrefetchWorkers bounds concurrent photo loads
func WithPrefetchWorkers(n int) Option {
	return func(o *Options) {
		o.PrefetchWorkers = n
	}
}

// WithDebug sets the debug mode
func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.Debug = debug
	}
}

// WithNow sets the clock used for the cover date and metadata stamps
func WithNow(now func() time.Time) Option {
	return func(o *Options) {
		o.Now = now
	}
}

// WithResourcePath adds a directory to search for local photos
func WithResourcePath(path string) Option {
	return func(o *Options) {
		o.ResourcePaths = append(o.ResourcePaths, path)
	}
}
