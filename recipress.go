// Package recipress turns recipe book data into print-ready PDF documents:
// a cover, a table of contents with page numbers, and one formatted page run
// per recipe, styled by a named template.
package recipress

import (
	"github.com/recipress/recipress/pkg/api"
)

type Generator = api.Generator
type Options = api.Options
type Option = api.Option
type PageSize = api.PageSize
type Result = api.Result
type Warning = api.Warning
type WarningKind = api.WarningKind

type RecipeBook = api.RecipeBook
type Section = api.Section
type Recipe = api.Recipe
type Ingredient = api.Ingredient
type Step = api.Step
type NutritionInfo = api.NutritionInfo
type ImageSet = api.ImageSet

func New() *Generator                           { return api.New() }
func NewWithOptions(options Options) *Generator { return api.NewWithOptions(options) }
func DefaultOptions() Options                   { return api.DefaultOptions() }

var (
	WithPageSize        = api.WithPageSize
	WithPageSizeA4      = api.WithPageSizeA4
	WithPageSizeLetter  = api.WithPageSizeLetter
	WithoutPhotos       = api.WithoutPhotos
	WithoutNotes        = api.WithoutNotes
	WithoutNutrition    = api.WithoutNutrition
	WithoutTips         = api.WithoutTips
	WithPhotoDPI        = api.WithPhotoDPI
	WithPrefetchWorkers = api.WithPrefetchWorkers
	WithDebug           = api.WithDebug
	WithNow             = api.WithNow
	WithResourcePath    = api.WithResourcePath
)

const (
	PageSizeA4     = api.PageSizeA4
	PageSizeLetter = api.PageSizeLetter

	WarnImageAcquisition = api.WarnImageAcquisition
	WarnUnknownTemplate  = api.WarnUnknownTemplate
)
