// Package book defines the recipe-book input model for document generation.
// All other packages depend on book; book depends on nothing.
package book

// RecipeBook is the root input record: the recipes to lay out plus the
// presentation choices stored alongside them.
type RecipeBook struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Author      string    `json:"author"`
	TemplateID  string    `json:"templateId"`
	Sections    []Section `json:"sections,omitempty"`
	Recipes     []Recipe  `json:"recipes"`
}

// Section is an optional grouping of recipes, used for table-of-contents
// headings. Recipes keep their input order regardless of grouping.
type Section struct {
	Title     string   `json:"title"`
	RecipeIDs []string `json:"recipeIds"`
}

// Recipe is a single recipe as stored by the authoring application. Rich
// text fields (Description, PersonalNotes) may contain HTML or markdown
// fragments; photo pixels are never stored here, only the acquisition URL.
type Recipe struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Servings      int            `json:"servings"`
	PrepMinutes   int            `json:"prepMinutes"`
	CookMinutes   int            `json:"cookMinutes"`
	Ingredients   []Ingredient   `json:"ingredients"`
	Instructions  []Step         `json:"instructions"`
	Nutrition     *NutritionInfo `json:"nutrition,omitempty"`
	PersonalNotes string         `json:"personalNotes,omitempty"`
	Tips          []string       `json:"tips,omitempty"`
	PhotoURL      string         `json:"photoUrl,omitempty"`
}

// Ingredient is one line of the ingredient list with human-style quantities.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"` // 0 means unmeasured ("to taste")
	Unit     string  `json:"unit"`     // "cups", "g", "tbsp", ""
	Note     string  `json:"note"`     // "finely chopped", ""
}

// Step is a single numbered instruction. Numbers are assigned by the caller
// and must run 1..N in slice order.
type Step struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// NutritionInfo holds the per-serving figures rendered as a table.
type NutritionInfo struct {
	Calories    int    `json:"calories"`
	ProteinG    int    `json:"proteinG"`
	CarbsG      int    `json:"carbsG"`
	FatG        int    `json:"fatG"`
	ServingSize string `json:"servingSize"`
}

// HasTimings reports whether the recipe carries any prep or cook time worth
// printing in the metadata line.
func (r *Recipe) HasTimings() bool {
	return r.PrepMinutes > 0 || r.CookMinutes > 0
}

// TotalMinutes returns prep plus cook time.
func (r *Recipe) TotalMinutes() int {
	return r.PrepMinutes + r.CookMinutes
}
