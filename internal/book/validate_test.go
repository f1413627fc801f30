package book

import (
	"errors"
	"testing"
)

func validBook() *RecipeBook {
	return &RecipeBook{
		ID:         "bk1",
		Name:       "Weeknight Dinners",
		TemplateID: "minimalist",
		Sections: []Section{
			{Title: "Mains", RecipeIDs: []string{"r1"}},
		},
		Recipes: []Recipe{
			{
				ID:    "r1",
				Title: "Lemon Pasta",
				Ingredients: []Ingredient{
					{Name: "spaghetti", Quantity: 200, Unit: "g"},
				},
				Instructions: []Step{
					{Number: 1, Text: "Boil the pasta."},
					{Number: 2, Text: "Toss with lemon and oil."},
				},
			},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RecipeBook)
		wantErr error
	}{
		{
			name:   "valid book",
			mutate: func(b *RecipeBook) {},
		},
		{
			name:    "no recipes",
			mutate:  func(b *RecipeBook) { b.Recipes = nil },
			wantErr: ErrNoRecipes,
		},
		{
			name: "section references missing recipe",
			mutate: func(b *RecipeBook) {
				b.Sections[0].RecipeIDs = append(b.Sections[0].RecipeIDs, "ghost")
			},
			wantErr: ErrUnknownRecipeID,
		},
		{
			name: "step numbers skip",
			mutate: func(b *RecipeBook) {
				b.Recipes[0].Instructions[1].Number = 3
			},
			wantErr: ErrStepNumbering,
		},
		{
			name: "step numbers start at zero",
			mutate: func(b *RecipeBook) {
				b.Recipes[0].Instructions[0].Number = 0
			},
			wantErr: ErrStepNumbering,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBook()
			tt.mutate(b)
			err := Validate(b)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecipeTimings(t *testing.T) {
	r := &Recipe{PrepMinutes: 10, CookMinutes: 25}
	if !r.HasTimings() {
		t.Fatal("HasTimings() = false, want true")
	}
	if got := r.TotalMinutes(); got != 35 {
		t.Fatalf("TotalMinutes() = %d, want 35", got)
	}
	none := &Recipe{}
	if none.HasTimings() {
		t.Fatal("HasTimings() on zero recipe = true, want false")
	}
}
