package book

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by Validate.
var (
	ErrNoRecipes       = errors.New("book has no recipes")
	ErrUnknownRecipeID = errors.New("section references unknown recipe")
	ErrStepNumbering   = errors.New("instruction numbers are not sequential")
)

// Validate checks the structural invariants the generator relies on: at
// least one recipe, section references that resolve, and instruction
// numbers running 1..N. The authoring application guarantees these, so a
// violation is a caller bug and is reported before any layout happens.
func Validate(b *RecipeBook) error {
	if len(b.Recipes) == 0 {
		return ErrNoRecipes
	}
	ids := make(map[string]bool, len(b.Recipes))
	for _, r := range b.Recipes {
		ids[r.ID] = true
	}
	for _, s := range b.Sections {
		for _, id := range s.RecipeIDs {
			if !ids[id] {
				return fmt.Errorf("%w: %q in section %q", ErrUnknownRecipeID, id, s.Title)
			}
		}
	}
	for _, r := range b.Recipes {
		for i, step := range r.Instructions {
			if step.Number != i+1 {
				return fmt.Errorf("%w: recipe %q step %d numbered %d", ErrStepNumbering, r.ID, i+1, step.Number)
			}
		}
	}
	return nil
}
