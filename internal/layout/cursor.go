// Package layout turns a recipe book into pages of draw commands. It owns
// the flow rules: one vertical cursor per run, fresh page per recipe, atomic
// blocks that move as a whole and free paragraphs that break line by line.
package layout

import "github.com/recipress/recipress/internal/page"

// Cursor tracks the write position during layout: the page being filled and
// the next free y coordinate in mm from the page top. It is threaded
// explicitly through every placement call.
type Cursor struct {
	Page *page.Page
	Y    float64
}
