// Package text provides font-aware measurement and greedy word wrapping on
// top of go-pdf/fpdf core-font metrics. Results are deterministic: the same
// input always produces the same lines and heights.
package text

import (
	"strings"
	"sync"

	"codeberg.org/go-pdf/fpdf"

	"github.com/recipress/recipress/internal/template"
)

// PtToMM converts a length in points to millimeters.
const PtToMM = 25.4 / 72

// Line is one wrapped line with its measured width in mm.
type Line struct {
	Text  string
	Width float64
}

// Measurement is the result of wrapping a paragraph: the lines in order and
// the per-line advance height in mm.
type Measurement struct {
	Lines      []Line
	LineHeight float64
}

// Height returns the total vertical extent in mm. An empty paragraph has
// zero lines and zero height.
func (m Measurement) Height() float64 {
	return float64(len(m.Lines)) * m.LineHeight
}

// Measurer measures text using a dedicated fpdf instance in mm units. One
// measurer serves a whole generation run; the mutex serializes access to the
// underlying font state.
type Measurer struct {
	once sync.Once
	mu   sync.Mutex
	pdf  *fpdf.Fpdf
}

// NewMeasurer returns a measurer. The fpdf instance is created on first use.
func NewMeasurer() *Measurer {
	return &Measurer{}
}

func (m *Measurer) init() {
	m.pdf = fpdf.New("P", "mm", "A4", "")
	m.pdf.SetFont("Helvetica", "", 12)
}

// Width returns the rendered width of s in mm for the given font and size.
func (m *Measurer) Width(s string, font template.Font, size float64) float64 {
	if s == "" || size <= 0 {
		return 0
	}
	m.once.Do(m.init)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pdf.SetFont(font.Family, font.Style, size)
	return m.pdf.GetStringWidth(s)
}

// LineHeight returns the per-line advance in mm: the font's em coverage
// (ascent minus descent) scaled to the given size. Fonts without a usable
// descriptor fall back to a 1.2 multiplier.
func (m *Measurer) LineHeight(font template.Font, size float64) float64 {
	asc, desc := m.fontExtent(font)
	if asc == 0 && desc == 0 {
		return 1.2 * size * PtToMM
	}
	return float64(asc-desc) / 1000 * size * PtToMM
}

// Ascent returns the baseline offset from the top of a line in mm.
func (m *Measurer) Ascent(font template.Font, size float64) float64 {
	asc, desc := m.fontExtent(font)
	if asc == 0 && desc == 0 {
		return 0.8 * 1.2 * size * PtToMM
	}
	return float64(asc) / 1000 * size * PtToMM
}

func (m *Measurer) fontExtent(font template.Font) (ascent, descent int) {
	m.once.Do(m.init)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pdf.SetFont(font.Family, font.Style, 12)
	desc := m.pdf.GetFontDesc("", "")
	return desc.Ascent, desc.Descent
}

// Wrap breaks s into lines no wider than maxWidth mm using greedy word
// placement: words move to the next line when they no longer fit, and a
// single word wider than maxWidth gets a line of its own, never hyphenated.
// Embedded newlines are treated as ordinary word breaks; an empty or
// all-whitespace string yields zero lines.
func (m *Measurer) Wrap(s string, font template.Font, size, maxWidth float64) Measurement {
	lh := m.LineHeight(font, size)
	words := strings.Fields(s)
	if len(words) == 0 {
		return Measurement{LineHeight: lh}
	}

	spaceW := m.Width(" ", font, size)
	var lines []Line
	cur := words[0]
	curW := m.Width(words[0], font, size)
	for _, w := range words[1:] {
		ww := m.Width(w, font, size)
		if curW+spaceW+ww <= maxWidth {
			cur += " " + w
			curW += spaceW + ww
			continue
		}
		lines = append(lines, Line{Text: cur, Width: curW})
		cur = w
		curW = ww
	}
	lines = append(lines, Line{Text: cur, Width: curW})

	return Measurement{Lines: lines, LineHeight: lh}
}

// Truncate shortens s with a trailing ellipsis so it fits maxWidth. Used for
// table-of-contents titles that would otherwise collide with their page
// number column.
func (m *Measurer) Truncate(s string, font template.Font, size, maxWidth float64) string {
	if m.Width(s, font, size) <= maxWidth {
		return s
	}
	const ell = "..."
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if m.Width(strings.TrimRight(string(runes), " ")+ell, font, size) <= maxWidth {
			return strings.TrimRight(string(runes), " ") + ell
		}
	}
	return ell
}
