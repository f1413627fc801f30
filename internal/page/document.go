package page

// Document collects pages as layout produces them and supports front-matter
// insertion for the cover and table of contents. Once a renderer takes
// ownership it calls Seal; mutation after that is a programming error.
type Document struct {
	size    Size
	margins Margins
	pages   []*Page
	sealed  bool
}

// NewDocument creates an empty document with the given geometry.
func NewDocument(size Size, margins Margins) *Document {
	return &Document{size: size, margins: margins}
}

// Size returns the page format.
func (d *Document) Size() Size { return d.size }

// Margins returns the page margins.
func (d *Document) Margins() Margins { return d.margins }

// AddPage appends a fresh page and returns it.
func (d *Document) AddPage() *Page {
	d.mustBeOpen()
	p := &Page{Index: len(d.pages) + 1}
	d.pages = append(d.pages, p)
	return p
}

// Current returns the page most recently added, or nil for an empty document.
func (d *Document) Current() *Page {
	if len(d.pages) == 0 {
		return nil
	}
	return d.pages[len(d.pages)-1]
}

// Pages returns the pages in document order.
func (d *Document) Pages() []*Page { return d.pages }

// PageCount returns the number of pages.
func (d *Document) PageCount() int { return len(d.pages) }

// InsertFront places the given pages before all existing ones and reassigns
// every page index. Used to prepend the cover and table of contents after
// the body is laid out.
func (d *Document) InsertFront(front ...*Page) {
	d.mustBeOpen()
	d.pages = append(front, d.pages...)
	for i, p := range d.pages {
		p.Index = i + 1
	}
}

// Seal freezes the document. Called by the renderer when it takes ownership.
func (d *Document) Seal() { d.sealed = true }

func (d *Document) mustBeOpen() {
	if d.sealed {
		panic("page: document mutated after seal")
	}
}
