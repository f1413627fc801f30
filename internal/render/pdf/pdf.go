// Package pdf serializes a laid-out document into PDF bytes. It replays the
// absolute-positioned draw commands produced by layout into an fpdf document;
// any failure here aborts the whole generation with no partial output.
package pdf

import (
	"bytes"
	"fmt"
	"image/png"
	"time"

	"codeberg.org/go-pdf/fpdf"

	"github.com/recipress/recipress/internal/page"
	"github.com/recipress/recipress/internal/res"
)

const (
	producer = "Recipress"
	mmPerIn  = 25.4
)

// Renderer handles rendering a document to PDF.
type Renderer struct {
	// PhotoDPI caps the resolution of embedded photos at their placed size.
	// Larger rasters are downscaled before encoding; zero disables the cap.
	PhotoDPI float64
	// Debug enables verbose logging to stdout
	Debug bool
}

// NewRenderer creates a new PDF renderer.
func NewRenderer() *Renderer {
	return &Renderer{PhotoDPI: 150}
}

// Bookmark is one entry of the document outline shown in a reader's sidebar.
// Page is the 1-based index of the destination page in final document order.
type Bookmark struct {
	Title string
	Level int
	Page  int
}

// Metadata carries the document information fields and the outline.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	// Created stamps the creation and modification dates. The zero value
	// leaves fpdf's clock-based default, which makes output nondeterministic.
	Created   time.Time
	Bookmarks []Bookmark
}

// Render replays every page of doc into a PDF and returns the serialized
// bytes. Photos referenced by ImageRef commands are looked up in images,
// re-encoded as PNG and embedded; the finished document never references
// external resources. Render seals the document: it is the terminal step and
// no further layout mutation is permitted afterwards.
func (r *Renderer) Render(doc *page.Document, images res.ImageSet, meta Metadata) ([]byte, error) {
	doc.Seal()

	size := doc.Size()
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: size.Width, Ht: size.Height},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)

	pdf.SetTitle(meta.Title, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.SetSubject(meta.Subject, true)
	pdf.SetKeywords(meta.Keywords, true)
	pdf.SetCreator(producer, true)
	pdf.SetProducer(producer, true)
	if !meta.Created.IsZero() {
		pdf.SetCreationDate(meta.Created)
		pdf.SetModificationDate(meta.Created)
	}

	if r.Debug {
		fmt.Printf("Rendering %d pages (%s)\n", doc.PageCount(), size.Name)
	}

	registered := make(map[string]bool)
	for _, p := range doc.Pages() {
		pdf.AddPage()
		for _, bm := range meta.Bookmarks {
			if bm.Page == p.Index {
				pdf.Bookmark(bm.Title, bm.Level, 0)
			}
		}
		for _, cmd := range p.Commands {
			if err := r.renderCommand(pdf, cmd, images, registered); err != nil {
				return nil, fmt.Errorf("page %d: %w", p.Index, err)
			}
		}
	}

	if pdf.Err() {
		return nil, fmt.Errorf("assemble document: %w", pdf.Error())
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("serialize document: %w", err)
	}
	return buf.Bytes(), nil
}

// renderCommand replays a single draw command. Coordinates are already
// absolute page millimeters; fpdf rounds them during output, which is the
// only rounding in the pipeline.
func (r *Renderer) renderCommand(pdf *fpdf.Fpdf, cmd page.Command, images res.ImageSet, registered map[string]bool) error {
	switch c := cmd.(type) {
	case page.TextRun:
		pdf.SetFont(c.Font.Family, c.Font.Style, c.Size)
		pdf.SetTextColor(c.Color.R, c.Color.G, c.Color.B)
		pdf.Text(c.X, c.Y, c.Text)
	case page.Rule:
		pdf.SetDrawColor(c.Color.R, c.Color.G, c.Color.B)
		pdf.SetLineWidth(c.Width)
		pdf.Line(c.X1, c.Y1, c.X2, c.Y2)
	case page.FilledRect:
		pdf.SetFillColor(c.Color.R, c.Color.G, c.Color.B)
		pdf.Rect(c.X, c.Y, c.W, c.H, "F")
	case page.Outline:
		pdf.SetDrawColor(c.Color.R, c.Color.G, c.Color.B)
		pdf.SetLineWidth(c.LineWidth)
		pdf.Rect(c.X, c.Y, c.W, c.H, "D")
	case page.ImageRef:
		return r.placeImage(pdf, c, images, registered)
	default:
		return fmt.Errorf("unknown draw command %T", cmd)
	}
	return nil
}

// placeImage embeds the decoded photo behind an ImageRef. Each photo is
// encoded and registered once per document and placed by name afterwards.
func (r *Renderer) placeImage(pdf *fpdf.Fpdf, c page.ImageRef, images res.ImageSet, registered map[string]bool) error {
	name := "photo-" + c.Key
	opts := fpdf.ImageOptions{ImageType: "PNG"}

	if !registered[name] {
		img := images.Get(c.Key)
		if img == nil {
			return fmt.Errorf("no decoded photo for %q", c.Key)
		}
		if r.PhotoDPI > 0 {
			img = res.ScaleToWidth(img, int(c.W/mmPerIn*r.PhotoDPI))
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("encode photo %q: %w", c.Key, err)
		}
		if r.Debug {
			fmt.Printf("Embedded photo %s (%d bytes)\n", c.Key, buf.Len())
		}
		pdf.RegisterImageOptionsReader(name, opts, &buf)
		registered[name] = true
	}

	pdf.ImageOptions(name, c.X, c.Y, c.W, c.H, false, opts, 0, "")
	return nil
}
