package res

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
)

// ImageSet holds the decoded photos for one generation run, keyed by recipe
// id. Recipes whose photo failed to load are simply absent.
type ImageSet map[string]image.Image

// Has reports whether a decoded photo exists for the key.
func (s ImageSet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Get returns the decoded photo for the key, or nil.
func (s ImageSet) Get(key string) image.Image {
	return s[key]
}

// AspectRatio returns width/height for the keyed photo, or 0 when absent or
// degenerate. Layout uses it to size the photo column before rendering.
func (s ImageSet) AspectRatio(key string) float64 {
	img, ok := s[key]
	if !ok {
		return 0
	}
	b := img.Bounds()
	if b.Dy() == 0 {
		return 0
	}
	return float64(b.Dx()) / float64(b.Dy())
}

// Decode decodes raster bytes using the registered decoder set.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// ScaleToWidth downscales img so its width does not exceed maxWidth pixels,
// keeping the aspect ratio. Images at or under the limit come back
// unchanged; upscaling never happens. The renderer uses this to cap embedded
// photos at the target resolution for their placed size.
func ScaleToWidth(img image.Image, maxWidth int) image.Image {
	b := img.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		return img
	}
	h := int(math.Round(float64(b.Dy()) * float64(maxWidth) / float64(b.Dx())))
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
