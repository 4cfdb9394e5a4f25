package mask

import (
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Glyph renders its text (usually a single character) as a large white
// silhouette on a black canvas.
type Glyph struct {
	Text string
}

func (g Glyph) raster(cfg Config) (*image.Gray, error) {
	w, h := cfg.canvasSize()
	canvas := image.NewGray(image.Rect(0, 0, w, h))

	data, err := loadFontData(cfg.FontPath)
	if err != nil {
		return nil, err
	}

	// First pass: measure the ink extent at the maximum candidate size.
	maxSize := int(float64(h) * cfg.GlyphFill)
	face, err := newFace(data, maxSize)
	if err != nil {
		return nil, err
	}
	bounds, _ := font.BoundString(face, g.Text)
	face.Close()

	inkW := (bounds.Max.X - bounds.Min.X).Ceil()
	inkH := (bounds.Max.Y - bounds.Min.Y).Ceil()

	// Fit down so the ink never exceeds 95% of either canvas dimension.
	fit := math.Min(1, math.Min(
		0.95*float64(w)/float64(inkW),
		0.95*float64(h)/float64(inkH),
	))
	size := int(float64(maxSize) * fit)
	if size < 10 {
		size = 10
	}

	face, err = newFace(data, size)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	// Center using the actual ink bounds rather than the font-metric
	// anchor; metric centering misplaces asymmetric glyphs.
	bounds, _ = font.BoundString(face, g.Text)
	dot := fixed.Point26_6{
		X: fixed.I(w/2) - (bounds.Min.X+bounds.Max.X)/2,
		Y: fixed.I(h/2) - (bounds.Min.Y+bounds.Max.Y)/2,
	}
	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.White,
		Face: face,
		Dot:  dot,
	}
	d.DrawString(g.Text)

	gaussianBlur(canvas, cfg.blurRadius())
	return canvas, nil
}
