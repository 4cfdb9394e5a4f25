// Package mask turns a poster's mask source (a glyph, an image file or a QR
// code) into a grayscale raster at character-grid resolution. The raster is
// produced oversampled, softened with a Gaussian blur and then downsampled
// once with a high-quality filter, which approximates anti-aliased edges
// under the one-pixel-per-character sampling the shading step applies.
package mask

import (
	"errors"
	"image"
	"math"

	"github.com/numposter/numposter/internal/paper"
	xdraw "golang.org/x/image/draw"
)

var (
	// ErrNoSource is returned when a render is attempted without a mask
	// source configured.
	ErrNoSource = errors.New("mask: no mask source configured")

	// ErrFontUnavailable is returned when the glyph font file is missing
	// or cannot be parsed.
	ErrFontUnavailable = errors.New("mask: font unavailable")

	// ErrImageUnreadable is returned when a mask image is missing,
	// undecodable, or cannot be rasterized.
	ErrImageUnreadable = errors.New("mask: image unreadable")
)

// Mask is a grayscale raster with exactly one intensity per grid cell.
// It is produced fresh per render and consumed once by the shading step.
type Mask struct {
	Cols, Rows int
	Pix        []uint8 // row-major, Cols*Rows entries
}

// Row returns the intensities for grid row y, aligned 1:1 with the
// characters of the corresponding text row.
func (m *Mask) Row(y int) []uint8 {
	return m.Pix[y*m.Cols : (y+1)*m.Cols]
}

// Config carries the rasterization parameters shared by all source variants.
type Config struct {
	Paper paper.Config

	// RenderScale is the oversampling factor: the working canvas is
	// RenderScale pixels tall per grid row.
	RenderScale int

	// EdgeSoften scales the blur applied before downsampling.
	EdgeSoften float64

	// GlyphFill is the initial glyph height as a fraction of the canvas.
	GlyphFill float64

	// FontPath locates the outline font used for glyph masks.
	FontPath string
}

// canvasSize is the oversampled working resolution. Width is corrected by
// the character cell aspect ratio so the canvas and the grid cover the page
// with the same proportions.
func (c Config) canvasSize() (w, h int) {
	h = c.Paper.GridRows * c.RenderScale
	w = int(math.Round(float64(c.Paper.GridCols*c.RenderScale) * c.Paper.Aspect()))
	return w, h
}

func (c Config) blurRadius() float64 {
	return float64(c.RenderScale) * c.EdgeSoften * c.Paper.Aspect()
}

// Source produces the oversampled grayscale canvas for a poster mask.
// Exactly one source drives a render; the variants are Glyph, ImageFile and
// QRCode.
type Source interface {
	raster(cfg Config) (*image.Gray, error)
}

// Render rasterizes src at the oversampled resolution and resamples it down
// to exactly GridCols x GridRows.
func Render(cfg Config, src Source) (*Mask, error) {
	if src == nil {
		return nil, ErrNoSource
	}
	raw, err := src.raster(cfg)
	if err != nil {
		return nil, err
	}
	return downsample(raw, cfg.Paper.GridCols, cfg.Paper.GridRows), nil
}

// downsample resamples src to cols x rows with a Catmull-Rom kernel, the
// highest-quality scaler x/image/draw offers.
func downsample(src *image.Gray, cols, rows int) *Mask {
	dst := image.NewGray(image.Rect(0, 0, cols, rows))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return &Mask{Cols: cols, Rows: rows, Pix: dst.Pix}
}
