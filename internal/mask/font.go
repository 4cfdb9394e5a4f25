package mask

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// loadFontData reads the configured font file. A missing font is a setup
// problem, not a per-poster one, so it maps to ErrFontUnavailable.
func loadFontData(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFontUnavailable, path, err)
	}
	return data, nil
}

// newFace builds a face at the given pixel size. TrueType outlines go
// through freetype for full hinting; CFF-flavoured OpenType files fall back
// to x/image/font/opentype, which freetype cannot parse.
func newFace(data []byte, sizePx int) (font.Face, error) {
	if tt, err := truetype.Parse(data); err == nil {
		return truetype.NewFace(tt, &truetype.Options{
			Size:    float64(sizePx),
			DPI:     72,
			Hinting: font.HintingFull,
		}), nil
	}
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parse: %v", ErrFontUnavailable, err)
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    float64(sizePx),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: face: %v", ErrFontUnavailable, err)
	}
	return face, nil
}
