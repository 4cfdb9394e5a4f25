package paper

import "math"

// Config describes one physical paper layout: page dimensions, the character
// grid the page is filled with, and the font metrics the grid was tuned for.
// Values are fixed at startup and never mutated.
type Config struct {
	WidthMM  int
	HeightMM int
	MarginMM int

	GridCols int
	GridRows int

	FontSizePt   float64
	LineHeightPt float64
	CharWidthPt  float64
}

// Aspect is the width/height ratio of one character cell. Every raster that
// has to line up with the character grid uses this ratio.
func (c Config) Aspect() float64 {
	return c.CharWidthPt / c.LineHeightPt
}

// Base is the reference layout: A3+ (329x483mm) with a 259x195 grid of
// 6pt Fira Mono on a 7pt baseline.
var Base = Config{
	WidthMM:      329,
	HeightMM:     483,
	MarginMM:     0,
	GridCols:     259,
	GridRows:     195,
	FontSizePt:   6.0,
	LineHeightPt: 7.0,
	CharWidthPt:  3.6,
}

// Scaled derives a layout for a different physical size from base. The grid
// scales with the physical dimensions while font metrics and margin are
// copied unchanged, so characters-per-area stays constant across formats.
func Scaled(base Config, widthMM, heightMM int) Config {
	return Config{
		WidthMM:      widthMM,
		HeightMM:     heightMM,
		MarginMM:     base.MarginMM,
		GridCols:     scaleDim(base.GridCols, widthMM, base.WidthMM),
		GridRows:     scaleDim(base.GridRows, heightMM, base.HeightMM),
		FontSizePt:   base.FontSizePt,
		LineHeightPt: base.LineHeightPt,
		CharWidthPt:  base.CharWidthPt,
	}
}

func scaleDim(cells, mm, baseMM int) int {
	n := int(math.Round(float64(cells) * float64(mm) / float64(baseMM)))
	if n < 1 {
		return 1
	}
	return n
}

// Formats is the static registry of supported paper formats.
var Formats = map[string]Config{
	"a3plus": Base,
	"a3":     Scaled(Base, 297, 420),
	"a4":     Scaled(Base, 210, 297),
}

// Names lists the registered formats in presentation order.
var Names = []string{"a3plus", "a3", "a4"}

// Labels maps format keys to display names for driver output.
var Labels = map[string]string{
	"a3plus": "A3+",
	"a3":     "A3",
	"a4":     "A4",
}
