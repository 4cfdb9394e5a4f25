// Package poster defines the poster types: the mathematical text patterns,
// their default mask sources, and the pipeline that turns one
// poster/scheme/paper combination into a .tex file.
package poster

import (
	"github.com/numposter/numposter/internal/mask"
	"github.com/numposter/numposter/internal/paper"
	"github.com/numposter/numposter/internal/scheme"
)

// TextBuilder fills a character grid: it returns exactly rows lines of
// exactly cols characters each. The seed makes output reproducible; builders
// derive a sub-seed per row (seed*10000 + row) so each row can be
// regenerated independently.
type TextBuilder func(cols, rows int, seed int64) []string

// Generator describes one poster type.
type Generator struct {
	Name        string
	Stem        string // output file name stem
	Build       TextBuilder
	DefaultSeed int64
	Mask        mask.Source
}

// Config aggregates everything one render unit needs. Units built from
// separate Configs share no state and may run concurrently.
type Config struct {
	Paper          paper.Config
	Scheme         scheme.Scheme
	Seed           int64
	EdgeSoften     float64
	QuantizeLevels int
	RenderScale    int
	GlyphFill      float64
	FontPath       string
	Source         mask.Source
	Stem           string
}

// NewConfig builds the default render configuration for this generator on
// the given scheme and paper.
func (g Generator) NewConfig(sch scheme.Scheme, p paper.Config, fontPath string) Config {
	return Config{
		Paper:          p,
		Scheme:         sch,
		Seed:           g.DefaultSeed,
		EdgeSoften:     1.2,
		QuantizeLevels: 20,
		RenderScale:    10,
		GlyphFill:      0.95,
		FontPath:       fontPath,
		Source:         g.Mask,
		Stem:           g.Stem,
	}
}
