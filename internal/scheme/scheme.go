package scheme

import (
	"fmt"
	"math"
)

// Scheme holds all color logic for a poster: how quantized mask intensity
// maps to an xcolor expression, plus any document-level color setup.
// All fields are set once at startup; a Scheme value is never mutated.
type Scheme struct {
	Name string

	// Preamble is extra LaTeX emitted before the document body (color
	// definitions, page color). Empty for schemes that only use defaults.
	Preamble string

	// MinPct and MaxPct bound the mix percentage produced by ColorFor.
	MinPct int
	MaxPct int

	// Template is a fmt format string with a single %d verb for the
	// percentage, e.g. "black!%d" or "fgin!%d!fgout".
	Template string
}

// ColorFor maps a raw mask intensity (0..255) to an xcolor expression.
// Intensity is first rounded into one of levels+1 quantization buckets, then
// the bucket into a percentage within [MinPct, MaxPct]. Two intensities that
// round to the same bucket always yield the same string; run grouping in the
// shading step depends on that.
func (s Scheme) ColorFor(value uint8, levels int) string {
	level := math.Round(float64(value) / 255 * float64(levels))
	pct := s.MinPct + int(math.Round(level/float64(levels)*float64(s.MaxPct-s.MinPct)))
	return fmt.Sprintf(s.Template, pct)
}

// Schemes is the static registry of color schemes, keyed by CLI name.
var Schemes = map[string]Scheme{
	"print": {
		Name:     "print",
		Preamble: "",
		MinPct:   20,
		MaxPct:   100,
		Template: "black!%d",
	},
	"matrix": {
		Name: "matrix",
		Preamble: `\definecolor{fgin}{RGB}{0,230,60}
\definecolor{fgout}{RGB}{0,70,0}
\pagecolor{black}`,
		MinPct:   0,
		MaxPct:   100,
		Template: "fgin!%d!fgout",
	},
	"blueprint": {
		Name: "blueprint",
		Preamble: `\definecolor{bpfg}{RGB}{200,230,255}
\definecolor{bpbg}{RGB}{40,70,110}
\pagecolor[RGB]{10,30,60}`,
		MinPct:   0,
		MaxPct:   100,
		Template: "bpfg!%d!bpbg",
	},
	"ember": {
		Name: "ember",
		Preamble: `\definecolor{emberfg}{RGB}{255,180,30}
\definecolor{emberbg}{RGB}{80,20,0}
\pagecolor[RGB]{15,5,0}`,
		MinPct:   0,
		MaxPct:   100,
		Template: "emberfg!%d!emberbg",
	},
}

// Names lists the registered schemes in presentation order.
var Names = []string{"print", "matrix", "blueprint", "ember"}
