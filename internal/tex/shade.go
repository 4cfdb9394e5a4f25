package tex

import (
	"fmt"
	"strings"

	"github.com/numposter/numposter/internal/scheme"
)

// Run is a maximal stretch of consecutive characters in a row that share the
// same quantized color key. Text holds the raw, unescaped characters;
// concatenating the Text of all runs in order reproduces the row exactly.
type Run struct {
	Color string
	Text  string
}

// ShadeRow splits a text row into color runs. maskRow carries one intensity
// per character, aligned by position; the caller guarantees equal lengths.
// Run boundaries are decided purely on the quantized color key, so two
// characters with different raw intensities that round to the same level
// merge into one run.
func ShadeRow(row string, maskRow []uint8, sch scheme.Scheme, levels int) []Run {
	chars := []rune(row)
	if len(chars) == 0 {
		return nil
	}

	var runs []Run
	start := 0
	prev := sch.ColorFor(maskRow[0], levels)
	for i := 1; i < len(chars); i++ {
		key := sch.ColorFor(maskRow[i], levels)
		if key != prev {
			runs = append(runs, Run{Color: prev, Text: string(chars[start:i])})
			start, prev = i, key
		}
	}
	return append(runs, Run{Color: prev, Text: string(chars[start:])})
}

// ShadedLine serializes a row as a sequence of \textcolor directives.
// Escaping happens per run, after grouping; grouping itself never looks at
// the escaped form.
func ShadedLine(row string, maskRow []uint8, sch scheme.Scheme, levels int) string {
	var b strings.Builder
	for _, run := range ShadeRow(row, maskRow, sch, levels) {
		fmt.Fprintf(&b, `\textcolor{%s}{%s}`, run.Color, Escape(run.Text))
	}
	return b.String()
}
