// Package tex serializes shaded text grids as compilable LaTeX documents:
// escaping, per-row color run grouping, and the fixed document template.
package tex

import "strings"

var specials = strings.NewReplacer(
	`\`, `\textbackslash `,
	"&", `\&`,
	"%", `\%`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
)

// Escape rewrites characters that are special in LaTeX body text.
func Escape(s string) string {
	return specials.Replace(s)
}
