package tex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/numposter/numposter/internal/mask"
	"github.com/numposter/numposter/internal/paper"
	"github.com/numposter/numposter/internal/scheme"
)

// docTemplate is the fixed document frame. Interpolation points, in order:
// paper width, height and margin (mm), the optional color preamble, font
// size and baseline (pt), and the shaded body.
const docTemplate = `\documentclass[final]{article}
\usepackage[
  paperwidth=%dmm,
  paperheight=%dmm,
  margin=%dmm
]{geometry}
\usepackage{fontspec}
\usepackage{microtype}
\usepackage{xcolor}%s
\setmonofont{FiraMono-Regular}[Path=fonts/,Extension=.otf]
\renewcommand{\familydefault}{\ttdefault}
\setlength{\parindent}{0pt}
\setlength{\topskip}{0pt}
\setlength{\parskip}{0pt}
\pagestyle{empty}

\begin{document}
\centering
\vspace*{\stretch{1}}\noindent
\fontsize{%s}{%s}\selectfont
%s
\vspace*{\stretch{2}}
\end{document}
`

// Document assembles one complete, independently compilable LaTeX document
// from text rows and the aligned mask. Each body row is a run of \textcolor
// directives terminated with an explicit line break. A non-empty scheme
// preamble is prepended with a separating newline; otherwise nothing is
// inserted.
func Document(lines []string, m *mask.Mask, p paper.Config, sch scheme.Scheme, levels int) string {
	body := make([]string, 0, len(lines))
	for y, line := range lines {
		body = append(body, ShadedLine(line, m.Row(y), sch, levels)+`\\`)
	}

	preamble := sch.Preamble
	if preamble != "" {
		preamble = "\n" + preamble
	}

	return fmt.Sprintf(docTemplate,
		p.WidthMM, p.HeightMM, p.MarginMM,
		preamble,
		formatPt(p.FontSizePt), formatPt(p.LineHeightPt),
		strings.Join(body, "\n"),
	)
}

func formatPt(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
