package poster

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/numposter/numposter/internal/mask"
	"github.com/numposter/numposter/internal/tex"
)

// ManifestName is the file written next to the generated documents, listing
// them for downstream build tooling.
const ManifestName = ".generated"

// Render produces the complete LaTeX document for one render unit: text grid
// from the generator, mask from the configured source, shading, assembly.
func Render(g Generator, cfg Config) (string, error) {
	lines := g.Build(cfg.Paper.GridCols, cfg.Paper.GridRows, cfg.Seed)

	m, err := mask.Render(mask.Config{
		Paper:       cfg.Paper,
		RenderScale: cfg.RenderScale,
		EdgeSoften:  cfg.EdgeSoften,
		GlyphFill:   cfg.GlyphFill,
		FontPath:    cfg.FontPath,
	}, cfg.Source)
	if err != nil {
		return "", err
	}

	return tex.Document(lines, m, cfg.Paper, cfg.Scheme, cfg.QuantizeLevels), nil
}

// WriteFile renders one unit and writes it to
// outDir/<stem>_<scheme>_<paper>.tex, returning the written path.
func WriteFile(g Generator, cfg Config, schemeName, paperKey, outDir string) (string, error) {
	doc, err := Render(g, cfg)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	out := filepath.Join(outDir, fmt.Sprintf("%s_%s_%s.tex", cfg.Stem, schemeName, paperKey))
	if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
		return "", err
	}
	return out, nil
}

// WriteManifest records the generated paths in outDir, one per line, so the
// build tooling compiles exactly these files. It returns the manifest path.
func WriteManifest(outDir string, paths []string) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	manifest := filepath.Join(outDir, ManifestName)
	if err := os.WriteFile(manifest, []byte(strings.Join(paths, "\n")), 0o644); err != nil {
		return "", err
	}
	return manifest, nil
}
