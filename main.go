package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/numposter/numposter/internal/app"
	"github.com/numposter/numposter/internal/mask"
	"github.com/numposter/numposter/internal/paper"
	"github.com/numposter/numposter/internal/poster"
	"github.com/numposter/numposter/internal/scheme"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging to ./numposter-debug.log")
	seed := flag.Int64("seed", -1, "override the per-poster default seed (negative keeps defaults)")
	fontPath := flag.String("font", "fonts/FiraMono-Regular.otf", "path to the monospace font used for glyph masks")
	outDir := flag.String("out", "build", "output directory for generated .tex files")
	qrPayload := flag.String("qr", "", "render a QR code of this payload as the mask instead of the poster default")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via NUMPOSTER_STDIO_LOG")
	flag.Usage = usage
	flag.Parse()

	// Best-effort: redirect all stdout/stderr output (including panic stack traces)
	// to a file so long batch runs stay diagnosable.
	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("NUMPOSTER_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	// Local file logger when debug enabled
	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./numposter-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	posterNames, err := selection(flag.Arg(0), poster.Names)
	if err != nil {
		fail(err)
	}
	schemeNames, err := selection(flag.Arg(1), scheme.Names)
	if err != nil {
		fail(err)
	}
	paperKeys, err := selection(flag.Arg(2), paper.Names)
	if err != nil {
		fail(err)
	}

	var generated []string
	failures := 0
	for _, posterName := range posterNames {
		gen := poster.Posters[posterName]
		for _, schemeName := range schemeNames {
			for _, paperKey := range paperKeys {
				paperCfg := paper.Formats[paperKey]
				cfg := gen.NewConfig(scheme.Schemes[schemeName], paperCfg, *fontPath)
				if *seed >= 0 {
					cfg.Seed = *seed
				}
				if *qrPayload != "" {
					cfg.Source = mask.QRCode{Payload: *qrPayload, Scale: 1}
				}

				out, werr := poster.WriteFile(gen, cfg, schemeName, paperKey, *outDir)
				if werr != nil {
					// One bad unit must not sink the batch.
					failures++
					fmt.Printf("✘ %s/%s/%s: %v\n", posterName, schemeName, paperKey, werr)
					logger.Errorf("render", "poster=%s scheme=%s paper=%s: %v", posterName, schemeName, paperKey, werr)
					continue
				}
				generated = append(generated, out)
				fmt.Printf("✔ wrote %s (%s %dx%dmm, grid %dx%d, poster=%s, scheme=%s)\n",
					out, paper.Labels[paperKey], paperCfg.WidthMM, paperCfg.HeightMM,
					paperCfg.GridCols, paperCfg.GridRows, posterName, schemeName)
				logger.Infof("render", "wrote %s", out)
			}
		}
	}

	// Manifest for the build tooling: only these files get compiled.
	if _, err := poster.WriteManifest(*outDir, generated); err != nil {
		fmt.Println("manifest write error:", err)
	}

	if failures > 0 {
		os.Exit(1)
	}
}

// selection expands a positional selector: empty or "all" means every
// registered name, otherwise the name must be registered.
func selection(arg string, names []string) ([]string, error) {
	if arg == "" || arg == "all" {
		return names, nil
	}
	for _, n := range names {
		if n == arg {
			return []string{arg}, nil
		}
	}
	return nil, fmt.Errorf("unknown selector %q (choose from %s or all)", arg, strings.Join(names, ", "))
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	flag.Usage()
	os.Exit(2)
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "usage: numposter [flags] [poster] [scheme] [paper]\n\n")
	fmt.Fprintf(out, "  poster: %s, all (default all)\n", strings.Join(poster.Names, ", "))
	fmt.Fprintf(out, "  scheme: %s, all (default all)\n", strings.Join(scheme.Names, ", "))
	fmt.Fprintf(out, "  paper:  %s, all (default all)\n\n", strings.Join(paper.Names, ", "))
	flag.PrintDefaults()
}
