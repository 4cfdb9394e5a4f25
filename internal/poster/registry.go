package poster

import "github.com/numposter/numposter/internal/mask"

// Posters is the static registry of poster types, keyed by CLI name.
var Posters = map[string]Generator{
	"9": {
		Name:        "9 - Digit Sum",
		Stem:        "poster_9",
		Build:       buildDigitSumGrid,
		DefaultSeed: 9,
		Mask:        mask.Glyph{Text: "9"},
	},
	"11": {
		Name:        "11 - Alternating Sum",
		Stem:        "poster_11",
		Build:       buildAlternatingGrid,
		DefaultSeed: 11,
		Mask:        mask.Glyph{Text: "11"},
	},
	"primes": {
		Name:        "Primes - Distribution",
		Stem:        "poster_primes",
		Build:       buildPrimesGrid,
		DefaultSeed: 2,
		Mask:        mask.Glyph{Text: "÷"},
	},
	"collatz": {
		Name:        "Collatz - Process",
		Stem:        "poster_collatz",
		Build:       buildCollatzGrid,
		DefaultSeed: 3,
		Mask:        mask.ImageFile{Path: "assets/tree.png", Scale: 1.5},
	},
	"pi": {
		Name:        "Pi - Digits",
		Stem:        "poster_pi",
		Build:       buildPiGrid,
		DefaultSeed: 0,
		Mask:        mask.Glyph{Text: "π"},
	},
}

// Names lists the registered posters in presentation order.
var Names = []string{"9", "11", "primes", "collatz", "pi"}
