package poster

import (
	"math/big"
	"sync"
)

const piPosterDigits = 50000

var piOnce struct {
	sync.Once
	digits string
}

func cachedPiDigits() string {
	piOnce.Do(func() {
		piOnce.digits = piDigits(piPosterDigits)
	})
	return piOnce.digits
}

// piDigits returns the first n decimal digits of pi as a string, starting
// "3141...", computed with Machin's formula over scaled big integers:
// pi = 16*atan(1/5) - 4*atan(1/239).
func piDigits(n int) string {
	guard := 10
	unit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n+guard)), nil)

	pi := new(big.Int).Mul(big.NewInt(16), arctanInv(5, unit))
	pi.Sub(pi, new(big.Int).Mul(big.NewInt(4), arctanInv(239, unit)))

	return pi.String()[:n]
}

// arctanInv computes atan(1/x) * unit using the Taylor series
// 1/x - 1/(3x^3) + 1/(5x^5) - ..., truncated when terms vanish at the
// working precision.
func arctanInv(x int64, unit *big.Int) *big.Int {
	xx := big.NewInt(x * x)
	term := new(big.Int).Quo(unit, big.NewInt(x))
	sum := new(big.Int).Set(term)
	t := new(big.Int)

	for k := int64(3); term.Sign() != 0; k += 2 {
		term.Quo(term, xx)
		t.Quo(term, big.NewInt(k))
		if ((k-1)/2)%2 == 1 {
			sum.Sub(sum, t)
		} else {
			sum.Add(sum, t)
		}
	}
	return sum
}

// buildPiGrid fills the grid with consecutive digits of pi, one per cell,
// starting at offset seed mod the digit count and wrapping around.
func buildPiGrid(cols, rows int, seed int64) []string {
	digits := cachedPiDigits()
	n := len(digits)
	total := cols * rows

	pos := int(seed % int64(n))
	if pos < 0 {
		pos += n
	}

	buf := make([]byte, total)
	for i := 0; i < total; i++ {
		buf[i] = digits[pos]
		pos = (pos + 1) % n
	}

	lines := make([]string, 0, rows)
	for i := 0; i < total; i += cols {
		lines = append(lines, string(buf[i:i+cols]))
	}
	return lines
}
