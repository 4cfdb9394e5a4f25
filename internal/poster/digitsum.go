package poster

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// digitSumChain repeatedly replaces n by the sum of its decimal digits until
// a single digit remains, recording every step.
func digitSumChain(n int) []int {
	chain := []int{n}
	for n >= 10 {
		s := 0
		for m := n; m > 0; m /= 10 {
			s += m % 10
		}
		n = s
		chain = append(chain, n)
	}
	return chain
}

// formatChain renders a chain like [81 9] as "8+1=9", joining successive
// steps with " -> ".
func formatChain(chain []int) string {
	parts := make([]string, 0, len(chain)-1)
	for i := 0; i+1 < len(chain); i++ {
		digits := strings.Split(strconv.Itoa(chain[i]), "")
		parts = append(parts, strings.Join(digits, "+")+"="+strconv.Itoa(chain[i+1]))
	}
	return strings.Join(parts, " -> ")
}

func digitSumExample(seed int64) string {
	r := rand.New(rand.NewSource(seed))
	n := r.Intn(9998) + 2
	product := 9 * n
	return fmt.Sprintf("9x%d=%d | %s ", n, product, formatChain(digitSumChain(product)))
}

// buildDigitSumGrid demonstrates the digit-sum rule for multiples of nine:
// every row is a stream of worked 9xN examples whose digit sums collapse
// back to 9.
func buildDigitSumGrid(cols, rows int, seed int64) []string {
	return fillRows(cols, rows, seed, digitSumExample)
}

// fillRows builds each row by concatenating examples until the row is full,
// then truncating to exactly cols characters. Each example inside a row is
// reseeded at rowSeed + current length, so a row is fully determined by its
// row seed.
func fillRows(cols, rows int, seed int64, example func(seed int64) string) []string {
	lines := make([]string, 0, rows)
	for row := 0; row < rows; row++ {
		rowSeed := seed*10000 + int64(row)
		line := example(rowSeed)
		for len(line) < cols {
			line += example(rowSeed + int64(len(line)))
		}
		lines = append(lines, line[:cols])
	}
	return lines
}
