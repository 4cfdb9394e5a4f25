package poster

import (
	"fmt"
	"math/rand"
	"strconv"
)

// alternatingSum is d0 - d1 + d2 - d3 + ... over the decimal digits of n,
// most significant first. n is divisible by 11 exactly when this sum is.
func alternatingSum(n int) int {
	sum, sign := 0, 1
	for _, d := range strconv.Itoa(n) {
		sum += sign * int(d-'0')
		sign = -sign
	}
	return sum
}

func alternatingExample(seed int64) string {
	r := rand.New(rand.NewSource(seed))
	n := r.Intn(99989) + 11
	alt := alternatingSum(n)
	div := "N"
	if alt%11 == 0 {
		div = "Y"
	}
	return fmt.Sprintf("11|%d? alt=%d %s ", n, alt, div)
}

// buildAlternatingGrid demonstrates the divisibility-by-11 rule: each
// example shows a candidate, its alternating digit sum, and the verdict.
func buildAlternatingGrid(cols, rows int, seed int64) []string {
	return fillRows(cols, rows, seed, alternatingExample)
}
