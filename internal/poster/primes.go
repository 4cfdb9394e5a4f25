package poster

import "strconv"

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// buildPrimesGrid fills the grid with consecutive primes separated by
// spaces, starting from the seed. The visible gaps between entries trace the
// prime gaps themselves.
func buildPrimesGrid(cols, rows int, seed int64) []string {
	lines := make([]string, 0, rows)
	n := int(seed)
	for row := 0; row < rows; row++ {
		line := ""
		for len(line) < cols {
			for !isPrime(n) {
				n++
			}
			line += strconv.Itoa(n) + " "
			n++
		}
		lines = append(lines, line[:cols])
	}
	return lines
}
