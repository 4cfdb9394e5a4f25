package poster

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

const (
	collatzMaxSteps  = 20
	collatzShowSteps = 8
)

// collatzChain follows n under the 3n+1 rule until it reaches 1 or maxSteps
// entries have been collected.
func collatzChain(n, maxSteps int) []int {
	chain := []int{n}
	for n != 1 && len(chain) < maxSteps {
		if n%2 == 0 {
			n = n / 2
		} else {
			n = 3*n + 1
		}
		chain = append(chain, n)
	}
	return chain
}

func collatzExample(seed int64) string {
	r := rand.New(rand.NewSource(seed))
	n := r.Intn(9998) + 2
	chain := collatzChain(n, collatzMaxSteps)

	shown := chain
	if len(shown) > collatzShowSteps {
		shown = shown[:collatzShowSteps]
	}
	parts := make([]string, len(shown))
	for i, x := range shown {
		parts[i] = strconv.Itoa(x)
	}
	short := strings.Join(parts, "->")
	if len(chain) > collatzShowSteps {
		short += "..."
	}
	return fmt.Sprintf("%d: %s ", n, short)
}

// buildCollatzGrid fills rows with truncated Collatz trajectories.
func buildCollatzGrid(cols, rows int, seed int64) []string {
	return fillRows(cols, rows, seed, collatzExample)
}
