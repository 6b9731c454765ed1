package cuckoo

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/cuckoo/tsp"
)

// Mutate returns a copy of tour perturbed by SwapCount(step) exchanges. Both
// positions of every exchange are drawn uniformly from [0,n) with
// replacement, so an exchange may be a no-op or undo an earlier one.
// tour is never modified; rng must be non-nil.
//
// Complexity: O(n + SwapCount(step)).
func Mutate(rng *rand.Rand, tour tsp.Tour, step float64) tsp.Tour {
	out := tour.Clone()
	n := len(out)
	if n == 0 {
		return out
	}

	var (
		k    = SwapCount(step)
		i, j int
		s    int
	)
	for s = 0; s < k; s++ {
		i = rng.Intn(n)
		j = rng.Intn(n)
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// SwapCount converts a step into an exchange count: max(1, ⌊|step|⌋).
// NaN, ±Inf and magnitudes an int cannot hold map to math.MaxInt.
func SwapCount(step float64) int {
	a := math.Abs(step)
	if math.IsNaN(a) || a >= float64(math.MaxInt) {
		return math.MaxInt
	}
	if k := int(a); k > 1 {
		return k
	}

	return 1
}
