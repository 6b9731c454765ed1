// Package tsp - hill-climbing refiner over the 2-swap neighbourhood.
//
// HillClimber starts from a seeded random permutation and repeatedly moves to
// the best tour obtained by exchanging two positions, until no exchange lowers
// the cost by more than Eps (a local optimum) or MaxIters moves were applied.
//
// Design:
//   - The whole neighbourhood (n(n-1)/2 exchanges) is scanned each step;
//     FirstImprovement switches to taking the first improving exchange.
//   - Exchange deltas are O(1) (see swapDelta), so one step is O(n²).
//   - Deterministic: the only randomness is the start tour, drawn from a
//     stream seeded with Seed (seed==0 policy as in NewRNG).
//   - The context is checked once per step; a cancelled context aborts with
//     ctx.Err() and no tour.
package tsp

import (
	"context"

	"github.com/katalvlaran/cuckoo/matrix"
)

// HillClimber is a steepest-descent local search over pairwise exchanges.
// The zero value is usable: one start, unlimited moves, strict improvement.
type HillClimber struct {
	// Seed drives the random start tours.
	Seed int64

	// Restarts is the number of independent random starts (values < 1 mean 1).
	// The best local optimum across starts is returned.
	Restarts int

	// MaxIters bounds the number of accepted moves per start (0 = unlimited).
	MaxIters int

	// Eps is the improvement tolerance; a move is taken only if Δ < −Eps.
	Eps float64

	// FirstImprovement takes the first improving exchange instead of the best.
	FirstImprovement bool
}

// NewHillClimber returns a best-improvement climber with DefaultEps.
func NewHillClimber(seed int64) *HillClimber {
	return &HillClimber{Seed: seed, Restarts: 1, Eps: DefaultEps}
}

// Refine validates dist, climbs from Restarts random starts and returns the
// best tour found with its cost.
//
// Errors: ErrInvalidMatrix, ErrInvalidParameter (negative Eps or MaxIters),
// ctx.Err() on cancellation.
func (h *HillClimber) Refine(ctx context.Context, dist matrix.Matrix) (Tour, float64, error) {
	if err := h.validate(); err != nil {
		return nil, 0, err
	}
	d, err := NewDistances(dist)
	if err != nil {
		return nil, 0, err
	}

	var (
		rng      = NewRNG(h.Seed)
		restarts = h.Restarts
		best     Tour
		bestCost float64
		r        int
	)
	if restarts < 1 {
		restarts = 1
	}
	for r = 0; r < restarts; r++ {
		start, err := RandomTour(d.N(), rng)
		if err != nil {
			return nil, 0, err
		}
		t, c, err := h.climb(ctx, d, start)
		if err != nil {
			return nil, 0, err
		}
		if best == nil || c < bestCost {
			best, bestCost = t, c
		}
	}

	return best, bestCost, nil
}

// Improve climbs from the given start tour on a prepared snapshot.
// start is not modified.
//
// Errors: ErrInvalidTour, ErrInvalidParameter, ctx.Err().
func (h *HillClimber) Improve(ctx context.Context, d *Distances, start Tour) (Tour, float64, error) {
	if err := h.validate(); err != nil {
		return nil, 0, err
	}
	if err := ValidatePermutation(start, d.N()); err != nil {
		return nil, 0, err
	}

	return h.climb(ctx, d, start)
}

func (h *HillClimber) validate() error {
	if h.Eps < 0 || h.MaxIters < 0 {
		return ErrInvalidParameter
	}

	return nil
}

// climb runs the descent loop from start on a private copy.
func (h *HillClimber) climb(ctx context.Context, d *Distances, start Tour) (Tour, float64, error) {
	var (
		cur      = start.Clone()
		cost     = d.Cost(cur)
		n        = d.N()
		accepted int
	)

	for {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		var (
			bi, bj    = -1, -1
			bestDelta = -h.Eps
			i, j      int
			delta     float64
		)
	scan:
		for i = 0; i < n-1; i++ {
			for j = i + 1; j < n; j++ {
				delta = swapDelta(d, cur, i, j)
				if delta < bestDelta {
					bi, bj, bestDelta = i, j, delta
					if h.FirstImprovement {
						break scan
					}
				}
			}
		}
		if bi < 0 {
			break // local optimum
		}

		cur[bi], cur[bj] = cur[bj], cur[bi]
		accepted++
		// Recompute instead of accumulating deltas so the reported cost is
		// exactly what Cost would return for the final tour.
		cost = d.Cost(cur)

		if h.MaxIters > 0 && accepted >= h.MaxIters {
			break
		}
	}

	return cur, cost, nil
}
