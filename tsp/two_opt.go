// Package tsp - 2-opt local search refiner.
//
// TwoOpt performs deterministic first-improvement 2-opt on an open tour: a move
// reverses the segment t[i..k], replacing the edges (a→b),(c→e) with (a→c),(b→e)
// where a=t[i−1], b=t[i], c=t[k], e=t[k+1] (indices mod n).
//
// Asymmetric matrices:
//   - Reversal also flips the direction of every edge inside the segment, so the
//     delta carries the term Σ_{p=i}^{k−1} [w(t[p+1],t[p]) − w(t[p],t[p+1])].
//   - For fixed i that term is accumulated as k grows, keeping each candidate
//     check O(1). On a symmetric matrix the term is identically zero and the
//     delta reduces to the classic w(a,c)+w(b,e)−w(a,b)−w(c,e).
//
// Design:
//   - Deterministic scanning order; the only randomness is the start tour
//     drawn by Refine from a stream seeded with Seed.
//   - Reversing the whole tour (i==0, k==n−1) is skipped: it is not a move.
//   - The context is checked once per pass.
//
// Complexity:
//   - One pass: O(n²) candidate checks; O(n) per accepted move.
package tsp

import (
	"context"

	"github.com/katalvlaran/cuckoo/matrix"
)

// TwoOpt is a first-improvement 2-opt refiner.
type TwoOpt struct {
	// Seed drives the random start tour used by Refine.
	Seed int64

	// MaxPasses bounds the number of improving passes (0 = until no move helps).
	MaxPasses int

	// Eps is the improvement tolerance; a move is taken only if Δ < −Eps.
	Eps float64
}

// NewTwoOpt returns a 2-opt refiner with DefaultEps.
func NewTwoOpt(seed int64) *TwoOpt {
	return &TwoOpt{Seed: seed, Eps: DefaultEps}
}

// Refine validates dist, draws a random start tour and improves it to a 2-opt
// local optimum.
//
// Errors: ErrInvalidMatrix, ErrInvalidParameter, ctx.Err().
func (o *TwoOpt) Refine(ctx context.Context, dist matrix.Matrix) (Tour, float64, error) {
	if err := o.validate(); err != nil {
		return nil, 0, err
	}
	d, err := NewDistances(dist)
	if err != nil {
		return nil, 0, err
	}
	start, err := RandomTour(d.N(), NewRNG(o.Seed))
	if err != nil {
		return nil, 0, err
	}

	return o.improve(ctx, d, start)
}

// Improve runs 2-opt from the given start tour on a prepared snapshot.
// start is not modified.
//
// Errors: ErrInvalidTour, ErrInvalidParameter, ctx.Err().
func (o *TwoOpt) Improve(ctx context.Context, d *Distances, start Tour) (Tour, float64, error) {
	if err := o.validate(); err != nil {
		return nil, 0, err
	}
	if err := ValidatePermutation(start, d.N()); err != nil {
		return nil, 0, err
	}

	return o.improve(ctx, d, start)
}

func (o *TwoOpt) validate() error {
	if o.Eps < 0 || o.MaxPasses < 0 {
		return ErrInvalidParameter
	}

	return nil
}

func (o *TwoOpt) improve(ctx context.Context, d *Distances, start Tour) (Tour, float64, error) {
	var (
		cur    = start.Clone()
		n      = d.N()
		passes int
	)
	if n < 4 {
		// Every 2-opt move on n ≤ 3 is either a no-op or a full reversal.
		return cur, d.Cost(cur), nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		if !o.pass(d, cur) {
			break
		}
		passes++
		if o.MaxPasses > 0 && passes >= o.MaxPasses {
			break
		}
	}

	return cur, d.Cost(cur), nil
}

// pass applies the first improving reversal found and reports whether one was.
func (o *TwoOpt) pass(d *Distances, t Tour) bool {
	var (
		n          = len(t)
		i, k       int
		a, b, c, e int
		inner      float64
		delta      float64
	)
	for i = 0; i < n-1; i++ {
		a = t[(i-1+n)%n]
		b = t[i]
		inner = 0
		for k = i + 1; k < n; k++ {
			inner += d.At(t[k], t[k-1]) - d.At(t[k-1], t[k])
			if i == 0 && k == n-1 {
				continue
			}
			c = t[k]
			e = t[(k+1)%n]
			delta = d.At(a, c) + d.At(b, e) - d.At(a, b) - d.At(c, e) + inner
			if delta < -o.Eps {
				reverseSegmentInPlace(t, i, k)

				return true
			}
		}
	}

	return false
}
