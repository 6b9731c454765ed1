// Package tsp - RNG utilities shared by stochastic solvers.
//
// This file centralizes deterministic random generation for every stochastic
// component (permutation draws, Lévy samples, swap indices, abandonment).
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Isolation: independent runs get independent streams via DeriveRNG.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use DeriveRNG to create independent streams for parallel runs or workers.
package tsp

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func NewRNG(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// A SplitMix64-style finalizer removes correlations between neighbouring
// stream ids, so runs 0,1,2,… of a batch do not share structure.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64 finalizer; see Vigna 2014 for the constants.
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRNG creates an independent deterministic RNG stream based on a base RNG
// and a stream identifier. If base==nil, defaultRNGSeed is used as the parent.
// Otherwise, base.Int63() is consumed once so that reusing a stream id on the
// same base still yields distinct children.
//
// Usage:
//   - Call during setup (not in hot loops) to create per-run RNGs.
//
// Complexity: O(1).
func DeriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultRNGSeed
	} else {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a using rng.
// If rng==nil, a deterministic default stream is used (seed==0 policy).
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	var n int
	n = len(a)
	if n <= 1 {
		return
	}

	var (
		r *rand.Rand
		i int
		j int
	)
	r = rng
	if r == nil {
		r = NewRNG(0)
	}

	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// RandomTour returns a uniformly random permutation of 0..n-1 drawn from rng.
// If rng==nil, the default deterministic stream is used.
//
// Errors: ErrInvalidParameter for n<1.
// Complexity: O(n) time, O(n) space.
func RandomTour(n int, rng *rand.Rand) (Tour, error) {
	if n < 1 {
		return nil, ErrInvalidParameter
	}
	p := make(Tour, n)
	RandomizeTour(p, rng)

	return p, nil
}

// RandomizeTour overwrites t with a uniformly random permutation of
// 0..len(t)-1, consuming exactly the draws RandomTour(len(t), rng) would.
// If rng==nil, the default deterministic stream is used.
//
// Complexity: O(n) time, no allocation.
func RandomizeTour(t Tour, rng *rand.Rand) {
	var i int
	for i = range t {
		t[i] = i
	}
	shuffleIntsInPlace(t, rng)
}
