// Package cuckoo implements Cuckoo Search for the (asymmetric) Travelling
// Salesman Problem: a population of candidate tours ("nests") is perturbed
// by random exchanges whose count follows a heavy-tailed Lévy distribution,
// greedily improved, partially abandoned and re-seeded with the best tour.
//
// What it does:
//
//	Each generation, in order:
//	  1. every nest proposes a candidate: k = max(1, ⌊|Lévy·StepScale|⌋) random
//	     exchanges of two positions (indices drawn with replacement);
//	  2. a candidate replaces its nest only if strictly shorter; the global best
//	     follows every improvement;
//	  3. each nest is abandoned with probability AbandonProbability and
//	     replaced by a fresh uniform permutation;
//	  4. the longest nest (first on ties) is overwritten with the global best.
//
// After MaxIterations generations an optional Refiner (for example
// tsp.HillClimber) runs once; its tour is adopted only when strictly shorter.
//
// Lévy steps use Mantegna's algorithm:
//
//	σ = (Γ(1+β)·sin(πβ/2) / (Γ((1+β)/2)·β·2^((β−1)/2)))^(1/β)
//	step = u·σ / |v|^(1/β),  u, v ~ N(0,1)
//
// Usage:
//
//	cfg, err := cuckoo.DefaultTable().Lookup(50)
//	s, err := cuckoo.NewSearcher(cfg,
//	    cuckoo.WithSeed(42),
//	    cuckoo.WithRefiner(tsp.NewHillClimber(42)),
//	)
//	res, err := s.Search(ctx, dist)
//	fmt.Println(res.Fitness, res.Tour)
//
// Randomness is explicit: every draw (start permutations, Lévy samples,
// exchange indices, abandonment) comes from the Searcher's *rand.Rand.
// A Searcher is not safe for concurrent use; run independent searches with
// their own Searcher and an RNG from tsp.DeriveRNG.
//
// Errors are the tsp sentinels re-exported here (ErrInvalidMatrix,
// ErrInvalidParameter, …) plus ErrNoConfig and ErrRefine; match them with
// errors.Is. Nothing in this package logs.
//
// Performance:
//
//   - Time:   O(MaxIterations · Nests · (n + swaps))
//   - Memory: O(Nests · n) plus the O(n²) matrix snapshot
package cuckoo
