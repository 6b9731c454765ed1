// Package tsp provides the tour model shared by the Travelling Salesman
// Problem solvers in this module.
//
// It includes:
//
//   - Tour - an open permutation of city indices; the closing edge back to the
//     first city is implicit.
//
//   - Cost / Distances.Cost - the cycle-length evaluator (n edges including the
//     closing edge), with a validated public path and an unchecked hot path.
//
//   - NewRNG / DeriveRNG - explicit, seedable random streams. Nothing in this
//     module draws from the process-wide generator.
//
//   - HillClimber and TwoOpt - local-search refiners that build a tour from a
//     distance matrix alone. Both satisfy the refiner contract of package cuckoo.
//
// Distance matrices may be asymmetric: cost(i,j) need not equal cost(j,i).
// All functions return sentinel errors from types.go; nothing here logs or
// panics on user input.
package tsp
