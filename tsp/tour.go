// Package tsp - tour utilities.
//
// This file contains compact helpers that operate purely on tour structure
// (index sequences), without depending on distance matrices:
//   - RotateToStart: cyclic shift so the tour starts at a given city.
//   - Reversed: the same cycle traversed in the opposite direction.
//   - SwapNeighbors: the full 2-swap neighbourhood of a tour.
//   - EqualModuloRotation: equality under rotation (same direction).
//   - reverseSegmentInPlace: in-place segment reversal (2-opt core).
//
// Design:
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - Inputs are never mutated unless the name says InPlace.
package tsp

import "fmt"

// RotateToStart returns a fresh copy of t shifted so that out[0] == start.
// The cycle (and therefore its cost) is unchanged.
//
// Errors: ErrInvalidTour if start does not occur in t.
// Complexity: O(n) time, O(n) space.
func RotateToStart(t Tour, start int) (Tour, error) {
	var (
		n     = len(t)
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if t[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, fmt.Errorf("%w: city %d not in tour", ErrInvalidTour, start)
	}

	out := make(Tour, n)
	for i = 0; i < n; i++ {
		out[i] = t[(pivot+i)%n]
	}

	return out, nil
}

// Reversed returns the cycle traversed backwards, keeping t[0] first:
// [a b c d] → [a d c b]. On a symmetric matrix the cost is unchanged.
//
// Complexity: O(n).
func Reversed(t Tour) Tour {
	n := len(t)
	out := make(Tour, n)
	if n == 0 {
		return out
	}
	out[0] = t[0]

	var i int
	for i = 1; i < n; i++ {
		out[i] = t[n-i]
	}

	return out
}

// SwapNeighbors returns every tour obtained from t by exchanging the cities at
// two distinct positions i<j, in (i,j) lexicographic order. There are
// n(n-1)/2 neighbours.
//
// Complexity: O(n³) time and space; prefer swapDelta in hot loops.
func SwapNeighbors(t Tour) []Tour {
	var (
		n    = len(t)
		out  = make([]Tour, 0, n*(n-1)/2)
		i, j int
	)
	for i = 0; i < n-1; i++ {
		for j = i + 1; j < n; j++ {
			nb := t.Clone()
			nb[i], nb[j] = nb[j], nb[i]
			out = append(out, nb)
		}
	}

	return out
}

// EqualModuloRotation reports whether a and b describe the same cycle in the
// same direction, possibly starting at different cities.
//
// Complexity: O(n).
func EqualModuloRotation(a, b Tour) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	rb, err := RotateToStart(b, a[0])
	if err != nil {
		return false
	}

	var i int
	for i = range a {
		if a[i] != rb[i] {
			return false
		}
	}

	return true
}

// reverseSegmentInPlace reverses the inclusive segment t[i..k].
//
// Contracts:
//   - 0 ≤ i ≤ k < len(t).
//
// Complexity: O(k-i) time, O(1) space.
func reverseSegmentInPlace(t Tour, i, k int) {
	for i < k {
		t[i], t[k] = t[k], t[i]
		i++
		k--
	}
}

// swapDelta returns cost(t with positions i,j exchanged) − cost(t) in O(1).
// Only the (at most four) cycle edges incident to positions i and j change;
// edge e is (t[e], t[e+1 mod n]).
//
// Contracts:
//   - 0 ≤ i < j < n, n ≥ 2, t is a permutation.
func swapDelta(d *Distances, t Tour, i, j int) float64 {
	var (
		n     = len(t)
		edges [4]int
		cnt   int
		k     int
	)
	// Collect the distinct affected edge indices.
	add := func(e int) {
		e = (e + n) % n
		for k = 0; k < cnt; k++ {
			if edges[k] == e {
				return
			}
		}
		edges[cnt] = e
		cnt++
	}
	add(i - 1)
	add(i)
	add(j - 1)
	add(j)

	// pos maps a position after the swap to the city stored there.
	pos := func(p int) int {
		switch p {
		case i:
			return t[j]
		case j:
			return t[i]
		default:
			return t[p]
		}
	}

	var before, after float64
	for k = 0; k < cnt; k++ {
		e := edges[k]
		f := (e + 1) % n
		before += d.At(t[e], t[f])
		after += d.At(pos(e), pos(f))
	}

	return after - before
}
