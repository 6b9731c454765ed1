package tsp

import "errors"

var (
	// ErrInvalidMatrix is returned for a nil, non-square, too small (n<2),
	// negative or non-finite distance matrix.
	ErrInvalidMatrix = errors.New("tsp: invalid distance matrix")

	// ErrInvalidTour is returned when a tour is not a permutation of [0,n)
	// for the matrix order n.
	ErrInvalidTour = errors.New("tsp: invalid tour")

	// ErrInvalidParameter is returned for out-of-domain solver parameters.
	ErrInvalidParameter = errors.New("tsp: invalid parameter")
)

// DefaultEps is the improvement tolerance used by the local-search refiners:
// a move is accepted only when it lowers the cost by more than DefaultEps.
const DefaultEps = 1e-12

// Tour is an ordered sequence of n distinct city indices in [0,n).
// The route visits Tour[0], Tour[1], …, Tour[n-1] and returns to Tour[0];
// the closing city is not repeated.
type Tour []int

// Clone returns an independent copy of t.
func (t Tour) Clone() Tour {
	if t == nil {
		return nil
	}
	out := make(Tour, len(t))
	copy(out, t)

	return out
}
