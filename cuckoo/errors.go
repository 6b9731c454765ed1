package cuckoo

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cuckoo/tsp"
)

// Sentinels shared with package tsp, so callers can match on either name.
var (
	ErrInvalidMatrix    = tsp.ErrInvalidMatrix
	ErrInvalidTour      = tsp.ErrInvalidTour
	ErrInvalidParameter = tsp.ErrInvalidParameter
)

var (
	// ErrNoConfig is returned by Table.Lookup for a problem size without an
	// entry. errors.Is(err, ErrInvalidParameter) also holds.
	ErrNoConfig = fmt.Errorf("%w: no configuration for problem size", ErrInvalidParameter)

	// ErrRefine wraps failures reported by, or detected in the output of, a
	// Refiner during the intensification phase.
	ErrRefine = errors.New("cuckoo: refinement failed")
)
