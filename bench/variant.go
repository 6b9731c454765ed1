package bench

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownVariant is returned by ParseVariants for an unsupported name.
var ErrUnknownVariant = errors.New("bench: unknown variant")

// Variant selects plain Cuckoo Search or the hybrid with a final refiner.
type Variant string

const (
	VariantPlain  Variant = "plain"
	VariantHybrid Variant = "hybrid"
)

// Label is the bracketed report label of the variant.
func (v Variant) Label() string {
	if v == VariantHybrid {
		return "Cuckoo+HC"
	}

	return "Cuckoo Search"
}

// Tag is the short algorithm name used inside the report header.
func (v Variant) Tag() string {
	if v == VariantHybrid {
		return "Cuckoo+HC"
	}

	return "Cuckoo"
}

// VariantFromLabel maps a report label back to its Variant.
func VariantFromLabel(label string) (Variant, bool) {
	switch label {
	case VariantPlain.Label():
		return VariantPlain, true
	case VariantHybrid.Label():
		return VariantHybrid, true
	default:
		return "", false
	}
}

// ParseVariants accepts "plain", "hybrid" or "both" (case-insensitive).
//
// Errors: ErrUnknownVariant.
func ParseVariants(s string) ([]Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain":
		return []Variant{VariantPlain}, nil
	case "hybrid":
		return []Variant{VariantHybrid}, nil
	case "both", "":
		return []Variant{VariantPlain, VariantHybrid}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}
