package fca

import "errors"

// Sentinel errors for fca operations. Callers branch with errors.Is.
var (
	// ErrInvalidConcept is returned when a caller-supplied concept fails the
	// concept invariant re-check (Common(Objects) != Attributes or
	// CommonPrime(Attributes) != Objects).
	ErrInvalidConcept = errors.New("fca: concept invariant violated")
)
