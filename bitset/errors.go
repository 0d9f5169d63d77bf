package bitset

import "errors"

// Sentinel errors for bitset operations. Callers branch with errors.Is.
var (
	// ErrEmptyDomain is returned by Make when given zero elements.
	ErrEmptyDomain = errors.New("bitset: domain must be non-empty")

	// ErrDomainError is returned by Index/Add/Remove/Member when the element
	// (or index) is outside the fixed domain.
	ErrDomainError = errors.New("bitset: element not in domain")

	// ErrIncompatible is returned by any binary operation (Union, Intersect,
	// Minus, Difference, Subset, Subseteq, Equal, Compare) when the operands
	// were minted from different origins.
	ErrIncompatible = errors.New("bitset: incompatible bitsets (different origin)")
)
