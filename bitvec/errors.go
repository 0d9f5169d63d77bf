package bitvec

import "errors"

// Sentinel errors for bitvec operations. Callers branch with errors.Is.
var (
	// ErrEmptyDomain is returned by Make(0): a BitVec must hold at least one bit.
	ErrEmptyDomain = errors.New("bitvec: size must be > 0")

	// ErrIndexOutOfRange is returned by Get/Put when the index is outside [0, Size()).
	ErrIndexOutOfRange = errors.New("bitvec: index out of range")

	// ErrSizeMismatch is returned by any binary op (Union, Inter, Minus, Diff,
	// Compare, Eq, Le, Lt) when the two operands have different sizes.
	ErrSizeMismatch = errors.New("bitvec: size mismatch")
)
