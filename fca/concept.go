package fca

import (
	"github.com/katalvlaran/lvlath-fca/bitset"
	"github.com/katalvlaran/lvlath-fca/fcacontext"
)

// Concept is a fixed point (Objects, Attributes) of the closure operator: a
// maximal rectangle of the context's cross-table.
type Concept[X comparable, Y comparable] struct {
	Objects    *bitset.Bitset[X]
	Attributes *bitset.Bitset[Y]
}

// Compare orders two concepts by their Objects component only: the
// Attributes component is uniquely determined by Objects under a fixed
// Context, so ordering on Objects alone is a total order on concepts.
func Compare[X comparable, Y comparable](a, b Concept[X, Y]) (int, error) {
	return bitset.Compare(a.Objects, b.Objects)
}

// Closure computes closure(R, O) = let A = Common(O), O' = CommonPrime(A) in (O', A).
func Closure[X comparable, Y comparable](ctx *fcacontext.Context[X, Y], o *bitset.Bitset[X]) (Concept[X, Y], error) {
	a, err := ctx.Common(o)
	if err != nil {
		return Concept[X, Y]{}, err
	}
	oPrime, err := ctx.CommonPrime(a)
	if err != nil {
		return Concept[X, Y]{}, err
	}

	return Concept[X, Y]{Objects: oPrime, Attributes: a}, nil
}

// ClosurePrime computes closure'(R, A) = let O = CommonPrime(A), A' = Common(O) in (O, A').
func ClosurePrime[X comparable, Y comparable](ctx *fcacontext.Context[X, Y], a *bitset.Bitset[Y]) (Concept[X, Y], error) {
	o, err := ctx.CommonPrime(a)
	if err != nil {
		return Concept[X, Y]{}, err
	}
	aPrime, err := ctx.Common(o)
	if err != nil {
		return Concept[X, Y]{}, err
	}

	return Concept[X, Y]{Objects: o, Attributes: aPrime}, nil
}

// Top returns the top concept: closure'(R, ∅_Y) — the largest object set.
func Top[X comparable, Y comparable](ctx *fcacontext.Context[X, Y]) (Concept[X, Y], error) {
	return ClosurePrime(ctx, ctx.EmptyAttributes())
}

// Bottom returns the bottom concept: closure(R, ∅_X) — the largest attribute set.
func Bottom[X comparable, Y comparable](ctx *fcacontext.Context[X, Y]) (Concept[X, Y], error) {
	return Closure(ctx, ctx.EmptyObjects())
}

// Valid re-applies Common/CommonPrime to confirm c satisfies the concept
// invariant: a closure result is valid iff re-deriving it from its own
// extent and intent reproduces both sides unchanged. It returns
// ErrInvalidConcept when they don't.
func Valid[X comparable, Y comparable](ctx *fcacontext.Context[X, Y], c Concept[X, Y]) error {
	a, err := ctx.Common(c.Objects)
	if err != nil {
		return err
	}
	if eq, err := bitset.Equal(a, c.Attributes); err != nil {
		return err
	} else if !eq {
		return ErrInvalidConcept
	}
	o, err := ctx.CommonPrime(c.Attributes)
	if err != nil {
		return err
	}
	if eq, err := bitset.Equal(o, c.Objects); err != nil {
		return err
	} else if !eq {
		return ErrInvalidConcept
	}

	return nil
}
