package fca

import (
	"github.com/katalvlaran/lvlath-fca/fcacontext"
	"github.com/katalvlaran/lvlath-fca/internal/ordset"
)

// conceptCmp adapts Compare to the comparator shape ordset.Set requires. A
// non-nil error here means two concepts from different Contexts were mixed
// into one traversal — a programmer error, not a caller-triggered one, so it
// panics rather than threading an error through every ordset call.
func conceptCmp[X comparable, Y comparable](a, b Concept[X, Y]) int {
	c, err := Compare(a, b)
	if err != nil {
		panic(err)
	}

	return c
}

// Concepts returns every concept of ctx. The worklist is seeded with {Top};
// at each step the minimum unvisited concept is popped, marked visited, and
// its lower neighbors are pushed. Re-insertion of an already-visited concept
// is a no-op detected on pop, so each concept is visited exactly once.
func Concepts[X comparable, Y comparable](ctx *fcacontext.Context[X, Y]) ([]Concept[X, Y], error) {
	top, err := Top(ctx)
	if err != nil {
		return nil, err
	}
	worklist := ordset.New(conceptCmp[X, Y])
	visited := ordset.New(conceptCmp[X, Y])
	worklist.Insert(top)

	var result []Concept[X, Y]
	for worklist.Len() > 0 {
		c, _ := worklist.PopMin()
		if visited.Contains(c) {
			continue
		}
		visited.Insert(c)
		result = append(result, c)

		lowers, err := Lower(ctx, c)
		if err != nil {
			return nil, err
		}
		for _, lo := range lowers {
			if !visited.Contains(lo) {
				worklist.Insert(lo)
			}
		}
	}

	return result, nil
}

// Size returns the number of concepts in ctx's lattice.
func Size[X comparable, Y comparable](ctx *fcacontext.Context[X, Y]) (int, error) {
	cs, err := Concepts(ctx)
	if err != nil {
		return 0, err
	}

	return len(cs), nil
}

// FoldConcepts performs a bottom-up fold: the worklist is seeded with
// {Bottom}; at each step the minimum unvisited concept c is popped, its
// upper covers are computed, f(c, uppers, acc) is invoked, and the uppers
// are pushed. Over the whole fold, the (c, neighbor) pairs visited enumerate
// every cover-edge of the lattice exactly once — the contract the rules
// package depends on.
func FoldConcepts[X comparable, Y comparable, A any](ctx *fcacontext.Context[X, Y], f func(c Concept[X, Y], uppers []Concept[X, Y], acc A) A, acc A) (A, error) {
	bottom, err := Bottom(ctx)
	if err != nil {
		return acc, err
	}
	worklist := ordset.New(conceptCmp[X, Y])
	visited := ordset.New(conceptCmp[X, Y])
	worklist.Insert(bottom)

	for worklist.Len() > 0 {
		c, _ := worklist.PopMin()
		if visited.Contains(c) {
			continue
		}
		visited.Insert(c)

		uppers, err := Upper(ctx, c)
		if err != nil {
			return acc, err
		}
		acc = f(c, uppers, acc)
		for _, up := range uppers {
			if !visited.Contains(up) {
				worklist.Insert(up)
			}
		}
	}

	return acc, nil
}

// FoldConceptsPrime is the top-down dual of FoldConcepts: the worklist is
// seeded with {Top}; at each step the maximum unvisited concept c is popped,
// its lower covers are computed, f(c, lowers, acc) is invoked, and the
// lowers are pushed.
func FoldConceptsPrime[X comparable, Y comparable, A any](ctx *fcacontext.Context[X, Y], f func(c Concept[X, Y], lowers []Concept[X, Y], acc A) A, acc A) (A, error) {
	top, err := Top(ctx)
	if err != nil {
		return acc, err
	}
	worklist := ordset.New(conceptCmp[X, Y])
	visited := ordset.New(conceptCmp[X, Y])
	worklist.Insert(top)

	for worklist.Len() > 0 {
		c, _ := worklist.PopMax()
		if visited.Contains(c) {
			continue
		}
		visited.Insert(c)

		lowers, err := Lower(ctx, c)
		if err != nil {
			return acc, err
		}
		acc = f(c, lowers, acc)
		for _, lo := range lowers {
			if !visited.Contains(lo) {
				worklist.Insert(lo)
			}
		}
	}

	return acc, nil
}

// FoldConceptsTopDown is FoldConceptsPrime with predicate pruning: f still
// receives every lower neighbor of c, but only the ones for which p holds
// are pushed onto the worklist as further expansion frontiers. p is tested
// on the lower concept itself, so a concept that fails p is never pushed by
// any path and yields no f call of its own; only Top, the seed, is visited
// whether or not it passes p. This is the rules package's primary entry
// point, pruning on a minimum-support threshold.
func FoldConceptsTopDown[X comparable, Y comparable, A any](ctx *fcacontext.Context[X, Y], p func(Concept[X, Y]) bool, f func(c Concept[X, Y], lowers []Concept[X, Y], acc A) A, acc A) (A, error) {
	top, err := Top(ctx)
	if err != nil {
		return acc, err
	}
	worklist := ordset.New(conceptCmp[X, Y])
	visited := ordset.New(conceptCmp[X, Y])
	worklist.Insert(top)

	for worklist.Len() > 0 {
		c, _ := worklist.PopMax()
		if visited.Contains(c) {
			continue
		}
		visited.Insert(c)

		lowers, err := Lower(ctx, c)
		if err != nil {
			return acc, err
		}
		acc = f(c, lowers, acc)
		for _, lo := range lowers {
			if !visited.Contains(lo) && p(lo) {
				worklist.Insert(lo)
			}
		}
	}

	return acc, nil
}
