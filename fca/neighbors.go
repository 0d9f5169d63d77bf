package fca

import (
	"github.com/katalvlaran/lvlath-fca/bitset"
	"github.com/katalvlaran/lvlath-fca/fcacontext"
)

// FoldUpper enumerates c's immediate upper covers using Lindig's online
// minimality test, threading acc through f(cover, acc) in discovery order.
//
// For each candidate object i ∈ X \ O, in ascending index order, it closes
// O ∪ {i}. The delta = (O' \ O) \ {i} measures what else closure pulled in
// besides i itself. (O', A') is a genuine cover of (O, A) iff none of the
// earlier, still-viable candidates already pulls i into their own closure —
// tracked by shrinking `min` whenever a candidate turns out to be subsumed.
// Iteration order is the bitset domain's ascending index order, so cover
// emission order is deterministic for a fixed Context.
func FoldUpper[X comparable, Y comparable, A any](ctx *fcacontext.Context[X, Y], c Concept[X, Y], f func(cover Concept[X, Y], acc A) A, acc A) (A, error) {
	candidates, err := bitset.Minus(ctx.ObjectDomain(), c.Objects)
	if err != nil {
		return acc, err
	}
	min := candidates
	for _, i := range candidates.Members() {
		oNext, err := c.Objects.Add(i)
		if err != nil {
			return acc, err
		}
		cover, err := Closure(ctx, oNext)
		if err != nil {
			return acc, err
		}
		delta, err := bitset.Minus(cover.Objects, c.Objects)
		if err != nil {
			return acc, err
		}
		delta, err = delta.Remove(i)
		if err != nil {
			return acc, err
		}
		overlap, err := bitset.Intersect(min, delta)
		if err != nil {
			return acc, err
		}
		if overlap.IsEmpty() {
			acc = f(cover, acc)
		} else {
			min, err = min.Remove(i)
			if err != nil {
				return acc, err
			}
		}
	}

	return acc, nil
}

// Upper returns c's immediate upper covers in discovery order.
func Upper[X comparable, Y comparable](ctx *fcacontext.Context[X, Y], c Concept[X, Y]) ([]Concept[X, Y], error) {
	return FoldUpper(ctx, c, func(cover Concept[X, Y], acc []Concept[X, Y]) []Concept[X, Y] {
		return append(acc, cover)
	}, []Concept[X, Y]{})
}

// FoldLower is the exact dual of FoldUpper, iterating Y \ A to find c's
// immediate lower covers.
func FoldLower[X comparable, Y comparable, A any](ctx *fcacontext.Context[X, Y], c Concept[X, Y], f func(cover Concept[X, Y], acc A) A, acc A) (A, error) {
	candidates, err := bitset.Minus(ctx.AttributeDomain(), c.Attributes)
	if err != nil {
		return acc, err
	}
	min := candidates
	for _, j := range candidates.Members() {
		aNext, err := c.Attributes.Add(j)
		if err != nil {
			return acc, err
		}
		cover, err := ClosurePrime(ctx, aNext)
		if err != nil {
			return acc, err
		}
		delta, err := bitset.Minus(cover.Attributes, c.Attributes)
		if err != nil {
			return acc, err
		}
		delta, err = delta.Remove(j)
		if err != nil {
			return acc, err
		}
		overlap, err := bitset.Intersect(min, delta)
		if err != nil {
			return acc, err
		}
		if overlap.IsEmpty() {
			acc = f(cover, acc)
		} else {
			min, err = min.Remove(j)
			if err != nil {
				return acc, err
			}
		}
	}

	return acc, nil
}

// Lower returns c's immediate lower covers in discovery order.
func Lower[X comparable, Y comparable](ctx *fcacontext.Context[X, Y], c Concept[X, Y]) ([]Concept[X, Y], error) {
	return FoldLower(ctx, c, func(cover Concept[X, Y], acc []Concept[X, Y]) []Concept[X, Y] {
		return append(acc, cover)
	}, []Concept[X, Y]{})
}
