package rules

import (
	"github.com/katalvlaran/lvlath-fca/bitset"
	"github.com/katalvlaran/lvlath-fca/fca"
	"github.com/katalvlaran/lvlath-fca/fcacontext"
)

// supportPrune is the λ(O,A).|O| ≥ MinSupport predicate every miner entry
// point drives fca.FoldConceptsTopDown with.
func supportPrune[X comparable, Y comparable](minSupport int) func(fca.Concept[X, Y]) bool {
	return func(c fca.Concept[X, Y]) bool { return c.Objects.Count() >= minSupport }
}

// gapOf returns |sub.Attributes \ sup.Attributes|. sub is always a lower
// neighbor of sup in every call site here, so sup.Attributes ⊆ sub.Attributes
// and this error can only fire on a programmer error (mismatched Contexts).
func gapOf[X comparable, Y comparable](sub, sup fca.Concept[X, Y]) int {
	g, err := bitset.Minus(sub.Attributes, sup.Attributes)
	if err != nil {
		panic(err)
	}

	return g.Count()
}

// Rules emits every visited concept (O, A) with |O| ≥ cfg.MinSupport and
// |A| ≥ cfg.MinRHS as a Rule{RHS: A, Support: O}.
func Rules[X comparable, Y comparable](ctx *fcacontext.Context[X, Y], cfg Config) ([]Rule[X, Y], error) {
	p := supportPrune[X, Y](cfg.MinSupport)
	return fca.FoldConceptsTopDown(ctx, p, func(c fca.Concept[X, Y], _ []fca.Concept[X, Y], acc []Rule[X, Y]) []Rule[X, Y] {
		if c.Objects.Count() >= cfg.MinSupport && c.Attributes.Count() >= cfg.MinRHS {
			acc = append(acc, Rule[X, Y]{RHS: c.Attributes, Support: c.Objects})
		}

		return acc
	}, nil)
}

// Flaws walks every cover-edge (sub, sup) visited during the top-down fold
// (sub a lower neighbor of sup) and emits a Violation{Rule: sub, Flaw: sup}
// whenever s=|O_sub| ≥ cfg.MinSupport, confidence=s/|O_sup| ≥ cfg.MinConfidence,
// and the attribute gap |A_sub|-|A_sup| ≤ cfg.MaxDiff.
func Flaws[X comparable, Y comparable](ctx *fcacontext.Context[X, Y], cfg Config) ([]Violation[X, Y], error) {
	p := supportPrune[X, Y](cfg.MinSupport)
	return fca.FoldConceptsTopDown(ctx, p, func(sup fca.Concept[X, Y], subs []fca.Concept[X, Y], acc []Violation[X, Y]) []Violation[X, Y] {
		supCount := sup.Objects.Count()
		if supCount == 0 {
			return acc
		}
		for _, sub := range subs {
			s := sub.Objects.Count()
			confidence := float64(s) / float64(supCount)
			gap := gapOf(sub, sup)
			if s >= cfg.MinSupport && confidence >= cfg.MinConfidence && gap <= cfg.MaxDiff {
				acc = append(acc, Violation[X, Y]{
					Rule: Rule[X, Y]{RHS: sub.Attributes, Support: sub.Objects},
					Flaw: Rule[X, Y]{RHS: sup.Attributes, Support: sup.Objects},
				})
			}
		}

		return acc
	}, nil)
}

// IndepRules walks the same cover-edges as Flaws but inverts the confidence
// test: it emits Rule{RHS: A_sub, Support: O_sub} whenever s=|O_sub| ≥
// cfg.MinSupport, confidence=s/|O_sup| ≤ cfg.MaxConfidence, and
// |A_sup| ≥ cfg.MinWidth — low-confidence transitions mark independent
// feature groups rather than near-misses of a stronger rule.
func IndepRules[X comparable, Y comparable](ctx *fcacontext.Context[X, Y], cfg Config) ([]Rule[X, Y], error) {
	p := supportPrune[X, Y](cfg.MinSupport)
	return fca.FoldConceptsTopDown(ctx, p, func(sup fca.Concept[X, Y], subs []fca.Concept[X, Y], acc []Rule[X, Y]) []Rule[X, Y] {
		supCount := sup.Objects.Count()
		if supCount == 0 {
			return acc
		}
		for _, sub := range subs {
			s := sub.Objects.Count()
			confidence := float64(s) / float64(supCount)
			if s >= cfg.MinSupport && confidence <= cfg.MaxConfidence && sup.Attributes.Count() >= cfg.MinWidth {
				acc = append(acc, Rule[X, Y]{RHS: sub.Attributes, Support: sub.Objects})
			}
		}

		return acc
	}, nil)
}
