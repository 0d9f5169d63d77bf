package rules

import "github.com/katalvlaran/lvlath-fca/bitset"

// Rule records "every object in Support carries every attribute in RHS".
type Rule[X comparable, Y comparable] struct {
	RHS     *bitset.Bitset[Y]
	Support *bitset.Bitset[X]
}

// Violation pairs a rule with its flaw: a weaker rule (Flaw) the stronger
// Rule nearly subsumes. Flaw.Support ⊋ Rule.Support and Flaw.RHS ⊊ Rule.RHS;
// the objects in Flaw.Support \ Rule.Support are the exceptions.
type Violation[X comparable, Y comparable] struct {
	Rule Rule[X, Y]
	Flaw Rule[X, Y]
}

// Exceptions returns the objects that satisfy v.Flaw.RHS but fail to extend
// it to v.Rule.RHS: v.Flaw.Support \ v.Rule.Support.
func (v Violation[X, Y]) Exceptions() (*bitset.Bitset[X], error) {
	return bitset.Minus(v.Flaw.Support, v.Rule.Support)
}

// Confidence returns |v.Rule.Support| / |v.Flaw.Support|.
func (v Violation[X, Y]) Confidence() float64 {
	sup := v.Flaw.Support.Count()
	if sup == 0 {
		return 0
	}

	return float64(v.Rule.Support.Count()) / float64(sup)
}

// Gap returns |v.Rule.RHS \ v.Flaw.RHS|, equivalently |v.Rule.RHS| - |v.Flaw.RHS|
// since v.Flaw.RHS ⊆ v.Rule.RHS.
func (v Violation[X, Y]) Gap() (int, error) {
	g, err := bitset.Minus(v.Rule.RHS, v.Flaw.RHS)
	if err != nil {
		return 0, err
	}

	return g.Count(), nil
}
