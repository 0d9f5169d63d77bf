// Package rules mines association rules and rule violations ("flaws") from
// an fca lattice, by walking the cover-edges fca.FoldConceptsTopDown emits
// under a minimum-support prune.
//
// Rule{RHS, Support} records that every object in Support carries every
// attribute in RHS. Violation{Rule, Flaw} records a cover-edge where a
// stronger rule (Rule) nearly generalizes to a weaker one (Flaw): every
// object satisfying Flaw.RHS also satisfies Rule.RHS except the objects in
// Flaw.Support \ Rule.Support, the exceptions.
//
// Rules, Flaws, and IndepRules are all driven by the same top-down fold with
// predicate |O| ≥ MinSupport; they differ only in which visited concepts (or
// cover-edges) they collect and under what secondary condition. Config is
// built with the functional-options pattern (Option, NewConfig).
package rules
