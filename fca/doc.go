// Package fca is the concept engine: closure over a Context's Galois
// operators, Lindig's Fast Concept Analysis algorithm for upper/lower
// neighbor enumeration, and deterministic whole-lattice traversals.
//
// A Concept is a pair (Objects, Attributes) satisfying the invariant
// Common(Objects) = Attributes and CommonPrime(Attributes) = Objects.
// Concepts compare by their Objects component only; Attributes is uniquely
// determined by Objects under a fixed Context.
//
// The traversal worklist is a set ordered by concept comparison (see
// internal/ordset), not a FIFO/LIFO queue: Concepts/FoldConcepts pull the
// minimum unvisited concept, FoldConceptsPrime pulls the maximum. Each
// concept is visited — and so yields exactly one callback — at most once per
// traversal.
package fca
