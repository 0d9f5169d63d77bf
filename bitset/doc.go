// Package bitset implements Bitset[T], a typed applicative set over a fixed,
// enumerated domain, layered on bitvec.BitVec.
//
// Make fixes the domain (the distinct elements of T, in the order given) and
// mints a fresh origin tag — an opaque identity value every bitset derived
// from that domain shares. Two bitsets are compatible iff their origin tags
// are identical by pointer identity, not by value: two independently
// constructed bitsets over an equal element list are never compatible. This
// trades compositionality for an O(1) compatibility check, and is why every
// binary operation in this package asserts compatibility first.
//
// Bitsets are applicative: every "mutating" operation (Add, Remove, Union,
// Intersect, Minus, Difference) returns a fresh Bitset that shares the
// forward/reverse maps and origin tag with its receiver but owns an
// independent bit payload. The shared {forward map, reverse map, origin}
// triple is never mutated after Make returns.
package bitset
