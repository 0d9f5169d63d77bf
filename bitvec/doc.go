// Package bitvec implements BitVec, a fixed-capacity packed bit array with
// dense set algebra and a total order over its payload.
//
// A BitVec holds exactly n bits, indexed 0..n-1, backed by a []uint64 word
// array of width ceil(n/64). The unused high bits of the last word are an
// invariant: they are always zero. Every mutating operation re-establishes
// this invariant before returning; the tests check it through Members/Count.
//
// BitVec is the sole mutable primitive in this module: every higher layer
// (bitset, fcacontext, fca) is applicative at its API boundary and only
// clones-and-mutates a BitVec internally when no previously returned value
// can observe the mutation.
//
// Complexity: Union/Inter/Minus/Diff/Complement are O(n/64). Compare/Eq/Le/Lt
// are O(n/64). Fold/Members are O(n/64 + popcount).
package bitvec
