// Package fcacontext implements Context, a binary relation R ⊆ X × Y between
// a domain of objects and a domain of attributes, exposing the two Galois
// operators Common and CommonPrime that the fca engine closes over.
//
// A Context holds, per object, the bitset of related attributes (fwd), and,
// per attribute, the bitset of related objects (rev), kept symmetric: y is in
// fwd[x] iff x is in rev[y]. Like bitset, Context is applicative: Relate and
// Unrelate return a new Context sharing the domain tags, with only the
// touched adjacency cells replaced.
//
// Context is generic over the object and attribute element types; callers
// supply a string-conversion hook per domain at construction, used when the
// rules package renders textual reports.
package fcacontext
