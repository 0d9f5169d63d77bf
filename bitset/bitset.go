package bitset

import "github.com/katalvlaran/lvlath-fca/bitvec"

// origin is the identity token shared by every Bitset minted from the same
// domain. Compatibility is pointer equality on this value, never a value
// comparison — see the design note in doc.go. The struct is not zero-size:
// Go may give every allocation of a zero-size type the same address.
type origin struct{ _ byte }

// domain holds the forward/reverse element maps and the origin tag shared,
// by reference, across every Bitset derived from one Make call. It is never
// mutated after Make returns.
type domain[T comparable] struct {
	fwd    map[T]int
	rev    []T
	origin *origin
}

// Bitset is a typed applicative set over a fixed domain of T, layered on a
// bitvec.BitVec. The zero value is not usable; construct with Make.
type Bitset[T comparable] struct {
	dom *domain[T]
	vec *bitvec.BitVec
}

// Make fixes the domain as the given elements (duplicates collapse to their
// first occurrence) and returns the empty Bitset over that domain.
//
// Complexity: O(len(elements)).
func Make[T comparable](elements []T) (*Bitset[T], error) {
	if len(elements) == 0 {
		return nil, ErrEmptyDomain
	}
	fwd := make(map[T]int, len(elements))
	rev := make([]T, 0, len(elements))
	for _, e := range elements {
		if _, ok := fwd[e]; ok {
			continue
		}
		fwd[e] = len(rev)
		rev = append(rev, e)
	}
	vec, err := bitvec.Make(len(rev))
	if err != nil {
		return nil, err
	}

	return &Bitset[T]{
		dom: &domain[T]{fwd: fwd, rev: rev, origin: &origin{}},
		vec: vec,
	}, nil
}

// empty returns a fresh, empty Bitset sharing b's domain.
func (b *Bitset[T]) empty() (*Bitset[T], error) {
	vec, err := bitvec.Make(b.vec.Size())
	if err != nil {
		return nil, err
	}

	return &Bitset[T]{dom: b.dom, vec: vec}, nil
}

// Full returns a fresh Bitset containing every element of b's domain.
func (b *Bitset[T]) Full() *Bitset[T] {
	vec := b.vec.Copy()
	vec.Fill()

	return &Bitset[T]{dom: b.dom, vec: vec}
}

// Size returns the size of the underlying domain.
func (b *Bitset[T]) Size() int { return b.vec.Size() }

// Index returns e's index in the domain, or ErrDomainError if e is not a
// domain member.
func (b *Bitset[T]) Index(e T) (int, error) {
	i, ok := b.dom.fwd[e]
	if !ok {
		return 0, ErrDomainError
	}

	return i, nil
}

// Member returns the domain element at index i, or ErrDomainError if i is
// out of range.
func (b *Bitset[T]) Member(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(b.dom.rev) {
		return zero, ErrDomainError
	}

	return b.dom.rev[i], nil
}

// Add returns a fresh Bitset equal to b with e inserted.
func (b *Bitset[T]) Add(e T) (*Bitset[T], error) {
	i, err := b.Index(e)
	if err != nil {
		return nil, err
	}
	out := &Bitset[T]{dom: b.dom, vec: b.vec.Copy()}
	_ = out.vec.Put(i, true)

	return out, nil
}

// Remove returns a fresh Bitset equal to b with e removed.
func (b *Bitset[T]) Remove(e T) (*Bitset[T], error) {
	i, err := b.Index(e)
	if err != nil {
		return nil, err
	}
	out := &Bitset[T]{dom: b.dom, vec: b.vec.Copy()}
	_ = out.vec.Put(i, false)

	return out, nil
}

// IsMember reports whether e is currently in b. Elements outside the domain
// are reported absent.
func (b *Bitset[T]) IsMember(e T) bool {
	i, err := b.Index(e)
	if err != nil {
		return false
	}
	ok, _ := b.vec.Get(i)

	return ok
}

// Count returns the number of members.
func (b *Bitset[T]) Count() int { return b.vec.Count() }

// IsEmpty reports whether b has no members.
func (b *Bitset[T]) IsEmpty() bool { return b.vec.IsEmpty() }

// compatible asserts a and b share an origin.
func compatible[T comparable](a, b *Bitset[T]) error {
	if a.dom.origin != b.dom.origin {
		return ErrIncompatible
	}

	return nil
}

// Union returns a ∪ b, a fresh Bitset.
func Union[T comparable](a, b *Bitset[T]) (*Bitset[T], error) {
	if err := compatible(a, b); err != nil {
		return nil, err
	}
	out := &Bitset[T]{dom: a.dom, vec: a.vec.Copy()}
	_ = out.vec.Union(b.vec)

	return out, nil
}

// Intersect returns a ∩ b, a fresh Bitset.
func Intersect[T comparable](a, b *Bitset[T]) (*Bitset[T], error) {
	if err := compatible(a, b); err != nil {
		return nil, err
	}
	out := &Bitset[T]{dom: a.dom, vec: a.vec.Copy()}
	_ = out.vec.Inter(b.vec)

	return out, nil
}

// Minus returns a \ b, a fresh Bitset.
func Minus[T comparable](a, b *Bitset[T]) (*Bitset[T], error) {
	if err := compatible(a, b); err != nil {
		return nil, err
	}
	out := &Bitset[T]{dom: a.dom, vec: a.vec.Copy()}
	_ = out.vec.Minus(b.vec)

	return out, nil
}

// Difference returns the symmetric difference (a \ b) ∪ (b \ a), a fresh Bitset.
func Difference[T comparable](a, b *Bitset[T]) (*Bitset[T], error) {
	if err := compatible(a, b); err != nil {
		return nil, err
	}
	out := &Bitset[T]{dom: a.dom, vec: a.vec.Copy()}
	_ = out.vec.Diff(b.vec)

	return out, nil
}

// Complement returns the domain-relative complement of b, a fresh Bitset.
func Complement[T comparable](b *Bitset[T]) *Bitset[T] {
	out := &Bitset[T]{dom: b.dom, vec: b.vec.Copy()}
	_ = out.vec.Complement()

	return out
}

// Subset reports whether a ⊊ b (strict subset).
func Subset[T comparable](a, b *Bitset[T]) (bool, error) {
	if err := compatible(a, b); err != nil {
		return false, err
	}

	return bitvec.Lt(a.vec, b.vec)
}

// Subseteq reports whether a ⊆ b.
func Subseteq[T comparable](a, b *Bitset[T]) (bool, error) {
	if err := compatible(a, b); err != nil {
		return false, err
	}

	return bitvec.Le(a.vec, b.vec)
}

// Equal reports bitwise equality of a and b.
func Equal[T comparable](a, b *Bitset[T]) (bool, error) {
	if err := compatible(a, b); err != nil {
		return false, err
	}

	return bitvec.Eq(a.vec, b.vec)
}

// Compare returns a total order over a and b: -1, 0, or +1. Compatible
// bitsets only — see bitvec.Compare for the ordering definition.
func Compare[T comparable](a, b *Bitset[T]) (int, error) {
	if err := compatible(a, b); err != nil {
		return 0, err
	}

	return bitvec.Compare(a.vec, b.vec)
}

// Unions folds Union over sets, mutating a single working payload instead of
// chaining pairwise binary ops. An empty list has no domain to infer a
// result from and returns ErrEmptyDomain; callers that need the empty set of
// a known domain should use that domain's own empty Bitset instead.
func Unions[T comparable](sets []*Bitset[T]) (*Bitset[T], error) {
	if len(sets) == 0 {
		return nil, ErrEmptyDomain
	}
	acc, err := sets[0].empty()
	if err != nil {
		return nil, err
	}
	for _, s := range sets {
		if err := compatible(acc, s); err != nil {
			return nil, err
		}
		_ = acc.vec.Union(s.vec)
	}

	return acc, nil
}

// Intersects folds Intersect over sets, mutating a single working payload.
// Folding an empty list returns full, the identity of intersection — this is
// the only way top/bottom concepts get computed from an empty object or
// attribute set.
func Intersects[T comparable](full *Bitset[T], sets []*Bitset[T]) (*Bitset[T], error) {
	if len(sets) == 0 {
		return &Bitset[T]{dom: full.dom, vec: full.vec.Copy()}, nil
	}
	acc := &Bitset[T]{dom: sets[0].dom, vec: sets[0].vec.Copy()}
	for _, s := range sets[1:] {
		if err := compatible(acc, s); err != nil {
			return nil, err
		}
		_ = acc.vec.Inter(s.vec)
	}

	return acc, nil
}

// Fold visits b's members in ascending domain-index order, invoking
// f(b, index, acc) so f can look up the element via b.Member(index).
func Fold[T comparable, A any](b *Bitset[T], f func(b *Bitset[T], index int, acc A) A, acc A) A {
	return bitvec.Fold(b.vec, func(i int, acc A) A { return f(b, i, acc) }, acc)
}

// Members returns b's elements in ascending domain-index order.
func (b *Bitset[T]) Members() []T {
	idxs := b.vec.Members()
	out := make([]T, len(idxs))
	for i, idx := range idxs {
		out[i] = b.dom.rev[idx]
	}

	return out
}
