// Package bitset_test verifies Bitset[T] contracts without third-party libs.
package bitset_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlath-fca/bitset"
)

func domain(t *testing.T) *bitset.Bitset[string] {
	t.Helper()
	b, err := bitset.Make([]string{"a1", "a2", "a3"})
	if err != nil {
		t.Fatal(err)
	}

	return b
}

// TestMake_EmptyDomain VERIFIES Make([]) returns ErrEmptyDomain.
func TestMake_EmptyDomain(t *testing.T) {
	if _, err := bitset.Make[string](nil); !errors.Is(err, bitset.ErrEmptyDomain) {
		t.Fatalf("got %v, want ErrEmptyDomain", err)
	}
}

// TestIndex_DomainError VERIFIES Index rejects elements outside the domain.
func TestIndex_DomainError(t *testing.T) {
	b := domain(t)
	if _, err := b.Index("nope"); !errors.Is(err, bitset.ErrDomainError) {
		t.Fatalf("got %v, want ErrDomainError", err)
	}
}

// TestAddRemove_Applicative VERIFIES Add/Remove return fresh values and never
// mutate the receiver.
func TestAddRemove_Applicative(t *testing.T) {
	b := domain(t)
	b2, err := b.Add("a1")
	if err != nil {
		t.Fatal(err)
	}
	if b.IsMember("a1") {
		t.Fatal("Add mutated its receiver")
	}
	if !b2.IsMember("a1") {
		t.Fatal("Add did not set the member on the result")
	}
	b3, err := b2.Remove("a1")
	if err != nil {
		t.Fatal(err)
	}
	if !b2.IsMember("a1") {
		t.Fatal("Remove mutated its receiver")
	}
	if b3.IsMember("a1") {
		t.Fatal("Remove did not clear the member on the result")
	}
}

// TestIncompatible_DifferentOrigin VERIFIES that two bitsets built from an
// equal element list, via separate Make calls, are NOT compatible.
func TestIncompatible_DifferentOrigin(t *testing.T) {
	a, _ := bitset.Make([]string{"x", "y"})
	b, _ := bitset.Make([]string{"x", "y"})
	if _, err := bitset.Union(a, b); !errors.Is(err, bitset.ErrIncompatible) {
		t.Fatalf("got %v, want ErrIncompatible", err)
	}
}

// TestSetLaws VERIFIES commutativity, associativity, idempotence of
// Union/Intersect, De Morgan on Complement, Minus(x,x)=empty, and
// Difference(x,y) = Union(x\y, y\x). (Property 4.)
func TestSetLaws(t *testing.T) {
	b := domain(t)
	x, _ := b.Add("a1")
	x, _ = x.Add("a2")
	y, _ := b.Add("a2")
	y, _ = y.Add("a3")

	// Commutativity.
	xy, _ := bitset.Union(x, y)
	yx, _ := bitset.Union(y, x)
	if eq, _ := bitset.Equal(xy, yx); !eq {
		t.Fatal("Union not commutative")
	}
	xyI, _ := bitset.Intersect(x, y)
	yxI, _ := bitset.Intersect(y, x)
	if eq, _ := bitset.Equal(xyI, yxI); !eq {
		t.Fatal("Intersect not commutative")
	}

	// Idempotence.
	xx, _ := bitset.Union(x, x)
	if eq, _ := bitset.Equal(xx, x); !eq {
		t.Fatal("Union(x,x) != x")
	}
	xxI, _ := bitset.Intersect(x, x)
	if eq, _ := bitset.Equal(xxI, x); !eq {
		t.Fatal("Intersect(x,x) != x")
	}

	// Associativity (add a third set).
	z, _ := b.Add("a3")
	xyz1, _ := bitset.Union(xy, z)
	yz, _ := bitset.Union(y, z)
	xyz2, _ := bitset.Union(x, yz)
	if eq, _ := bitset.Equal(xyz1, xyz2); !eq {
		t.Fatal("Union not associative")
	}

	// De Morgan: complement(union(x,y)) == intersect(complement(x), complement(y)).
	cx := bitset.Complement(x)
	cy := bitset.Complement(y)
	lhs := bitset.Complement(xy)
	rhs, _ := bitset.Intersect(cx, cy)
	if eq, _ := bitset.Equal(lhs, rhs); !eq {
		t.Fatal("De Morgan (complement of union) violated")
	}

	// Minus(x,x) = empty.
	mm, _ := bitset.Minus(x, x)
	if !mm.IsEmpty() {
		t.Fatal("Minus(x,x) is not empty")
	}

	// Difference(x,y) = Union(x\y, y\x).
	diff, _ := bitset.Difference(x, y)
	xmy, _ := bitset.Minus(x, y)
	ymx, _ := bitset.Minus(y, x)
	union2, _ := bitset.Union(xmy, ymx)
	if eq, _ := bitset.Equal(diff, union2); !eq {
		t.Fatal("Difference != Union(x\\y, y\\x)")
	}
}

// TestIntersects_EmptyListReturnsFull VERIFIES the open-question resolution:
// folding Intersects over an empty list yields the full domain.
func TestIntersects_EmptyListReturnsFull(t *testing.T) {
	b := domain(t)
	full := b.Full()
	got, err := bitset.Intersects(full, nil)
	if err != nil {
		t.Fatal(err)
	}
	if eq, _ := bitset.Equal(got, full); !eq {
		t.Fatal("Intersects(full, []) != full")
	}
}

// TestFold_AscendingOrder VERIFIES Fold visits members in ascending domain order
// and passes the set through to f.
func TestFold_AscendingOrder(t *testing.T) {
	b := domain(t)
	x, _ := b.Add("a3")
	x, _ = x.Add("a1")

	var seen []string
	bitset.Fold(x, func(s *bitset.Bitset[string], idx int, acc struct{}) struct{} {
		e, err := s.Member(idx)
		if err != nil {
			t.Fatal(err)
		}
		seen = append(seen, e)

		return acc
	}, struct{}{})

	if len(seen) != 2 || seen[0] != "a1" || seen[1] != "a3" {
		t.Fatalf("Fold order: got %v, want [a1 a3]", seen)
	}
}
