// Package fca_test verifies the concept engine's algebraic properties and
// a handful of hand-built lattice scenarios, without third-party libs.
package fca_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/lvlath-fca/bitset"
	"github.com/katalvlaran/lvlath-fca/fca"
	"github.com/katalvlaran/lvlath-fca/fcacontext"
)

func idFn(s string) string { return s }

func buildCtx(t *testing.T, xs, ys []string, pairs [][2]string) *fcacontext.Context[string, string] {
	t.Helper()
	ctx, err := fcacontext.Make(xs, ys, idFn, idFn)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range pairs {
		ctx, err = ctx.Relate(p[0], p[1])
		if err != nil {
			t.Fatal(err)
		}
	}

	return ctx
}

// TestClosure_Idempotent VERIFIES property 5: closure(closure(O)) = closure(O).
func TestClosure_Idempotent(t *testing.T) {
	ctx := buildCtx(t, []string{"o1", "o2", "o3"}, []string{"a1", "a2"},
		[][2]string{{"o1", "a1"}, {"o2", "a1"}, {"o2", "a2"}})
	o, _ := ctx.EmptyObjects().Add("o1")
	c1, err := fca.Closure(ctx, o)
	if err != nil {
		t.Fatal(err)
	}
	c2, err := fca.Closure(ctx, c1.Objects)
	if err != nil {
		t.Fatal(err)
	}
	if eq, _ := bitset.Equal(c1.Objects, c2.Objects); !eq {
		t.Fatal("closure not idempotent on Objects")
	}
	if eq, _ := bitset.Equal(c1.Attributes, c2.Attributes); !eq {
		t.Fatal("closure not idempotent on Attributes")
	}
}

// TestClosurePrime_Idempotent VERIFIES the dual: closure'(closure'(A)) = closure'(A).
func TestClosurePrime_Idempotent(t *testing.T) {
	ctx := buildCtx(t, []string{"o1", "o2", "o3"}, []string{"a1", "a2"},
		[][2]string{{"o1", "a1"}, {"o2", "a1"}, {"o2", "a2"}})
	a, _ := ctx.EmptyAttributes().Add("a1")
	c1, err := fca.ClosurePrime(ctx, a)
	if err != nil {
		t.Fatal(err)
	}
	c2, err := fca.ClosurePrime(ctx, c1.Attributes)
	if err != nil {
		t.Fatal(err)
	}
	if eq, _ := bitset.Equal(c1.Attributes, c2.Attributes); !eq {
		t.Fatal("closure' not idempotent on Attributes")
	}
}

// TestConceptInvariant VERIFIES property 6 for every concept returned by Concepts.
func TestConceptInvariant(t *testing.T) {
	ctx := buildCtx(t, []string{"o1", "o2", "o3"}, []string{"a1", "a2", "a3"},
		[][2]string{{"o1", "a1"}, {"o2", "a1"}, {"o2", "a2"}, {"o3", "a1"}, {"o3", "a2"}, {"o3", "a3"}})
	cs, err := fca.Concepts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range cs {
		if err := fca.Valid(ctx, c); err != nil {
			t.Fatalf("concept invariant violated for objects=%v: %v", c.Objects.Members(), err)
		}
	}
}

// TestTopBottom_NoStrictNeighborBeyondExtremes VERIFIES property 7.
func TestTopBottom_NoStrictNeighborBeyondExtremes(t *testing.T) {
	ctx := buildCtx(t, []string{"o1", "o2"}, []string{"a1"}, nil) // S1: empty relation
	top, err := fca.Top(ctx)
	if err != nil {
		t.Fatal(err)
	}
	uppers, err := fca.Upper(ctx, top)
	if err != nil {
		t.Fatal(err)
	}
	if len(uppers) != 0 {
		t.Fatalf("Top must have no upper neighbor, got %d", len(uppers))
	}

	bottom, err := fca.Bottom(ctx)
	if err != nil {
		t.Fatal(err)
	}
	lowers, err := fca.Lower(ctx, bottom)
	if err != nil {
		t.Fatal(err)
	}
	if len(lowers) != 0 {
		t.Fatalf("Bottom must have no lower neighbor, got %d", len(lowers))
	}
}

// TestCoverCoverage_EdgeCountAgrees VERIFIES property 8: the number of edges
// emitted by FoldConceptsPrime equals the number emitted by FoldConcepts.
func TestCoverCoverage_EdgeCountAgrees(t *testing.T) {
	ctx := buildCtx(t, []string{"o1", "o2", "o3"}, []string{"a1", "a2", "a3"},
		[][2]string{{"o1", "a1"}, {"o2", "a1"}, {"o2", "a2"}, {"o3", "a1"}, {"o3", "a2"}, {"o3", "a3"}})

	upCount, err := fca.FoldConcepts(ctx, func(_ fca.Concept[string, string], uppers []fca.Concept[string, string], acc int) int {
		return acc + len(uppers)
	}, 0)
	if err != nil {
		t.Fatal(err)
	}
	downCount, err := fca.FoldConceptsPrime(ctx, func(_ fca.Concept[string, string], lowers []fca.Concept[string, string], acc int) int {
		return acc + len(lowers)
	}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if upCount != downCount {
		t.Fatalf("edge count mismatch: up=%d down=%d", upCount, downCount)
	}
}

// TestVisitOnce VERIFIES property 9: each concept yields exactly one f invocation.
func TestVisitOnce(t *testing.T) {
	ctx := buildCtx(t, []string{"o1", "o2", "o3"}, []string{"a1", "a2", "a3"},
		[][2]string{{"o1", "a1"}, {"o2", "a1"}, {"o2", "a2"}, {"o3", "a1"}, {"o3", "a2"}, {"o3", "a3"}})
	visits := map[string]int{}
	_, err := fca.FoldConcepts(ctx, func(c fca.Concept[string, string], _ []fca.Concept[string, string], acc int) int {
		key := ""
		for _, o := range c.Objects.Members() {
			key += o + ","
		}
		visits[key]++

		return acc
	}, 0)
	if err != nil {
		t.Fatal(err)
	}
	for key, n := range visits {
		if n != 1 {
			t.Fatalf("concept %q visited %d times, want 1", key, n)
		}
	}
}

// TestSizeConsistency VERIFIES property 10: Size(ctx) = len(Concepts(ctx)).
func TestSizeConsistency(t *testing.T) {
	ctx := buildCtx(t, []string{"o1", "o2", "o3"}, []string{"a1", "a2", "a3"},
		[][2]string{{"o1", "a1"}, {"o2", "a1"}, {"o2", "a2"}, {"o3", "a1"}, {"o3", "a2"}, {"o3", "a3"}})
	cs, err := fca.Concepts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	size, err := fca.Size(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if size != len(cs) {
		t.Fatalf("Size()=%d, len(Concepts())=%d", size, len(cs))
	}
}

// TestScenarioS1_EmptyRelation VERIFIES: domain {o1,o2}x{a1}, no pairs: 2
// concepts, top = ({o1,o2},{}), bottom = ({},{a1}), top covers bottom directly.
func TestScenarioS1_EmptyRelation(t *testing.T) {
	ctx := buildCtx(t, []string{"o1", "o2"}, []string{"a1"}, nil)
	size, err := fca.Size(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if size != 2 {
		t.Fatalf("Size()=%d, want 2", size)
	}
	top, _ := fca.Top(ctx)
	if top.Objects.Count() != 2 || top.Attributes.Count() != 0 {
		t.Fatalf("top = (%v,%v), want ({o1,o2},{})", top.Objects.Members(), top.Attributes.Members())
	}
	bottom, _ := fca.Bottom(ctx)
	if bottom.Objects.Count() != 0 || bottom.Attributes.Count() != 1 {
		t.Fatalf("bottom = (%v,%v), want ({},{a1})", bottom.Objects.Members(), bottom.Attributes.Members())
	}
	lowers, err := fca.Lower(ctx, top)
	if err != nil {
		t.Fatal(err)
	}
	if len(lowers) != 1 {
		t.Fatalf("top should cover exactly bottom, got %d lower neighbors", len(lowers))
	}
	if eq, _ := bitset.Equal(lowers[0].Objects, bottom.Objects); !eq {
		t.Fatal("top's unique lower neighbor is not bottom")
	}
}

// TestScenarioS2_FullRelation VERIFIES: domain {o1}x{a1}, pair (o1,a1): 1
// concept ({o1},{a1}); top = bottom.
func TestScenarioS2_FullRelation(t *testing.T) {
	ctx := buildCtx(t, []string{"o1"}, []string{"a1"}, [][2]string{{"o1", "a1"}})
	size, err := fca.Size(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if size != 1 {
		t.Fatalf("Size()=%d, want 1", size)
	}
	top, _ := fca.Top(ctx)
	bottom, _ := fca.Bottom(ctx)
	if eq, _ := bitset.Equal(top.Objects, bottom.Objects); !eq {
		t.Fatal("top != bottom")
	}
}

// TestScenarioS4_TwoByTwoDiamond VERIFIES: {o1,o2}x{a1,a2} fully related: every
// object shares every attribute, so top = bottom and there is 1 concept.
func TestScenarioS4_TwoByTwoDiamond(t *testing.T) {
	ctx := buildCtx(t, []string{"o1", "o2"}, []string{"a1", "a2"},
		[][2]string{{"o1", "a1"}, {"o1", "a2"}, {"o2", "a1"}, {"o2", "a2"}})
	size, err := fca.Size(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if size != 1 {
		t.Fatalf("Size()=%d, want 1", size)
	}
}

// TestScenarioS5_Chain VERIFIES: {o1,o2,o3}x{a1,a2,a3}, pairs (oi,aj) for j<=i:
// 3 concepts forming a chain ({o1,o2,o3},{a1}) > ({o2,o3},{a1,a2}) >
// ({o3},{a1,a2,a3}); o3 carries every attribute, so it is in the bottom extent.
func TestScenarioS5_Chain(t *testing.T) {
	var pairs [][2]string
	objs := []string{"o1", "o2", "o3"}
	attrs := []string{"a1", "a2", "a3"}
	for i, o := range objs {
		for j := 0; j <= i; j++ {
			pairs = append(pairs, [2]string{o, attrs[j]})
		}
	}
	ctx := buildCtx(t, objs, attrs, pairs)
	size, err := fca.Size(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if size != 3 {
		t.Fatalf("Size()=%d, want 3", size)
	}
}

// TestMarshalConceptsJSON_RoundTrips VERIFIES every concept's object/attribute
// names survive a JSON encode.
func TestMarshalConceptsJSON_RoundTrips(t *testing.T) {
	ctx := buildCtx(t, []string{"o1", "o2"}, []string{"a1", "a2"},
		[][2]string{{"o1", "a1"}, {"o1", "a2"}, {"o2", "a1"}, {"o2", "a2"}})
	concepts, err := fca.Concepts(ctx)
	if err != nil {
		t.Fatal(err)
	}

	data, err := fca.MarshalConceptsJSON(concepts)
	if err != nil {
		t.Fatal(err)
	}

	var decoded []struct {
		Objects    []string `json:"objects"`
		Attributes []string `json:"attributes"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != len(concepts) {
		t.Fatalf("decoded %d records, want %d", len(decoded), len(concepts))
	}
	for i, c := range concepts {
		if len(decoded[i].Objects) != c.Objects.Count() {
			t.Fatalf("record %d: decoded %d objects, want %d", i, len(decoded[i].Objects), c.Objects.Count())
		}
	}
}
