package dot

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvlath-fca/fca"
	"github.com/katalvlaran/lvlath-fca/fcacontext"
)

// Emit writes a Graphviz DOT digraph of ctx's concept lattice to w: one node
// per concept labelled with its extent and intent, one edge per cover
// relation pointing from a concept to each of its upper neighbors.
func Emit[X comparable, Y comparable](w io.Writer, ctx *fcacontext.Context[X, Y]) error {
	ids := make(map[string]string)
	var nodeLines []string
	var edgeLines []string

	idFor := func(c fca.Concept[X, Y]) string {
		objects := c.Objects.Members()
		names := make([]string, len(objects))
		for i, x := range objects {
			names[i] = ctx.StringX(x)
		}
		key := strings.Join(names, "\x00")
		if id, ok := ids[key]; ok {
			return id
		}
		id := fmt.Sprintf("c%d", len(ids))
		ids[key] = id

		attributes := c.Attributes.Members()
		attrNames := make([]string, len(attributes))
		for i, y := range attributes {
			attrNames[i] = ctx.StringY(y)
		}
		nodeLines = append(nodeLines, fmt.Sprintf("\t%s [label=%q];", id, label(names, attrNames)))

		return id
	}

	_, err := fca.FoldConcepts(ctx, func(c fca.Concept[X, Y], uppers []fca.Concept[X, Y], acc int) int {
		from := idFor(c)
		for _, up := range uppers {
			to := idFor(up)
			edgeLines = append(edgeLines, fmt.Sprintf("\t%s -> %s;", from, to))
		}

		return acc
	}, 0)
	if err != nil {
		return fmt.Errorf("dot: %w", err)
	}

	if _, err := fmt.Fprintln(w, "digraph lattice {"); err != nil {
		return err
	}
	for _, line := range nodeLines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	for _, line := range edgeLines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w, "}")

	return err
}

func label(objects, attributes []string) string {
	return fmt.Sprintf("O: %s\\nA: %s", strings.Join(objects, ", "), strings.Join(attributes, ", "))
}
