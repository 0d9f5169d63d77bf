package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvlath-fca/dot"
)

// cmdDot renders the context's concept lattice as a Graphviz DOT digraph.
func cmdDot(stdout, stderr io.Writer, args []string) int {
	fs := pflag.NewFlagSet("dot", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	input := fs.StringP("input", "i", "", "context-table file (default stdin)")
	output := fs.StringP("output", "o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(stderr, "fcacli dot:", err)

		return 2
	}

	ctx, err := buildContext(*input)
	if err != nil {
		fmt.Fprintln(stderr, "fcacli dot:", err)

		return 1
	}

	var buf bytes.Buffer
	if err := dot.Emit(&buf, ctx); err != nil {
		fmt.Fprintln(stderr, "fcacli dot:", err)

		return 1
	}

	if err := writeOutput(stdout, *output, buf.Bytes()); err != nil {
		fmt.Fprintln(stderr, "fcacli dot:", err)

		return 1
	}

	return 0
}
