package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvlath-fca/fca"
)

// cmdAnalyze prints every formal concept of the given context.
func cmdAnalyze(stdout, stderr io.Writer, args []string) int {
	cfg, err := LoadConfig(preScanConfigPath(args))
	if err != nil {
		fmt.Fprintln(stderr, "fcacli analyze:", err)

		return 1
	}
	_ = cfg // analyze has no miner thresholds to pick up from .fcarc

	fs := pflag.NewFlagSet("analyze", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	input := fs.StringP("input", "i", "", "context-table file (default stdin)")
	fs.StringP("config", "c", "", ".fcarc config file")
	output := fs.StringP("output", "o", "", "output file (default stdout)")
	format := fs.String("format", "text", "output format: text|json")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(stderr, "fcacli analyze:", err)

		return 2
	}

	ctx, err := buildContext(*input)
	if err != nil {
		fmt.Fprintln(stderr, "fcacli analyze:", err)

		return 1
	}

	concepts, err := fca.Concepts(ctx)
	if err != nil {
		fmt.Fprintln(stderr, "fcacli analyze:", err)

		return 1
	}

	var data []byte
	if *format == "json" {
		data, err = fca.MarshalConceptsJSON(concepts)
		if err != nil {
			fmt.Fprintln(stderr, "fcacli analyze:", err)

			return 1
		}
	} else {
		var b strings.Builder
		fmt.Fprintf(&b, "%d concepts\n", len(concepts))
		for _, c := range concepts {
			fmt.Fprintf(&b, "({%s}, {%s})\n",
				strings.Join(c.Objects.Members(), ", "),
				strings.Join(c.Attributes.Members(), ", "))
		}
		data = []byte(b.String())
	}

	if err := writeOutput(stdout, *output, data); err != nil {
		fmt.Fprintln(stderr, "fcacli analyze:", err)

		return 1
	}

	return 0
}
