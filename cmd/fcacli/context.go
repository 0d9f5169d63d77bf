package main

import (
	"io"
	"os"

	"github.com/katalvlaran/lvlath-fca/fcacontext"
	"github.com/katalvlaran/lvlath-fca/parser"
)

// ctxType is the concrete context instantiation this CLI works with: a
// context-table file always carries string object and attribute names.
type ctxType = fcacontext.Context[string, string]

func identity(s string) string { return s }

// buildContext reads a context-table file (or stdin, when path is "" or "-")
// and builds a fully related fcacontext.Context from it.
func buildContext(path string) (*ctxType, error) {
	r, err := openInput(path)
	if err != nil {
		return nil, err
	}
	if closer, ok := r.(io.Closer); ok && r != os.Stdin {
		defer closer.Close()
	}

	pairs, err := parser.Parse(r)
	if err != nil {
		return nil, err
	}

	objects, attributes := parser.Domains(pairs)
	ctx, err := fcacontext.Make(objects, attributes, identity, identity)
	if err != nil {
		return nil, err
	}

	for _, p := range pairs {
		for _, a := range p.Attributes {
			ctx, err = ctx.Relate(p.Object, a)
			if err != nil {
				return nil, err
			}
		}
	}

	return ctx, nil
}

func openInput(path string) (io.Reader, error) {
	if path == "" || path == "-" {
		return os.Stdin, nil
	}

	return os.Open(path)
}
