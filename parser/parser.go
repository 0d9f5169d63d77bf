package parser

import (
	"io"
)

// Pair is one parsed record: an object and its (possibly empty) attribute list.
type Pair struct {
	Object     string
	Attributes []string
}

type tokenKind int

const (
	tokIdent tokenKind = iota
	tokColon
	tokSemi
)

type token struct {
	kind   tokenKind
	text   string
	offset int
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n' || b == '\v' || b == '\f'
}

func isCommentStart(data []byte, i int) bool {
	if data[i] == '#' || data[i] == '%' {
		return true
	}

	return data[i] == '-' && i+1 < len(data) && data[i+1] == '-'
}

func skipToEOL(data []byte, i int) int {
	for i < len(data) && data[i] != '\n' {
		i++
	}

	return i
}

// tokenize scans data into idents, ':' and ';', stripping "#"/"--"/"%" line
// comments wherever they occur — including immediately after an identifier
// with no intervening whitespace.
func tokenize(data []byte) []token {
	var toks []token
	i, n := 0, len(data)
	for i < n {
		switch {
		case isSpace(data[i]):
			i++
		case isCommentStart(data, i):
			i = skipToEOL(data, i)
		case data[i] == ':':
			toks = append(toks, token{tokColon, ":", i})
			i++
		case data[i] == ';':
			toks = append(toks, token{tokSemi, ";", i})
			i++
		default:
			start := i
			for i < n && !isSpace(data[i]) && data[i] != ':' && data[i] != ';' && !isCommentStart(data, i) {
				i++
			}
			toks = append(toks, token{tokIdent, string(data[start:i]), start})
		}
	}

	return toks
}

// endOffset returns the byte offset to report for an error at token index i:
// the offset of that token if it exists, or the end of input otherwise.
func endOffset(toks []token, data []byte, i int) int {
	if i < len(toks) {
		return toks[i].offset
	}

	return len(data)
}

// Parse reads the context-table grammar described in doc.go from r and
// returns its records in input order. A malformed record yields a *ParseError
// carrying the byte offset of the unexpected token.
func Parse(r io.Reader) ([]Pair, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return ParseBytes(data)
}

// ParseBytes is Parse without the io.Reader indirection, useful for tests
// and for callers that already hold the input in memory.
func ParseBytes(data []byte) ([]Pair, error) {
	toks := tokenize(data)

	var pairs []Pair
	i := 0
	for i < len(toks) {
		if toks[i].kind != tokIdent {
			return nil, &ParseError{Offset: toks[i].offset, Msg: "expected object identifier"}
		}
		obj := toks[i].text
		i++

		if i >= len(toks) || toks[i].kind != tokColon {
			return nil, &ParseError{Offset: endOffset(toks, data, i), Msg: "expected ':' after object " + obj}
		}
		i++

		var attrs []string
		for i < len(toks) && toks[i].kind == tokIdent {
			attrs = append(attrs, toks[i].text)
			i++
		}

		if i >= len(toks) || toks[i].kind != tokSemi {
			return nil, &ParseError{Offset: endOffset(toks, data, i), Msg: "expected ';' terminating record for " + obj}
		}
		i++

		pairs = append(pairs, Pair{Object: obj, Attributes: attrs})
	}

	return pairs, nil
}

// Domains collects the distinct objects and attributes from pairs, each in
// first-seen (insertion) order, matching how fcacontext.Make indexes a domain.
func Domains(pairs []Pair) (objects []string, attributes []string) {
	seenObj := make(map[string]bool)
	seenAttr := make(map[string]bool)
	for _, p := range pairs {
		if !seenObj[p.Object] {
			seenObj[p.Object] = true
			objects = append(objects, p.Object)
		}
		for _, a := range p.Attributes {
			if !seenAttr[a] {
				seenAttr[a] = true
				attributes = append(attributes, a)
			}
		}
	}

	return objects, attributes
}
