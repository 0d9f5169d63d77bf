package parser

import "fmt"

// ParseError reports malformed input at a given byte offset into the
// original stream.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parser: %s (at byte %d)", e.Msg, e.Offset)
}
