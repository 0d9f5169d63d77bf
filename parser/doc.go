// Package parser is the external-collaborator lexer/parser for context-table
// input: a sequence of records "object : attr attr … ;" terminated by
// semicolons, with "#", "--", and "%" line comments. Its only contract with
// the core (bitvec/bitset/fcacontext/fca/rules) is producing the
// (objects, attributes, pairs) tuple fcacontext.Make / Relate consumes — it
// never imports those packages itself.
//
// Identifiers are non-empty runs of any rune except ':', ';', and whitespace;
// a '#', '%' or "--" ends an identifier and starts a comment.
// A blank attribute list ("object: ;") is allowed. Distinct objects and
// attributes are collected in first-seen (insertion) order, matching how
// fcacontext.Make indexes its domains.
package parser
