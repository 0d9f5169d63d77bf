// Package lvlathfca is the front door to a formal concept analysis engine:
// packed bitsets, a relational context, a concept lattice built with
// Lindig's neighbor algorithm, and an association-rule/violation miner on
// top of it.
//
// Everything lives under focused subpackages:
//
//	bitvec/     — fixed-capacity packed bit vector and its set algebra
//	bitset/     — a typed, domain-checked Bitset[T] built on bitvec
//	fcacontext/ — the object/attribute relation and its Galois operators
//	fca/        — concepts, neighbors (Lindig), and whole-lattice traversal
//	rules/      — rule and violation mining over the lattice
//	parser/     — the context-table text format
//	dot/        — Graphviz rendering of a lattice
//	cmd/fcacli/ — a CLI tying the above together
//
// This root package holds no code of its own; it exists so `go doc
// github.com/katalvlaran/lvlath-fca` has somewhere to start.
package lvlathfca
