// Package dot is an external collaborator that renders a concept lattice's
// cover relation as a Graphviz DOT digraph. It consumes only fca's public
// traversal API (fca.FoldConcepts) and fcacontext's public naming hooks
// (Context.StringX/StringY); it never reaches into fca's or fcacontext's
// internals.
package dot
