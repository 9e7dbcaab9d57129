// Package closure implements the Transitive Closure Engine (spec component
// C5): two interchangeable algorithms — repeated squaring and incremental
// adjacency multiplication — for computing the transitive (not reflexive)
// closure of the union of a Labeled Graph's per-label matrices, plus a
// squaring variant (OfMatrix) over an arbitrary caller-supplied matrix.
package closure
