// Package rpq implements the Regular Path Query solver (spec component
// C9): the constraint automaton and the target graph are combined with
// kronecker.Intersect, the product is closed with closure.BySquaring, and
// the surviving (start, final) pairs are filtered by the query's shape and
// mapped back to the original graph's vertex pairs via id mod Ng.
package rpq
