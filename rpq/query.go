// Package rpq implements the Regular Path Query solver (spec component
// C9): Kronecker product of the constraint automaton with the target
// graph, transitive closure, and mapping the result back to the original
// graph's vertex pairs via id mod Ng.
package rpq

import "github.com/SmirnovOleg/formal-languages/boolmatrix"

// Pair is a (from, to) vertex pair in a query's result set.
type Pair = boolmatrix.Entry

// Query selects one of the three recognized RPQ shapes (spec §6 query
// file): reachability_between_all (the default, with no options), or
// reachability_from_set, optionally narrowed by reachability_to_set.
type Query struct {
	fromSet map[int]bool
	toSet   map[int]bool
}

// Option configures a Query.
type Option func(*Query)

// WithFromSet restricts query starts to the given vertices
// (reachability_from_set).
func WithFromSet(vertices []int) Option {
	return func(q *Query) {
		q.fromSet = toSet(vertices)
	}
}

// WithToSet restricts query ends to the given vertices
// (reachability_to_set); only meaningful combined with WithFromSet.
func WithToSet(vertices []int) Option {
	return func(q *Query) {
		q.toSet = toSet(vertices)
	}
}

// NewQuery builds a Query from options; with no options it is
// reachability_between_all.
func NewQuery(opts ...Option) *Query {
	q := &Query{}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

func toSet(vs []int) map[int]bool {
	out := make(map[int]bool, len(vs))
	for _, v := range vs {
		out[v] = true
	}
	return out
}
