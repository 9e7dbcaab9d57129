package rpq

import (
	"fmt"

	"github.com/SmirnovOleg/formal-languages/boolmatrix"
	"github.com/SmirnovOleg/formal-languages/closure"
	"github.com/SmirnovOleg/formal-languages/kronecker"
	"github.com/SmirnovOleg/formal-languages/lgraph"
)

// Solve runs the RPQ pipeline (spec §4.9): P = constraint ⊗ g, filter
// start/end states by q's shape, compute R = closure(P), and emit
// {(s mod Ng, e mod Ng) | (s, e) in starts x ends, R[s,e]}.
func Solve(g, constraint *lgraph.LabeledGraph, q *Query) (map[Pair]bool, error) {
	if err := boolmatrix.ValidateNotNil(g, ErrNilInput); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if err := boolmatrix.ValidateNotNil(constraint, ErrNilInput); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if q == nil {
		q = NewQuery()
	}
	if q.toSet != nil && q.fromSet == nil {
		return nil, fmt.Errorf("Solve: %w", ErrInvalidQueryShape)
	}

	ng := g.VerticesNum()
	product, err := kronecker.Intersect(constraint, g)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	starts := product.StartStates
	if q.fromSet != nil {
		filtered := make(map[int]bool)
		for s := range starts {
			if q.fromSet[s%ng] {
				filtered[s] = true
			}
		}
		starts = filtered
	}
	ends := product.FinalStates
	if q.toSet != nil {
		filtered := make(map[int]bool)
		for e := range ends {
			if q.toSet[e%ng] {
				filtered[e] = true
			}
		}
		ends = filtered
	}

	r, err := closure.BySquaring(product)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	out := make(map[Pair]bool)
	for _, e := range r.IterEntries() {
		if !starts[e.Row] || !ends[e.Col] {
			continue
		}
		out[Pair{Row: e.Row % ng, Col: e.Col % ng}] = true
	}
	return out, nil
}
