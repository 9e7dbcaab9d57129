// Package closure implements the Transitive Closure Engine (spec component
// C5): two algorithms computing the transitive (not reflexive) closure of
// the union of all per-label matrices in a Labeled Graph.
package closure

import (
	"fmt"

	"github.com/SmirnovOleg/formal-languages/boolmatrix"
	"github.com/SmirnovOleg/formal-languages/lgraph"
)

// BySquaring computes the transitive closure by repeated squaring:
// C ← A; repeat C ← C ∪ C·C until nvals(C) stabilizes. Converges in
// O(log N) doublings, each doubling being a quadratic-cost multiplication
// (spec §4.5).
func BySquaring(g *lgraph.LabeledGraph) (*boolmatrix.BoolMatrix, error) {
	if err := boolmatrix.ValidateNotNil(g, lgraph.ErrNilGraph); err != nil {
		return nil, fmt.Errorf("BySquaring: %w", err)
	}
	c, err := g.Store.Union()
	if err != nil {
		return nil, fmt.Errorf("BySquaring: %w", err)
	}
	for {
		before := c.NVals()
		sq, err := boolmatrix.Matmul(c, c)
		if err != nil {
			return nil, fmt.Errorf("BySquaring: %w", err)
		}
		if err := c.UnionInplace(sq); err != nil {
			return nil, fmt.Errorf("BySquaring: %w", err)
		}
		if c.NVals() == before {
			break
		}
	}
	return c, nil
}

// ByAdjacencyMultiplication computes the transitive closure by incremental
// multiplication: C ← A; repeat C ← C ∪ A·C until nvals(C) stabilizes.
// O(N) rounds, each round cheaper than a squaring round (spec §4.5).
func ByAdjacencyMultiplication(g *lgraph.LabeledGraph) (*boolmatrix.BoolMatrix, error) {
	if err := boolmatrix.ValidateNotNil(g, lgraph.ErrNilGraph); err != nil {
		return nil, fmt.Errorf("ByAdjacencyMultiplication: %w", err)
	}
	a, err := g.Store.Union()
	if err != nil {
		return nil, fmt.Errorf("ByAdjacencyMultiplication: %w", err)
	}
	c := a.Clone()
	for {
		before := c.NVals()
		prod, err := boolmatrix.Matmul(a, c)
		if err != nil {
			return nil, fmt.Errorf("ByAdjacencyMultiplication: %w", err)
		}
		if err := c.UnionInplace(prod); err != nil {
			return nil, fmt.Errorf("ByAdjacencyMultiplication: %w", err)
		}
		if c.NVals() == before {
			break
		}
	}
	return c, nil
}

// OfMatrix computes the transitive closure of an arbitrary boolean matrix
// by repeated squaring — the same algorithm as BySquaring but over a
// caller-supplied matrix rather than a Labeled Graph's union-of-labels.
// The CFPQ tensor solver and the RPQ solver do not use it: both close their
// intersection product with BySquaring.
func OfMatrix(a *boolmatrix.BoolMatrix) (*boolmatrix.BoolMatrix, error) {
	if err := boolmatrix.ValidateNotNil(a, boolmatrix.ErrNilMatrix); err != nil {
		return nil, fmt.Errorf("OfMatrix: %w", err)
	}
	c := a.Clone()
	for {
		before := c.NVals()
		sq, err := boolmatrix.Matmul(c, c)
		if err != nil {
			return nil, fmt.Errorf("OfMatrix: %w", err)
		}
		if err := c.UnionInplace(sq); err != nil {
			return nil, fmt.Errorf("OfMatrix: %w", err)
		}
		if c.NVals() == before {
			break
		}
	}
	return c, nil
}
