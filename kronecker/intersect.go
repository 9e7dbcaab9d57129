// Package kronecker implements the Intersection operation (spec component
// C4): the labeled Kronecker (tensor) product of two Labeled Graphs, used
// as automaton intersection for RPQ.
package kronecker

import (
	"fmt"

	"github.com/SmirnovOleg/formal-languages/boolmatrix"
	"github.com/SmirnovOleg/formal-languages/lgraph"
)

// Intersect computes the labeled Kronecker product of self (size N1) and
// other (size N2): the result has size N1·N2 (spec §4.4).
//
// For every label present in self, self[label] ⊗ other[label] is computed;
// a label missing from other contributes the all-zero N2×N2 matrix. Labels
// present only in other are dropped — they can never matter, since the
// product's edges require a self-side transition to exist too.
//
// Start/final states of the product are deliberately conservative: every
// state of other paired with each start (respectively final) state of
// self, i.e. { i·N2+k | i ∈ self.start, 0 ≤ k < N2 }. Callers filter the
// superset by id mod N2 against external start/final constraints (spec
// §4.4, §9).
func Intersect(self, other *lgraph.LabeledGraph) (*lgraph.LabeledGraph, error) {
	if err := boolmatrix.ValidateNotNil(self, lgraph.ErrNilGraph); err != nil {
		return nil, fmt.Errorf("Intersect: %w", err)
	}
	if err := boolmatrix.ValidateNotNil(other, lgraph.ErrNilGraph); err != nil {
		return nil, fmt.Errorf("Intersect: %w", err)
	}
	n2 := other.VerticesNum()
	n1 := self.VerticesNum()

	store, err := boolmatrix.NewStore(n1 * n2)
	if err != nil {
		return nil, fmt.Errorf("Intersect: %w", err)
	}

	zero, err := boolmatrix.NewBoolMatrix(n2)
	if err != nil {
		return nil, fmt.Errorf("Intersect: %w", err)
	}

	for _, lb := range self.Store.Labels() {
		selfM, err := self.Store.Matrix(lb)
		if err != nil {
			return nil, fmt.Errorf("Intersect(%q): %w", lb, err)
		}
		otherM := zero
		if other.Store.HasLabel(lb) {
			otherM, err = other.Store.Matrix(lb)
			if err != nil {
				return nil, fmt.Errorf("Intersect(%q): %w", lb, err)
			}
		}
		prod, err := boolmatrix.Kronecker(selfM, otherM)
		if err != nil {
			return nil, fmt.Errorf("Intersect(%q): %w", lb, err)
		}
		m, err := store.Matrix(lb)
		if err != nil {
			return nil, fmt.Errorf("Intersect(%q): %w", lb, err)
		}
		if err := m.UnionInplace(prod); err != nil {
			return nil, fmt.Errorf("Intersect(%q): %w", lb, err)
		}
	}

	vertices := make(map[int]bool, n1*n2)
	starts := make(map[int]bool)
	finals := make(map[int]bool)
	for id := 0; id < n1*n2; id++ {
		vertices[id] = true
	}
	for i := range self.StartStates {
		for k := 0; k < n2; k++ {
			starts[i*n2+k] = true
		}
	}
	for i := range self.FinalStates {
		for k := 0; k < n2; k++ {
			finals[i*n2+k] = true
		}
	}

	return lgraph.FromStore(store, vertices, starts, finals), nil
}
