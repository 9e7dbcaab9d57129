package cfpq

import (
	"fmt"

	"github.com/SmirnovOleg/formal-languages/boolmatrix"
	"github.com/SmirnovOleg/formal-languages/closure"
	"github.com/SmirnovOleg/formal-languages/kronecker"
	"github.com/SmirnovOleg/formal-languages/lgraph"
	"github.com/SmirnovOleg/formal-languages/rfa"
)

// TensorFixpoint runs the RFA-driven tensor-fixpoint algorithm (spec
// §4.8): a result graph R starts as a copy of g's label matrices, and each
// round computes T = RFA.Graph ⊗ R, decomposes T's closure back through
// the RFA's (start, final) -> nonterminal map, and folds newly discovered
// pairs into R until no round adds anything.
func TensorFixpoint(g *lgraph.LabeledGraph, r *rfa.RFA) (PairSet, error) {
	if err := boolmatrix.ValidateNotNil(g, ErrNilInput); err != nil {
		return nil, fmt.Errorf("TensorFixpoint: %w", err)
	}
	if err := boolmatrix.ValidateNotNil(r, ErrNilInput); err != nil {
		return nil, fmt.Errorf("TensorFixpoint: %w", err)
	}
	n := g.VerticesNum()
	rStore := g.Store.Clone()
	result := lgraph.FromStore(rStore, g.Vertices, map[int]bool{}, map[int]bool{})

	id, err := boolmatrix.NewBoolMatrix(n)
	if err != nil {
		return nil, fmt.Errorf("TensorFixpoint: %w", err)
	}
	for v := range g.Vertices {
		if err := id.Set(v, v, true); err != nil {
			return nil, fmt.Errorf("TensorFixpoint: %w", err)
		}
	}
	seeded := make(map[string]bool)
	for sf, head := range r.HeadByStartFinalPair {
		if sf.Start == sf.Final {
			seeded[head] = true
		}
	}
	for head := range r.EpsProductions {
		seeded[head] = true
	}
	for head := range seeded {
		mat, err := rStore.Matrix(head)
		if err != nil {
			return nil, fmt.Errorf("TensorFixpoint: %w", err)
		}
		if err := mat.UnionInplace(id); err != nil {
			return nil, fmt.Errorf("TensorFixpoint: %w", err)
		}
	}

	for {
		before := storeNVals(rStore)

		product, err := kronecker.Intersect(r.Graph, result)
		if err != nil {
			return nil, fmt.Errorf("TensorFixpoint: %w", err)
		}
		cl, err := closure.BySquaring(product)
		if err != nil {
			return nil, fmt.Errorf("TensorFixpoint: %w", err)
		}
		for _, e := range cl.IterEntries() {
			if !product.StartStates[e.Row] || !product.FinalStates[e.Col] {
				continue
			}
			iRfa, iG := e.Row/n, e.Row%n
			jRfa, jG := e.Col/n, e.Col%n
			head, ok := r.HeadByStartFinalPair[rfa.StartFinal{Start: iRfa, Final: jRfa}]
			if !ok {
				continue
			}
			if err := rStore.Set(head, iG, jG, true); err != nil {
				return nil, fmt.Errorf("TensorFixpoint: %w", err)
			}
		}

		if storeNVals(rStore) == before {
			break
		}
	}

	start, err := rStore.Matrix(r.StartSymbol)
	if err != nil {
		return nil, fmt.Errorf("TensorFixpoint: %w", err)
	}
	return pairSetFromMatrix(start), nil
}

func storeNVals(s *boolmatrix.Store) int {
	total := 0
	for _, lb := range s.Labels() {
		m, _ := s.Matrix(lb)
		total += m.NVals()
	}
	return total
}
