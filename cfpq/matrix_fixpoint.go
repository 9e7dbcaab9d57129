package cfpq

import (
	"fmt"

	"github.com/SmirnovOleg/formal-languages/boolmatrix"
	"github.com/SmirnovOleg/formal-languages/grammar"
	"github.com/SmirnovOleg/formal-languages/lgraph"
)

// MatrixFixpoint runs the matrix-fixpoint algorithm (spec §4.8) over g's
// CNF normalization: per-nonterminal matrices, no worklist, iterated to a
// nvals-delta fixpoint instead.
func MatrixFixpoint(g *lgraph.LabeledGraph, gram *grammar.Grammar) (PairSet, error) {
	if err := boolmatrix.ValidateNotNil(g, ErrNilInput); err != nil {
		return nil, fmt.Errorf("MatrixFixpoint: %w", err)
	}
	if err := boolmatrix.ValidateNotNil(gram, ErrNilInput); err != nil {
		return nil, fmt.Errorf("MatrixFixpoint: %w", err)
	}
	n := g.VerticesNum()
	cnf := gram.CNF()

	m := make(map[string]*boolmatrix.BoolMatrix)
	get := func(head string) (*boolmatrix.BoolMatrix, error) {
		if mat, ok := m[head]; ok {
			return mat, nil
		}
		mat, err := boolmatrix.NewBoolMatrix(n)
		if err != nil {
			return nil, err
		}
		m[head] = mat
		return mat, nil
	}

	for terminal, heads := range cnf.UnaryByTerminal {
		lm, err := g.FromLabelToBoolMatrix(terminal)
		if err != nil {
			return nil, fmt.Errorf("MatrixFixpoint: %w", err)
		}
		for _, head := range heads {
			mat, err := get(head)
			if err != nil {
				return nil, fmt.Errorf("MatrixFixpoint: %w", err)
			}
			if err := mat.UnionInplace(lm); err != nil {
				return nil, fmt.Errorf("MatrixFixpoint: %w", err)
			}
		}
	}
	if gram.GeneratesEpsilon() {
		id, err := boolmatrix.NewBoolMatrix(n)
		if err != nil {
			return nil, fmt.Errorf("MatrixFixpoint: %w", err)
		}
		for v := range g.Vertices {
			if err := id.Set(v, v, true); err != nil {
				return nil, fmt.Errorf("MatrixFixpoint: %w", err)
			}
		}
		mat, err := get(cnf.Start)
		if err != nil {
			return nil, fmt.Errorf("MatrixFixpoint: %w", err)
		}
		if err := mat.UnionInplace(id); err != nil {
			return nil, fmt.Errorf("MatrixFixpoint: %w", err)
		}
	}

	for {
		before := totalNVals(m)
		for _, bp := range cnf.Binary {
			left, err := get(bp.Left)
			if err != nil {
				return nil, fmt.Errorf("MatrixFixpoint: %w", err)
			}
			right, err := get(bp.Right)
			if err != nil {
				return nil, fmt.Errorf("MatrixFixpoint: %w", err)
			}
			head, err := get(bp.Head)
			if err != nil {
				return nil, fmt.Errorf("MatrixFixpoint: %w", err)
			}
			prod, err := boolmatrix.Matmul(left, right)
			if err != nil {
				return nil, fmt.Errorf("MatrixFixpoint: %w", err)
			}
			if err := head.UnionInplace(prod); err != nil {
				return nil, fmt.Errorf("MatrixFixpoint: %w", err)
			}
		}
		if totalNVals(m) == before {
			break
		}
	}

	start, err := get(cnf.Start)
	if err != nil {
		return nil, fmt.Errorf("MatrixFixpoint: %w", err)
	}
	return pairSetFromMatrix(start), nil
}

func totalNVals(m map[string]*boolmatrix.BoolMatrix) int {
	total := 0
	for _, mat := range m {
		total += mat.NVals()
	}
	return total
}
