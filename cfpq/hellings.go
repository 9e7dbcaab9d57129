package cfpq

import (
	"container/list"
	"fmt"

	"github.com/SmirnovOleg/formal-languages/boolmatrix"
	"github.com/SmirnovOleg/formal-languages/grammar"
	"github.com/SmirnovOleg/formal-languages/lgraph"
)

type triple struct {
	u, v int
	head string
}

// Hellings runs Hellings' worklist algorithm (spec §4.8) over g's CNF
// normalization, returning every (u, v) such that some u->v path in g is
// derivable from the grammar's start symbol.
func Hellings(g *lgraph.LabeledGraph, gram *grammar.Grammar) (PairSet, error) {
	if err := boolmatrix.ValidateNotNil(g, ErrNilInput); err != nil {
		return nil, fmt.Errorf("Hellings: %w", err)
	}
	if err := boolmatrix.ValidateNotNil(gram, ErrNilInput); err != nil {
		return nil, fmt.Errorf("Hellings: %w", err)
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

	worklist := list.New()
	enqueue := func(u, v int, head string) error {
		mat, err := get(head)
		if err != nil {
			return err
		}
		set, err := mat.Get(u, v)
		if err != nil {
			return err
		}
		if set {
			return nil
		}
		if err := mat.Set(u, v, true); err != nil {
			return err
		}
		worklist.PushBack(triple{u: u, v: v, head: head})
		return nil
	}

	for terminal, heads := range cnf.UnaryByTerminal {
		lm, err := g.FromLabelToBoolMatrix(terminal)
		if err != nil {
			return nil, fmt.Errorf("Hellings: %w", err)
		}
		for _, e := range lm.IterEntries() {
			for _, head := range heads {
				if err := enqueue(e.Row, e.Col, head); err != nil {
					return nil, fmt.Errorf("Hellings: %w", err)
				}
			}
		}
	}
	if gram.GeneratesEpsilon() {
		for _, v := range g.SortedVertices() {
			if err := enqueue(v, v, cnf.Start); err != nil {
				return nil, fmt.Errorf("Hellings: %w", err)
			}
		}
	}

	for worklist.Len() > 0 {
		front := worklist.Remove(worklist.Front()).(triple)
		u, v, a := front.u, front.v, front.head

		for _, bp := range cnf.BinaryByRight[a] {
			// C -> B A, pair with existing (w, u, B).
			mb, err := get(bp.Left)
			if err != nil {
				return nil, fmt.Errorf("Hellings: %w", err)
			}
			for _, e := range mb.IterEntries() {
				if e.Col != u {
					continue
				}
				if err := enqueue(e.Row, v, bp.Head); err != nil {
					return nil, fmt.Errorf("Hellings: %w", err)
				}
			}
		}
		for _, bp := range cnf.BinaryByLeft[a] {
			// C -> A B, pair with existing (v, x, B).
			mb, err := get(bp.Right)
			if err != nil {
				return nil, fmt.Errorf("Hellings: %w", err)
			}
			for _, e := range mb.IterEntries() {
				if e.Row != v {
					continue
				}
				if err := enqueue(u, e.Col, bp.Head); err != nil {
					return nil, fmt.Errorf("Hellings: %w", err)
				}
			}
		}
	}

	start, err := get(cnf.Start)
	if err != nil {
		return nil, fmt.Errorf("Hellings: %w", err)
	}
	return pairSetFromMatrix(start), nil
}
