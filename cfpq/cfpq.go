// Package cfpq implements the three Context-Free Path Query solvers (spec
// component C8) required to agree exactly on the same (graph, grammar)
// pair: Hellings' worklist, the matrix-fixpoint solver over a CNF grammar,
// and the tensor-fixpoint solver driven by a Recursive Finite Automaton.
package cfpq

import (
	"sort"

	"github.com/SmirnovOleg/formal-languages/boolmatrix"
)

// Pair is a (from, to) vertex pair in a solver's result set. It reuses
// boolmatrix.Entry's shape rather than redeclaring an identical struct.
type Pair = boolmatrix.Entry

// PairSet collects a solver's result pairs.
type PairSet map[Pair]bool

func (s PairSet) add(i, j int) {
	s[Pair{Row: i, Col: j}] = true
}

// Pairs returns the result as a plain, sorted-by-(row,col) slice.
func (s PairSet) Pairs() []Pair {
	out := make([]Pair, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

func pairSetFromMatrix(m *boolmatrix.BoolMatrix) PairSet {
	out := make(PairSet)
	for _, e := range m.IterEntries() {
		out.add(e.Row, e.Col)
	}
	return out
}
