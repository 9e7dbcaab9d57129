package automaton

import (
	"fmt"

	"github.com/SmirnovOleg/formal-languages/boolmatrix"
	"github.com/SmirnovOleg/formal-languages/internal/fsm"
	"github.com/SmirnovOleg/formal-languages/lgraph"
)

// BuildFromRegex parses pattern in the selected dialect, determinizes and
// minimizes it, and returns the resulting Labeled Graph (spec §4.3): one
// vertex per minimized DFA state, one edge per DFA transition.
func BuildFromRegex(pattern string, opts ...ParseOption) (*lgraph.LabeledGraph, error) {
	node, err := Parse(pattern, opts...)
	if err != nil {
		return nil, fmt.Errorf("BuildFromRegex: %w", err)
	}
	return BuildFromNFA(ToNFA(node))
}

// BuildFromNFA determinizes and minimizes an arbitrary ε-NFA and returns
// the resulting Labeled Graph. This is the entry point spec §4.3 describes
// for callers that already hold an ε-NFA rather than regex text.
func BuildFromNFA(nfa *fsm.NFA) (*lgraph.LabeledGraph, error) {
	dfa := fsm.Determinize(nfa).Minimize()
	return fromDFA(dfa)
}

// fromDFA assigns each DFA state a vertex id (already 0..N-1 by
// construction) and emits one Edge per transition, building a Labeled
// Graph whose start/final sets are the DFA's (spec §4.3).
func fromDFA(dfa *fsm.DFA) (*lgraph.LabeledGraph, error) {
	store, err := boolmatrix.NewStore(dfa.NumStates)
	if err != nil {
		return nil, fmt.Errorf("fromDFA: %w", err)
	}
	vertices := make(map[int]bool, dfa.NumStates)
	for s := 0; s < dfa.NumStates; s++ {
		vertices[s] = true
		for lb, target := range dfa.Trans[s] {
			if err := store.Set(lb, s, target, true); err != nil {
				return nil, fmt.Errorf("fromDFA: %w", err)
			}
		}
	}

	starts := map[int]bool{dfa.Start: true}
	finals := make(map[int]bool, len(dfa.Finals))
	for s := range dfa.Finals {
		finals[s] = true
	}

	return lgraph.FromStore(store, vertices, starts, finals), nil
}
