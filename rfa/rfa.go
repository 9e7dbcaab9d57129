// Package rfa implements the Recursive Finite Automaton (spec component
// C7): one DFA fragment per nonterminal embedded into a single shared
// Labeled Graph, built either from a Grammar's (C6) raw productions or
// directly from "HEAD regex" production text.
package rfa

import (
	"fmt"
	"strings"

	"github.com/SmirnovOleg/formal-languages/automaton"
	"github.com/SmirnovOleg/formal-languages/grammar"
	"github.com/SmirnovOleg/formal-languages/internal/alloc"
	"github.com/SmirnovOleg/formal-languages/internal/fsm"
	"github.com/SmirnovOleg/formal-languages/lgraph"
)

// StartFinal identifies one nonterminal's DFA fragment by its start and
// final vertex id within the shared rfa_graph.
type StartFinal struct {
	Start, Final int
}

// RFA is a single Labeled Graph plus the bookkeeping the tensor-fixpoint
// solver (spec §4.8) needs to recover which nonterminal each fragment
// belongs to.
type RFA struct {
	Graph                *lgraph.LabeledGraph
	HeadByStartFinalPair map[StartFinal]string
	EpsProductions       map[string]bool
	StartSymbol          string
}

// FromGrammar builds an RFA from g's productions
// (unit-body-per-symbol path, spec §4.7): for each production A -> b1..bk
// it allocates k+1 fresh vertex ids v0..vk via alloc, registers
// (v0, vk) -> A, and adds an edge vi-1 -> vi labeled bi for each i. A
// production with an empty body never allocates a fragment; it marks A as
// ε-producing directly.
//
// g is consumed in its original (non-CNF) production form: the RFA fragment
// shape mirrors the grammar's own right-hand sides, not a binarized CNF
// rewrite, since §4.7's unit-body construction handles bodies of any
// length directly.
func FromGrammar(g *grammar.Grammar, a *alloc.IDs) (*RFA, error) {
	if a == nil {
		a = alloc.New()
	}
	out := &RFA{
		HeadByStartFinalPair: make(map[StartFinal]string),
		EpsProductions:       make(map[string]bool),
		StartSymbol:          g.Start,
	}

	var edges []lgraph.Edge
	starts := make(map[int]bool)
	finals := make(map[int]bool)

	for _, p := range g.Productions {
		if len(p.Body) == 0 {
			out.EpsProductions[p.Head] = true
			continue
		}
		first := a.NextN(len(p.Body) + 1)
		v0 := first
		vk := first + len(p.Body)
		for i, sym := range p.Body {
			edges = append(edges, lgraph.Edge{From: first + i, To: first + i + 1, Label: sym.Name})
		}
		out.HeadByStartFinalPair[StartFinal{Start: v0, Final: vk}] = p.Head
		starts[v0] = true
		finals[vk] = true
	}

	graph, err := lgraph.FromEdges(edges)
	if err != nil {
		return nil, fmt.Errorf("FromGrammar: %w", err)
	}
	graph.StartStates = starts
	graph.FinalStates = finals
	out.Graph = graph
	return out, nil
}

// FromRegexProductions builds an RFA directly from "HEAD regex" lines
// (spec §4.7's regex-form path), without going through a Grammar/CNF. Each
// line's regex is parsed, converted to a minimized DFA, and its states are
// given disjoint ids via a drawn from a. Every DFA transition (p, x, q)
// becomes an edge in the shared graph; every final state f registers
// (start, f) -> HEAD; a head whose DFA start state is itself final is
// recorded as ε-producing. The first line's head is the RFA's start
// symbol.
func FromRegexProductions(lines []string, a *alloc.IDs) (*RFA, error) {
	if a == nil {
		a = alloc.New()
	}
	out := &RFA{
		HeadByStartFinalPair: make(map[StartFinal]string),
		EpsProductions:       make(map[string]bool),
	}

	var edges []lgraph.Edge
	starts := make(map[int]bool)
	finals := make(map[int]bool)

	count := 0
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
			return nil, fmt.Errorf("FromRegexProductions: line %d: %q: %w", i+1, line, ErrParse)
		}
		head := strings.TrimSpace(parts[0])
		regexStr := parts[1]
		if count == 0 {
			out.StartSymbol = head
		}
		count++

		node, err := automaton.Parse(regexStr)
		if err != nil {
			return nil, fmt.Errorf("FromRegexProductions: line %d: %w", i+1, err)
		}
		dfa := fsm.Determinize(automaton.ToNFA(node)).Minimize()

		offset := a.NextN(dfa.NumStates)
		startID := offset + dfa.Start
		starts[startID] = true
		for s := 0; s < dfa.NumStates; s++ {
			for x, t := range dfa.Trans[s] {
				edges = append(edges, lgraph.Edge{From: offset + s, To: offset + t, Label: x})
			}
		}
		for s := 0; s < dfa.NumStates; s++ {
			if !dfa.Finals[s] {
				continue
			}
			finalID := offset + s
			finals[finalID] = true
			out.HeadByStartFinalPair[StartFinal{Start: startID, Final: finalID}] = head
			if s == dfa.Start {
				out.EpsProductions[head] = true
			}
		}
	}
	if count == 0 {
		return nil, ErrNoProductions
	}

	graph, err := lgraph.FromEdges(edges)
	if err != nil {
		return nil, fmt.Errorf("FromRegexProductions: %w", err)
	}
	// A head whose fragment is a single state with no outgoing transition
	// never appears as an edge endpoint; register it as an isolated vertex
	// so start/final bookkeeping stays correct.
	for sf := range out.HeadByStartFinalPair {
		graph.Vertices[sf.Start] = true
		graph.Vertices[sf.Final] = true
	}
	graph.StartStates = starts
	graph.FinalStates = finals
	out.Graph = graph
	return out, nil
}
