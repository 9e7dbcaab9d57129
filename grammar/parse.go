package grammar

import (
	"fmt"
	"strings"

	"github.com/SmirnovOleg/formal-languages/automaton"
	"github.com/SmirnovOleg/formal-languages/internal/fsm"
)

// ParseSymbolic builds a Grammar from the symbolic front-end (spec §4.6,
// §6): each line is "HEAD sym1 sym2 ..." with either "eps" or no body
// tokens at all on the right-hand side denoting an empty (ε) body — the
// worked examples in spec §8 write a nullable nonterminal's ε-production
// as a bare head line, e.g. a grammar's trailing "S" line. The start
// symbol is always the first line's head.
func ParseSymbolic(lines []string) (*Grammar, error) {
	g := &Grammar{}
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		tokens := strings.Fields(line)
		head := tokens[0]
		if g.Start == "" {
			g.Start = head
		}
		body := tokens[1:]
		if len(body) == 1 && body[0] == "eps" {
			body = nil
		}
		syms := make([]Symbol, len(body))
		for j, tok := range body {
			if tok == "eps" {
				return nil, fmt.Errorf("ParseSymbolic: line %d: %q: %w", i+1, line, ErrParse)
			}
			syms[j] = classify(tok)
		}
		g.Productions = append(g.Productions, Production{Head: head, Body: syms})
	}
	if len(g.Productions) == 0 {
		return nil, ErrNoProductions
	}
	return g, nil
}

// ParseRegexRHS builds a Grammar from the regex-on-the-right front-end
// (spec §4.6, §6): each line is "HEAD regex", the regex ranging over
// terminals and nonterminals and interpreted as the ε-NFA that recognizes
// it. Each DFA edge (p, x, q) of the regex's minimized DFA yields a
// production P → x Q for fresh per-state nonterminals P, Q; p final yields
// P → ε; and the original head is bridged to the DFA's start-state
// variable by a single production HEAD → P_start.
func ParseRegexRHS(lines []string) (*Grammar, error) {
	g := &Grammar{}
	fresh := 0
	newVar := func(head string, state int) string {
		fresh++
		return fmt.Sprintf("%s#%d_%d", head, state, fresh)
	}

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
			return nil, fmt.Errorf("ParseRegexRHS: line %d: %q: %w", i+1, line, ErrParse)
		}
		head := strings.TrimSpace(parts[0])
		regexStr := parts[1]
		if g.Start == "" {
			g.Start = head
		}

		node, err := automaton.Parse(regexStr)
		if err != nil {
			return nil, fmt.Errorf("ParseRegexRHS: line %d: %w", i+1, err)
		}
		dfa := fsm.Determinize(automaton.ToNFA(node)).Minimize()

		stateVar := make([]string, dfa.NumStates)
		for s := 0; s < dfa.NumStates; s++ {
			stateVar[s] = newVar(head, s)
		}
		for s := 0; s < dfa.NumStates; s++ {
			for x, t := range dfa.Trans[s] {
				g.Productions = append(g.Productions, Production{
					Head: stateVar[s],
					Body: []Symbol{classify(x), {Name: stateVar[t], Terminal: false}},
				})
			}
			if dfa.Finals[s] {
				g.Productions = append(g.Productions, Production{Head: stateVar[s]})
			}
		}
		g.Productions = append(g.Productions, Production{
			Head: head,
			Body: []Symbol{{Name: stateVar[dfa.Start], Terminal: false}},
		})
	}
	if len(g.Productions) == 0 {
		return nil, ErrNoProductions
	}
	return g, nil
}
