// Package automaton implements the Automaton Builder (spec component C3):
// parse a regular expression in one of two interchangeable dialects (or
// accept a raw ε-NFA), run it through Thompson construction, subset
// construction, and Hopcroft minimization, and hand back the result as an
// lgraph.LabeledGraph whose vertices are minimized DFA states (rpq's
// constraint automaton). Parse and ToNFA expose the AST and ε-NFA
// stages, which rfa and grammar determinize through internal/fsm.
//
// The ε-NFA/DFA engine itself lives in internal/fsm, shared with
// lgraph.ToNFA so neither package has to import the other.
package automaton
