package automaton

import "github.com/SmirnovOleg/formal-languages/internal/fsm"

// fragment is a Thompson-construction fragment: a sub-automaton with one
// designated start and one designated accepting state, built over a shared
// state counter so fragments can be composed without renumbering.
type fragment struct {
	start, accept int
}

// thompsonBuilder accumulates states and transitions for one compiled regex.
type thompsonBuilder struct {
	nfa      *fsm.NFA
	numState int
}

func newThompsonBuilder() *thompsonBuilder {
	return &thompsonBuilder{nfa: fsm.NewNFA(0)}
}

func (b *thompsonBuilder) newState() int {
	id := b.numState
	b.numState++
	return id
}

// compile recursively lowers a regex AST node into a Thompson fragment.
func (b *thompsonBuilder) compile(n *Node) fragment {
	switch n.Kind {
	case NodeEpsilon:
		s := b.newState()
		a := b.newState()
		b.nfa.AddTransition(s, "", a)
		return fragment{start: s, accept: a}
	case NodeLiteral:
		s := b.newState()
		a := b.newState()
		b.nfa.AddTransition(s, n.Label, a)
		return fragment{start: s, accept: a}
	case NodeConcat:
		left := b.compile(n.Left)
		right := b.compile(n.Right)
		b.nfa.AddTransition(left.accept, "", right.start)
		return fragment{start: left.start, accept: right.accept}
	case NodeUnion:
		left := b.compile(n.Left)
		right := b.compile(n.Right)
		s := b.newState()
		a := b.newState()
		b.nfa.AddTransition(s, "", left.start)
		b.nfa.AddTransition(s, "", right.start)
		b.nfa.AddTransition(left.accept, "", a)
		b.nfa.AddTransition(right.accept, "", a)
		return fragment{start: s, accept: a}
	case NodeStar:
		sub := b.compile(n.Sub)
		s := b.newState()
		a := b.newState()
		b.nfa.AddTransition(s, "", sub.start)
		b.nfa.AddTransition(s, "", a)
		b.nfa.AddTransition(sub.accept, "", sub.start)
		b.nfa.AddTransition(sub.accept, "", a)
		return fragment{start: s, accept: a}
	case NodePlus:
		sub := b.compile(n.Sub)
		a := b.newState()
		b.nfa.AddTransition(sub.accept, "", sub.start)
		b.nfa.AddTransition(sub.accept, "", a)
		return fragment{start: sub.start, accept: a}
	case NodeOpt:
		sub := b.compile(n.Sub)
		s := b.newState()
		a := b.newState()
		b.nfa.AddTransition(s, "", sub.start)
		b.nfa.AddTransition(s, "", a)
		b.nfa.AddTransition(sub.accept, "", a)
		return fragment{start: s, accept: a}
	default:
		panic("automaton: unreachable AST node kind")
	}
}

// ToNFA runs Thompson construction over a regex AST, returning an ε-NFA
// with a single start and single accepting state.
func ToNFA(n *Node) *fsm.NFA {
	b := newThompsonBuilder()
	frag := b.compile(n)
	b.nfa.NumStates = b.numState
	b.nfa.Start = frag.start
	b.nfa.Finals = map[int]bool{frag.accept: true}
	return b.nfa
}
