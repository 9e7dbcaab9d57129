// Package rfa implements the Recursive Finite Automaton (spec component
// C7): one DFA fragment per grammar nonterminal, embedded into a single
// shared Labeled Graph with a (start, final) -> nonterminal index. It is
// the bridge between grammar and cfpq's tensor-fixpoint solver, built
// either straight off a Grammar's raw productions or directly from
// "HEAD regex" production text, with vertex ids drawn from a shared
// internal/alloc allocator so fragments never collide.
package rfa
