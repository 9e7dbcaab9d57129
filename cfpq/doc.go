// Package cfpq implements the three Context-Free Path Query solvers (spec
// component C8) the engine requires to agree exactly on the same
// (graph, grammar) pair: Hellings' worklist algorithm, the matrix-fixpoint
// solver over a CNF grammar, and the tensor-fixpoint solver driven by a
// Recursive Finite Automaton (rfa). All three return the same PairSet
// shape so callers can cross-check them or swap solvers without touching
// call sites.
package cfpq
