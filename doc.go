// Package formallanguages is the top-level home for a regular- and
// context-free-path-query engine over labeled directed multigraphs, built
// as nine small packages stacked leaf-first:
//
//	boolmatrix/  — sparse boolean matrix store (C1), the bottom leaf
//	lgraph/      — Labeled Graph: boolmatrix.Store + vertex/start/final sets (C2)
//	automaton/   — regex/NFA -> minimized DFA -> lgraph.LabeledGraph (C3)
//	kronecker/   — labeled Kronecker product, used for automaton intersection (C4)
//	closure/     — transitive closure by squaring or incremental multiplication (C5)
//	grammar/     — production parsing, generate_epsilon, CNF/WCNF (C6)
//	rfa/         — Recursive Finite Automaton over a grammar's productions (C7)
//	cfpq/        — three cross-checked context-free path query solvers (C8)
//	rpq/         — regular path query solver (C9)
//
// There is no root-level API: every component is a self-contained package
// with its own doc.go; this file exists purely as the module-level
// overview `go doc` shows first.
package formallanguages
