// Package grammar implements the Grammar Normalizer (spec component C6):
// productions read from plain-symbol or right-hand-side-regex text,
// generate_epsilon computation, and conversion to Chomsky Normal Form and
// Weak CNF. The CFPQ solvers (cfpq) and the Recursive Finite Automaton
// builder (rfa) each consume whichever of these three shapes — raw
// productions, CNF, or WCNF — their own algorithm is defined over.
package grammar
