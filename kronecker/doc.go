// Package kronecker implements the Intersection operation (spec component
// C4): the labeled Kronecker (tensor) product of two Labeled Graphs. This
// is the one operation every solver above it reaches for whenever it needs
// to combine a constraint automaton with a target graph, or an RFA with a
// CFPQ working graph, into a single product graph over which ordinary
// transitive closure already answers the combined question.
package kronecker
