// Package lgraph implements the Labeled Graph (spec component C2): a
// boolmatrix.Store plus the vertex, start-state, and final-state
// bookkeeping that turns a bare matrix family into something with graph
// semantics — edges in, edges and reachable-state sets out.
//
// Every other package above boolmatrix passes graphs around as this type:
// kronecker, closure, automaton, rfa and cfpq read a LabeledGraph's Store,
// and where kronecker, automaton and cfpq assemble a Store of their own
// they wrap it with FromStore before handing it on.
package lgraph
