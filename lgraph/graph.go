// Package lgraph implements the Labeled Graph (spec component C2): a
// boolmatrix.Store plus the vertex/start/final bookkeeping and edge-list
// construction that gives the matrix store graph semantics.
package lgraph

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/SmirnovOleg/formal-languages/boolmatrix"
	"github.com/SmirnovOleg/formal-languages/internal/fsm"
)

// Edge is a single directed, labeled edge between two vertex ids.
type Edge struct {
	From, To int
	Label    string
}

// LabeledGraph is a boolmatrix.Store plus the vertex/start/final sets the
// spec's Labeled Graph (§3, C2) requires. Treated as immutable after
// construction except where explicitly documented (FromLabelToBoolMatrix).
type LabeledGraph struct {
	Store        *boolmatrix.Store
	Vertices     map[int]bool
	StartStates  map[int]bool
	FinalStates  map[int]bool
	matrixSize   int
}

// FromEdges builds a LabeledGraph from an edge list: dimension N equals
// max(vertex id)+1 (0 for an empty graph). By default every referenced
// vertex is both a start and a final state, per spec §3.
func FromEdges(edges []Edge) (*LabeledGraph, error) {
	n := 0
	vertices := make(map[int]bool)
	for _, e := range edges {
		if e.From < 0 || e.To < 0 {
			return nil, fmt.Errorf("FromEdges: %w", ErrNegativeVertex)
		}
		vertices[e.From] = true
		vertices[e.To] = true
		if e.From+1 > n {
			n = e.From + 1
		}
		if e.To+1 > n {
			n = e.To + 1
		}
	}

	store, err := boolmatrix.NewStore(n)
	if err != nil {
		return nil, fmt.Errorf("FromEdges: %w", err)
	}
	for _, e := range edges {
		if err := store.Set(e.Label, e.From, e.To, true); err != nil {
			return nil, fmt.Errorf("FromEdges: %w", err)
		}
	}

	starts := make(map[int]bool, len(vertices))
	finals := make(map[int]bool, len(vertices))
	for v := range vertices {
		starts[v] = true
		finals[v] = true
	}

	return &LabeledGraph{
		Store:       store,
		Vertices:    vertices,
		StartStates: starts,
		FinalStates: finals,
		matrixSize:  n,
	}, nil
}

// FromText parses one "from label to" triple per line (spec §6 graph-file
// format; reading the lines out of a file is the caller's job — see
// SPEC_FULL.md's ambient-stack boundary note).
func FromText(lines []string) (*LabeledGraph, error) {
	edges := make([]Edge, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("FromText: line %d %q: %w", i+1, line, ErrParse)
		}
		from, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("FromText: line %d: bad from-vertex: %w", i+1, ErrParse)
		}
		to, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("FromText: line %d: bad to-vertex: %w", i+1, ErrParse)
		}
		edges = append(edges, Edge{From: from, To: to, Label: fields[1]})
	}
	return FromEdges(edges)
}

// fromStore constructs a LabeledGraph directly from a pre-built store (the
// "internal constructor" spec §3 mentions), used via FromStore by
// kronecker.Intersect, automaton's fromDFA and cfpq.TensorFixpoint, where
// the store is assembled by the caller.
func fromStore(store *boolmatrix.Store, vertices, starts, finals map[int]bool) *LabeledGraph {
	return &LabeledGraph{
		Store:       store,
		Vertices:    vertices,
		StartStates: starts,
		FinalStates: finals,
		matrixSize:  store.Size(),
	}
}

// FromStore is the exported form of fromStore, for packages outside lgraph
// (kronecker, automaton) that assemble a Store directly.
func FromStore(store *boolmatrix.Store, vertices, starts, finals map[int]bool) *LabeledGraph {
	return fromStore(store, vertices, starts, finals)
}

// VerticesNum returns the matrix dimension N, never smaller than the
// store's own size (spec §4.2).
func (g *LabeledGraph) VerticesNum() int {
	if g == nil {
		return 0
	}
	n := g.matrixSize
	if s := g.Store.Size(); s > n {
		n = s
	}
	return n
}

// EdgesCounter returns {label -> nvals} for display/inspection.
func (g *LabeledGraph) EdgesCounter() (map[string]int, error) {
	if err := boolmatrix.ValidateNotNil(g, ErrNilGraph); err != nil {
		return nil, err
	}
	out := make(map[string]int, len(g.Store.Labels()))
	for _, lb := range g.Store.Labels() {
		m, err := g.Store.Matrix(lb)
		if err != nil {
			return nil, fmt.Errorf("EdgesCounter: %w", err)
		}
		out[lb] = m.NVals()
	}
	return out, nil
}

// FromLabelToBoolMatrix returns the boolean matrix for a single label,
// allocating an all-false matrix of the graph's dimension if the label has
// never been used. This is the one documented mutation point on an
// otherwise-immutable LabeledGraph (spec §3).
func (g *LabeledGraph) FromLabelToBoolMatrix(label string) (*boolmatrix.BoolMatrix, error) {
	if err := boolmatrix.ValidateNotNil(g, ErrNilGraph); err != nil {
		return nil, err
	}
	return g.Store.Matrix(label)
}

// ToNFA rebuilds a standard NFA with one state per vertex id 0..N-1, one
// symbol per label, and transitions from non-zero matrix entries (spec
// §4.2). starts/finals override the graph's own start/final sets for this
// view only.
func (g *LabeledGraph) ToNFA(starts, finals map[int]bool) (*fsm.NFA, error) {
	if err := boolmatrix.ValidateNotNil(g, ErrNilGraph); err != nil {
		return nil, err
	}
	n := g.VerticesNum()
	a := fsm.NewNFA(n)
	for _, lb := range g.Store.Labels() {
		m, err := g.Store.Matrix(lb)
		if err != nil {
			return nil, fmt.Errorf("ToNFA: %w", err)
		}
		for _, e := range m.IterEntries() {
			a.AddTransition(e.Row, lb, e.Col)
		}
	}
	// fsm.NFA models a single start state; an NFA-with-multiple-starts is
	// represented by wiring a synthetic start with ε-transitions to each
	// requested start state (standard construction, keeps fsm generic).
	synthetic := n
	a.NumStates = n + 1
	for s := range starts {
		a.AddTransition(synthetic, "", s)
	}
	a.Start = synthetic
	a.Finals = make(map[int]bool, len(finals))
	for f := range finals {
		a.Finals[f] = true
	}
	return a, nil
}

// sortedInts returns a vertex-id set in ascending order; it backs the
// Sorted* accessors below.
func sortedInts(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// SortedVertices returns the graph's vertex ids in ascending order.
func (g *LabeledGraph) SortedVertices() []int {
	if g == nil {
		return nil
	}
	return sortedInts(g.Vertices)
}

// SortedStartStates returns the graph's start states in ascending order.
func (g *LabeledGraph) SortedStartStates() []int {
	if g == nil {
		return nil
	}
	return sortedInts(g.StartStates)
}

// SortedFinalStates returns the graph's final states in ascending order.
func (g *LabeledGraph) SortedFinalStates() []int {
	if g == nil {
		return nil
	}
	return sortedInts(g.FinalStates)
}
