// Package automaton implements the Automaton Builder (spec component C3):
// it converts a regular expression (in one of two interchangeable dialects)
// or a raw ε-NFA into a minimized DFA, then into an lgraph.LabeledGraph
// whose vertices are DFA states (spec §4.3).
package automaton

// Node is a regex AST node. Only the fields relevant to the concrete Kind
// are populated; this mirrors a small closed sum type without
// needing a full visitor hierarchy.
type Node struct {
	Kind  NodeKind
	Label string // NodeLiteral
	Left  *Node  // NodeConcat, NodeUnion
	Right *Node  // NodeConcat, NodeUnion
	Sub   *Node  // NodeStar, NodePlus, NodeOpt
}

// NodeKind enumerates regex AST node shapes.
type NodeKind int

const (
	NodeEpsilon NodeKind = iota
	NodeLiteral
	NodeConcat
	NodeUnion
	NodeStar
	NodePlus
	NodeOpt
)

func literal(label string) *Node { return &Node{Kind: NodeLiteral, Label: label} }
func concat(l, r *Node) *Node    { return &Node{Kind: NodeConcat, Left: l, Right: r} }
func union(l, r *Node) *Node     { return &Node{Kind: NodeUnion, Left: l, Right: r} }
func star(s *Node) *Node         { return &Node{Kind: NodeStar, Sub: s} }
func plus(s *Node) *Node         { return &Node{Kind: NodePlus, Sub: s} }
func opt(s *Node) *Node          { return &Node{Kind: NodeOpt, Sub: s} }
