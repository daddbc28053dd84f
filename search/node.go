package search

// Node places a State inside the search tree: a parent link, the operation
// that produced the state from its parent, and the cumulative cost along
// the path from the root. The root node has a nil Parent, a zero-value
// Incoming operation, and a Cost of 0.
//
// Nodes are immutable once constructed; the engine never mutates a Node in
// place, it builds new ones during expansion.
type Node struct {
	State    State
	Parent   *Node
	Incoming Operation
	Cost     float64
}

// NewRoot builds the root node of a search tree rooted at s.
func NewRoot(s State) *Node {
	return &Node{State: s}
}

// IsRoot reports whether n is the root of its search tree.
func (n *Node) IsRoot() bool {
	return n.Parent == nil
}

// Path reconstructs the sequence of (state, operation) pairs from the root
// to n, in forward order.
func (n *Node) Path() Path {
	return newPath(n)
}
