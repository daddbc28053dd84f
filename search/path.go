package search

import "iter"

// Path is the lazily-described chain of (state, operation) pairs from the
// root of a search tree to a chosen node, in forward order. The node's own
// (terminal) state is not paired with an operation; callers read it
// separately from the Node itself.
type Path struct {
	states     []State
	operations []Operation
}

func newPath(n *Node) Path {
	var states []State
	var ops []Operation
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		states = append(states, cur.State)
		ops = append(ops, cur.Incoming)
	}
	states = append(states, rootOf(n).State)
	reverseStates(states)
	reverseOperations(ops)
	return Path{states: states, operations: ops}
}

func rootOf(n *Node) *Node {
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

func reverseStates(s []State) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseOperations(o []Operation) {
	for i, j := 0, len(o)-1; i < j; i, j = i+1, j-1 {
		o[i], o[j] = o[j], o[i]
	}
}

// States returns the states along the path, root first, including the
// terminal state.
func (p Path) States() []State {
	return p.states
}

// Operations returns the operations along the path, in the order they were
// applied. len(Operations()) == len(States()) - 1.
func (p Path) Operations() []Operation {
	return p.operations
}

// All iterates the (state, operation) pairs of the path; the terminal state
// is not yielded, matching the source library's __iter__.
func (p Path) All() iter.Seq2[State, Operation] {
	return func(yield func(State, Operation) bool) {
		for i, op := range p.operations {
			if !yield(p.states[i], op) {
				return
			}
		}
	}
}
