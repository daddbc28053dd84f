package search

import (
	"fmt"
	"strings"
)

// Operation is an immutable, already-parameterized invocation of an
// Operator: applying it to a state clones the state and mutates the clone.
// Equal inputs must produce equal outputs; the core trusts clients to keep
// mutate deterministic and total over the states it claims to handle.
type Operation struct {
	name   string
	cost   float64
	args   []any
	mutate func(State)
}

// Name returns the declaring Operator's (or Action's) name.
func (op Operation) Name() string {
	return op.name
}

// Cost returns the cost carried by this invocation.
func (op Operation) Cost() float64 {
	return op.cost
}

// Apply clones s and runs the operation's mutation on the clone, returning
// the clone. It does not modify s.
func (op Operation) Apply(s State) State {
	clone := s.Clone()
	op.mutate(clone)
	return clone
}

// String renders the operation as "[cost] name(arg, arg, ...)", matching
// the source library's printable form.
func (op Operation) String() string {
	if len(op.args) == 0 {
		return fmt.Sprintf("[%s] %s()", formatCost(op.cost), op.name)
	}
	parts := make([]string, len(op.args))
	for i, a := range op.args {
		parts[i] = fmt.Sprint(a)
	}
	return fmt.Sprintf("[%s] %s(%s)", formatCost(op.cost), op.name, strings.Join(parts, ", "))
}

func formatCost(cost float64) string {
	if cost == float64(int64(cost)) {
		return fmt.Sprintf("%d", int64(cost))
	}
	return fmt.Sprintf("%g", cost)
}
