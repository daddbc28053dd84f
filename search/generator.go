package search

import (
	"iter"
	"reflect"
	"sync"
)

// Generator enumerates the operations applicable to a state and declares
// whether the resulting search space should be treated as a tree or a
// graph. Graph returning true selects duplicate-state detection (see
// engine.go's successor management stage).
type Generator interface {
	// Graph reports whether duplicate states reached by different paths
	// should be merged (graph search) or kept distinct (tree search).
	Graph() bool

	// Requires returns the State type this generator is written against,
	// or nil if it places no constraint. BindGenerator rejects attaching
	// the generator to an incompatible state type.
	Requires() reflect.Type

	// Operations lazily yields the operations applicable to s, in the
	// order successors should be considered.
	Operations(s State) iter.Seq[Operation]
}

// ValidatingGenerator is a Generator whose Operations may yield operations
// that produce invalid successors; IsValid filters the materialized
// successor states. A Generator that does not implement this interface is
// treated as consistent: every operation it yields always produces a valid
// successor.
type ValidatingGenerator interface {
	Generator
	IsValid(s State) bool
}

var (
	generatorsMu sync.RWMutex
	generators   = map[reflect.Type]Generator{}
)

// BindGenerator attaches g to the state type of sample. Binding is one-shot
// per type; a second call for the same type returns ErrGeneratorRebind. If
// g.Requires() is non-nil and sample's type is not assignable to it,
// ErrGeneratorIncompatible is returned.
func BindGenerator(sample State, g Generator) error {
	t := reflect.TypeOf(sample)
	if req := g.Requires(); req != nil && !t.AssignableTo(req) {
		return generatorError(ErrGeneratorIncompatible, t.String())
	}

	generatorsMu.Lock()
	defer generatorsMu.Unlock()
	if _, exists := generators[t]; exists {
		return generatorError(ErrGeneratorRebind, t.String())
	}
	generators[t] = g
	return nil
}

func generatorFor(s State) (Generator, error) {
	t := reflect.TypeOf(s)
	generatorsMu.RLock()
	defer generatorsMu.RUnlock()
	g, ok := generators[t]
	if !ok {
		return nil, generatorError(ErrGeneratorMissing, t.String())
	}
	return g, nil
}

// successors lazily expands n using g, applying IsValid filtering when g is
// a ValidatingGenerator. This is the single expansion routine shared by the
// consistent and inconsistent cases (a simplification over the source
// library's two generator base classes, unified per REDESIGN FLAGS).
func successors(n *Node, g Generator) iter.Seq[*Node] {
	validator, filtered := g.(ValidatingGenerator)
	return func(yield func(*Node) bool) {
		for op := range g.Operations(n.State) {
			child := op.Apply(n.State)
			if filtered && !validator.IsValid(child) {
				continue
			}
			successor := &Node{
				State:    child,
				Parent:   n,
				Incoming: op,
				Cost:     n.Cost + op.Cost(),
			}
			if !yield(successor) {
				return
			}
		}
	}
}
