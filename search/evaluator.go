package search

import (
	"math/rand"
	"reflect"
	"sync"
	"time"
)

// Evaluator maps a node to a numeric value used to order an evaluated
// frontier; smaller values are more promising. Evaluate may look at
// node.Parent, which is useful for evaluators that depend on the operation
// just applied rather than purely on the resulting state.
//
// Non-random evaluators must be pure functions of the node: the engine may
// call Evaluate more than once for the same node and requires identical
// results each time.
type Evaluator interface {
	// Requires returns the State type this evaluator is written against,
	// or nil if it accepts any state. A strategy rejects an evaluator
	// whose Requires is incompatible with the Problem's start state.
	Requires() reflect.Type

	// Evaluate returns node's heuristic value.
	Evaluate(node *Node) float64
}

// EvaluatorFunc adapts a plain function to the Evaluator interface,
// mirroring the source library's @evaluator(requires=...) decorator for the
// common case where a closure is more convenient than a declared type.
// Requirement is returned by Requires; leave it nil to accept any state type.
type EvaluatorFunc struct {
	Requirement reflect.Type
	Func        func(node *Node) float64
}

// Requires implements Evaluator.
func (e EvaluatorFunc) Requires() reflect.Type { return e.Requirement }

// Evaluate implements Evaluator.
func (e EvaluatorFunc) Evaluate(node *Node) float64 { return e.Func(node) }

var (
	randomEvaluatorMu sync.Mutex
	randomEvaluatorRNG = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// randomEvaluator is the built-in Evaluator returning a uniformly random
// positive value per call, equivalent to randomized frontier ordering.
type randomEvaluator struct{}

func (randomEvaluator) Requires() reflect.Type { return nil }

func (randomEvaluator) Evaluate(*Node) float64 {
	randomEvaluatorMu.Lock()
	defer randomEvaluatorMu.Unlock()
	return float64(randomEvaluatorRNG.Intn(1000) + 1)
}

// RandomEvaluator orders frontier nodes randomly; it accepts any state type.
var RandomEvaluator Evaluator = randomEvaluator{}
