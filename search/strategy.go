package search

import (
	"github.com/boukeas/searchtoy/search/emit"
	"github.com/boukeas/searchtoy/search/metrics"
)

// Methods lists the names of every available search strategy.
var Methods = []string{"DepthFirst", "BreadthFirst", "BestFirst"}

// BlindMethods lists the strategies usable without an evaluator.
var BlindMethods = []string{"DepthFirst", "BreadthFirst"}

// Strategy drives the search loop over a Frontier of a particular
// discipline, optionally ordered by an Evaluator. Construct one with
// DepthFirst, BreadthFirst, or BestFirst; reuse across multiple Problem
// queries is fine, each call to Search resets the explored/solutions
// counters and builds a fresh Frontier.
type Strategy struct {
	name        string
	evaluator   Evaluator
	newFrontier func(Evaluator) Frontier
	nbExplored  int
	nbSolutions int

	// Emitter, if set, receives node_popped/solution_yielded/bound_tightened
	// events during Search. Nil by default: observability is opt-in.
	Emitter emit.Emitter

	// RunID tags every event this strategy emits, letting a caller
	// correlate events from concurrently running searches.
	RunID string

	// Metrics, if set, receives Prometheus counter/gauge/histogram updates
	// during Search. Nil by default.
	Metrics *metrics.PrometheusMetrics
}

// Name returns the strategy's constructor name ("DepthFirst", "BreadthFirst",
// or "BestFirst"), used as the strategy label on emitted metrics.
func (st *Strategy) Name() string { return st.name }

// NbExplored returns the number of nodes popped from the frontier during
// the most recent search.
func (st *Strategy) NbExplored() int { return st.nbExplored }

// NbSolutions returns the number of solutions yielded during the most
// recent search.
func (st *Strategy) NbSolutions() int { return st.nbSolutions }

// DepthFirst explores the frontier last-in-first-out. With no evaluator it
// uses a Stack; with one, an OrderedStack (informed depth-first).
func DepthFirst(evaluator ...Evaluator) (*Strategy, error) {
	ev := singleEvaluator(evaluator)
	if ev == nil {
		return &Strategy{name: "DepthFirst", newFrontier: func(Evaluator) Frontier { return NewStack() }}, nil
	}
	return &Strategy{
		name:        "DepthFirst",
		evaluator:   ev,
		newFrontier: func(e Evaluator) Frontier { return NewOrderedStack(e) },
	}, nil
}

// BreadthFirst explores the frontier first-in-first-out. With no evaluator
// it uses a Queue; with one, an OrderedQueue (informed breadth-first).
func BreadthFirst(evaluator ...Evaluator) (*Strategy, error) {
	ev := singleEvaluator(evaluator)
	if ev == nil {
		return &Strategy{name: "BreadthFirst", newFrontier: func(Evaluator) Frontier { return NewQueue() }}, nil
	}
	return &Strategy{
		name:        "BreadthFirst",
		evaluator:   ev,
		newFrontier: func(e Evaluator) Frontier { return NewOrderedQueue(e) },
	}, nil
}

// BestFirst explores a globally evaluator-ordered PriorityQueue. Unlike
// DepthFirst and BreadthFirst, an evaluator is required.
func BestFirst(evaluator Evaluator) (*Strategy, error) {
	if evaluator == nil {
		return nil, evaluatorError(ErrEvaluatorMissing, "BestFirst")
	}
	return &Strategy{
		name:        "BestFirst",
		evaluator:   evaluator,
		newFrontier: func(e Evaluator) Frontier { return NewPriorityQueue(e) },
	}, nil
}

// singleEvaluator implements the "optional evaluator" ergonomics of an
// evaluator=nil default argument using a variadic parameter; only the first
// value given is used.
func singleEvaluator(evaluators []Evaluator) Evaluator {
	if len(evaluators) == 0 {
		return nil
	}
	return evaluators[0]
}
