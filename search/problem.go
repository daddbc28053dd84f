package search

import (
	"iter"
	"time"
)

// Solution is a node reached during search for which the Problem's goal
// predicate holds. It is a plain alias for Node: a Solution already carries
// State, Cost, and Path() without any separate wrapper type.
type Solution = Node

// Limits bounds the number of solutions a Solutions query returns.
// MaxSolutions of 0 means unlimited.
type Limits struct {
	MaxSolutions int
}

// Problem couples an initial state with a predicate identifying goal
// states. It does not itself know how to search; a Strategy drives that.
type Problem struct {
	Start      State
	IsSolution func(State) bool
}

// NewProblem constructs a Problem. isSolution is consulted with the state
// under examination each time a node is popped from the frontier.
func NewProblem(start State, isSolution func(State) bool) *Problem {
	return &Problem{Start: start, IsSolution: isSolution}
}

// Solutions returns a lazy sequence of every solution strategy finds,
// subject to bounds, truncated to limits.MaxSolutions if positive.
func (p *Problem) Solutions(strategy *Strategy, bounds Bounds, limits Limits) (iter.Seq[*Solution], error) {
	seq, err := strategy.Search(p, bounds)
	if err != nil {
		return nil, err
	}
	max := limits.MaxSolutions
	return func(yield func(*Solution) bool) {
		start := time.Now()
		defer func() {
			if strategy.Metrics != nil {
				strategy.Metrics.ObserveSolutionsDuration(strategy.name, time.Since(start))
			}
		}()
		count := 0
		for solution := range seq {
			if max > 0 && count >= max {
				return
			}
			count++
			if !yield(solution) {
				return
			}
		}
	}, nil
}

// Solve returns the first solution strategy finds, or ErrNoSolution if the
// frontier is exhausted without finding one.
func (p *Problem) Solve(strategy *Strategy, upperBound *float64) (*Solution, error) {
	seq, err := p.Solutions(strategy, Bounds{Upper: upperBound}, Limits{MaxSolutions: 1})
	if err != nil {
		return nil, err
	}
	for solution := range seq {
		return solution, nil
	}
	return nil, ErrNoSolution
}

// Optimize drains every solution strategy finds within bounds and returns
// the last one (the tightening-bound semantics of Solutions mean later
// solutions are never worse), or ErrNoSolution if none were found.
func (p *Problem) Optimize(strategy *Strategy, bounds Bounds) (*Solution, error) {
	seq, err := p.Solutions(strategy, bounds, Limits{})
	if err != nil {
		return nil, err
	}
	var best *Solution
	for solution := range seq {
		best = solution
	}
	if best == nil {
		return nil, ErrNoSolution
	}
	return best, nil
}
