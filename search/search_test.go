package search

import (
	"fmt"
	"iter"
	"reflect"
	"testing"
)

// counterState is a minimal integer counter used to exercise the core
// engine without pulling in a full example puzzle.
type counterState struct {
	value int
	limit int
}

func (c *counterState) Clone() State {
	clone := *c
	return &clone
}

func (c *counterState) Hash() any { return c.value }

func (c *counterState) Equal(other State) bool {
	o, ok := other.(*counterState)
	return ok && o.value == c.value
}

func (c *counterState) String() string { return fmt.Sprintf("counter(%d)", c.value) }

var incrementOperator, _ = NewOperator("increment", 1)

func incrementOp(by int) Operation {
	return incrementOperator.New(func(s State) {
		s.(*counterState).value += by
	}, float64(by), by)
}

type treeGenerator struct{}

func (treeGenerator) Graph() bool             { return false }
func (treeGenerator) Requires() reflect.Type  { return reflect.TypeOf(&counterState{}) }
func (g treeGenerator) Operations(s State) iter.Seq[Operation] {
	cs := s.(*counterState)
	return func(yield func(Operation) bool) {
		if cs.value >= cs.limit {
			return
		}
		if !yield(incrementOp(1)) {
			return
		}
		yield(incrementOp(2))
	}
}

type graphGenerator struct{ treeGenerator }

func (graphGenerator) Graph() bool { return true }

func freshProblem(t *testing.T, gen Generator, limit int) *Problem {
	t.Helper()
	start := &counterState{limit: limit}
	if err := BindGenerator(start, gen); err != nil {
		t.Fatalf("BindGenerator: %v", err)
	}
	return NewProblem(start, func(s State) bool {
		return s.(*counterState).value >= limit
	})
}

func TestOperationApplyClonesState(t *testing.T) {
	start := &counterState{value: 0, limit: 10}
	op := incrementOp(3)
	next := op.Apply(start)

	if start.value != 0 {
		t.Fatalf("Apply mutated the original state: value = %d", start.value)
	}
	if next.(*counterState).value != 3 {
		t.Fatalf("Apply produced value = %d, want 3", next.(*counterState).value)
	}
}

func TestOperationString(t *testing.T) {
	op := incrementOp(2)
	want := "[2] increment(2)"
	if got := op.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestNodePathInvariants(t *testing.T) {
	root := NewRoot(&counterState{value: 0, limit: 10})
	op1 := incrementOp(1)
	child1 := &Node{State: op1.Apply(root.State), Parent: root, Incoming: op1, Cost: root.Cost + op1.Cost()}
	op2 := incrementOp(2)
	child2 := &Node{State: op2.Apply(child1.State), Parent: child1, Incoming: op2, Cost: child1.Cost + op2.Cost()}

	if child2.Cost != 3 {
		t.Fatalf("cumulative cost = %v, want 3", child2.Cost)
	}

	path := child2.Path()
	if len(path.States()) != len(path.Operations())+1 {
		t.Fatalf("len(states) = %d, len(operations) = %d, want states = operations+1",
			len(path.States()), len(path.Operations()))
	}

	var visited []State
	for state, op := range path.All() {
		visited = append(visited, op.Apply(state))
	}
	last := visited[len(visited)-1]
	if !last.Equal(child2.State) {
		t.Fatalf("path does not reconstruct to the terminal state")
	}
}

func TestBindGeneratorIsOneShot(t *testing.T) {
	defer resetGenerators()
	sample := &counterState{}
	if err := BindGenerator(sample, treeGenerator{}); err != nil {
		t.Fatalf("first BindGenerator: %v", err)
	}
	if err := BindGenerator(sample, treeGenerator{}); err == nil {
		t.Fatal("expected rebind error, got nil")
	}
}

func TestDepthFirstPreOrder(t *testing.T) {
	defer resetGenerators()
	problem := freshProblem(t, treeGenerator{}, 2)
	strategy, err := DepthFirst()
	if err != nil {
		t.Fatalf("DepthFirst: %v", err)
	}
	solution, err := problem.Solve(strategy, nil)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	// Stack pushes successors in reverse, so pops the first-yielded
	// successor (increment-by-1) first at every branch.
	if solution.State.(*counterState).value != 2 {
		t.Fatalf("solution value = %d, want 2", solution.State.(*counterState).value)
	}
	if len(solution.Path().Operations()) != 2 {
		t.Fatalf("expected a pre-order path of 2 single-unit increments")
	}
}

func TestBreadthFirstFindsMinimumDepth(t *testing.T) {
	defer resetGenerators()
	problem := freshProblem(t, treeGenerator{}, 2)
	strategy, err := BreadthFirst()
	if err != nil {
		t.Fatalf("BreadthFirst: %v", err)
	}
	solution, err := problem.Solve(strategy, nil)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(solution.Path().Operations()) != 1 {
		t.Fatalf("expected a single-hop solution (increment by 2), got %d hops",
			len(solution.Path().Operations()))
	}
}

func TestBestFirstOptimizeReachesGoal(t *testing.T) {
	defer resetGenerators()
	problem := freshProblem(t, treeGenerator{}, 3)
	evaluator := EvaluatorFunc{Func: func(n *Node) float64 { return n.Cost }}
	strategy, err := BestFirst(evaluator)
	if err != nil {
		t.Fatalf("BestFirst: %v", err)
	}
	solution, err := problem.Optimize(strategy, Bounds{})
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}
	if solution.State.(*counterState).value < 3 {
		t.Fatalf("optimize returned a non-goal state")
	}
}

func TestUpperBoundPrunesExpansion(t *testing.T) {
	defer resetGenerators()
	problem := freshProblem(t, treeGenerator{}, 4)
	strategy, err := BreadthFirst()
	if err != nil {
		t.Fatalf("BreadthFirst: %v", err)
	}
	upper := 3.0
	seq, err := problem.Solutions(strategy, Bounds{Upper: &upper}, Limits{})
	if err != nil {
		t.Fatalf("Solutions: %v", err)
	}
	for solution := range seq {
		if solution.Cost >= 3 {
			t.Fatalf("solution cost %v >= upper bound 3", solution.Cost)
		}
	}
}

func TestGraphSearchDedupesSuccessors(t *testing.T) {
	defer resetGenerators()
	problem := freshProblem(t, graphGenerator{}, 4)
	strategy, err := BreadthFirst()
	if err != nil {
		t.Fatalf("BreadthFirst: %v", err)
	}
	_, err = problem.Solve(strategy, nil)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	// Reaching value 2 is possible via (1,1) or (2), both at cost 2; graph
	// search forwards the first discovery and drops the equal-cost
	// rediscovery, not both.
	if strategy.NbExplored() > 5 {
		t.Fatalf("graph search explored %d nodes, expected heavy deduplication", strategy.NbExplored())
	}
}

func TestSolveNoSolution(t *testing.T) {
	defer resetGenerators()
	start := &counterState{limit: 1}
	if err := BindGenerator(start, treeGenerator{}); err != nil {
		t.Fatalf("BindGenerator: %v", err)
	}
	problem := NewProblem(start, func(State) bool { return false })
	strategy, _ := DepthFirst()
	if _, err := problem.Solve(strategy, nil); err != ErrNoSolution {
		t.Fatalf("Solve error = %v, want ErrNoSolution", err)
	}
}

func TestHashJSONDeterministic(t *testing.T) {
	type payload struct {
		A int
		B string
	}
	h1, err := HashJSON(payload{A: 1, B: "x"})
	if err != nil {
		t.Fatalf("HashJSON: %v", err)
	}
	h2, err := HashJSON(payload{A: 1, B: "x"})
	if err != nil {
		t.Fatalf("HashJSON: %v", err)
	}
	if h1 != h2 {
		t.Fatalf("HashJSON not deterministic: %d != %d", h1, h2)
	}
}

// resetGenerators clears the package-level generator registry between
// tests; each test binds a fresh *counterState sample.
func resetGenerators() {
	generatorsMu.Lock()
	defer generatorsMu.Unlock()
	generators = map[reflect.Type]Generator{}
}
