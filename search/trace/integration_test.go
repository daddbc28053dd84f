package trace

import (
	"fmt"
	"iter"
	"reflect"
	"testing"

	"github.com/boukeas/searchtoy/search"
)

type counterState struct{ value, limit int }

func (c *counterState) Clone() search.State { clone := *c; return &clone }
func (c *counterState) Hash() any           { return c.value }
func (c *counterState) String() string      { return fmt.Sprintf("counter(%d)", c.value) }

func (c *counterState) Equal(other search.State) bool {
	o, ok := other.(*counterState)
	return ok && o.value == c.value
}

var incrementOperator, _ = search.NewOperator("increment", 1)

type counterGenerator struct{}

func (counterGenerator) Graph() bool            { return false }
func (counterGenerator) Requires() reflect.Type { return reflect.TypeOf(&counterState{}) }
func (counterGenerator) Operations(s search.State) iter.Seq[search.Operation] {
	cs := s.(*counterState)
	return func(yield func(search.Operation) bool) {
		if cs.value >= cs.limit {
			return
		}
		yield(incrementOperator.New(func(s search.State) { s.(*counterState).value++ }, 1))
	}
}

func TestRecorderObservesDepthFirstPopOrder(t *testing.T) {
	start := &counterState{limit: 4}
	if err := search.BindGenerator(start, counterGenerator{}); err != nil {
		t.Fatalf("BindGenerator: %v", err)
	}

	problem := search.NewProblem(start, func(s search.State) bool {
		return s.(*counterState).value >= 4
	})
	strategy, err := search.DepthFirst()
	if err != nil {
		t.Fatalf("DepthFirst: %v", err)
	}

	recorder := NewRecorder()
	strategy.Emitter = recorder
	strategy.RunID = "dfs-run"

	if _, err := problem.Solve(strategy, nil); err != nil {
		t.Fatalf("Solve: %v", err)
	}

	entries := recorder.Entries()
	if len(entries) == 0 {
		t.Fatal("expected at least one recorded entry")
	}
	if entries[0].StateLabel != "counter(0)" {
		t.Errorf("expected first entry %q, got %q", "counter(0)", entries[0].StateLabel)
	}
	if !MonotonicCost(entries) {
		t.Error("expected monotonically non-decreasing costs")
	}
	if last := entries[len(entries)-1].StateLabel; last != "counter(4)" {
		t.Errorf("expected last entry %q, got %q", "counter(4)", last)
	}
}
