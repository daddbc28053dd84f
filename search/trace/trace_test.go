package trace

import (
	"testing"

	"github.com/boukeas/searchtoy/search/emit"
)

func TestRecorderCollectsNodePoppedEvents(t *testing.T) {
	r := NewRecorder()

	r.Emit(emit.Event{Step: 1, Msg: "node_popped", Meta: map[string]any{
		"cost": 0.0, "state": "root", "incoming": "",
	}})
	r.Emit(emit.Event{Step: 1, Msg: "solution_yielded", Meta: map[string]any{"cost": 0.0}})
	r.Emit(emit.Event{Step: 2, Msg: "node_popped", Meta: map[string]any{
		"cost": 1.0, "state": "a", "incoming": "increment(1)",
	}})

	entries := r.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].StateLabel != "root" {
		t.Errorf("expected first entry label %q, got %q", "root", entries[0].StateLabel)
	}
	if entries[1].StateLabel != "a" {
		t.Errorf("expected second entry label %q, got %q", "a", entries[1].StateLabel)
	}
	if entries[1].Incoming != "increment(1)" {
		t.Errorf("expected incoming %q, got %q", "increment(1)", entries[1].Incoming)
	}
	if entries[1].StateHash == 0 {
		t.Error("expected a non-zero state hash")
	}
}

func TestRecorderResetClearsEntries(t *testing.T) {
	r := NewRecorder()
	r.Emit(emit.Event{Step: 1, Msg: "node_popped", Meta: map[string]any{"state": "x"}})
	if len(r.Entries()) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(r.Entries()))
	}

	r.Reset()
	if len(r.Entries()) != 0 {
		t.Errorf("expected no entries after Reset, got %d", len(r.Entries()))
	}
}

func TestMonotonicCost(t *testing.T) {
	if !MonotonicCost([]Entry{{Cost: 0}, {Cost: 1}, {Cost: 1}, {Cost: 3}}) {
		t.Error("expected non-decreasing costs to be monotonic")
	}
	if MonotonicCost([]Entry{{Cost: 2}, {Cost: 1}}) {
		t.Error("expected a cost decrease to not be monotonic")
	}
}

func TestNonIncreasingDepth(t *testing.T) {
	depth := map[string]int{"root": 0, "a": 1, "b": 1, "aa": 2}
	depthOf := func(label string) int { return depth[label] }

	ok := NonIncreasingDepth([]Entry{
		{StateLabel: "root"}, {StateLabel: "a"}, {StateLabel: "b"}, {StateLabel: "aa"},
	}, depthOf)
	if !ok {
		t.Error("expected non-backtracking depth sequence to pass")
	}

	bad := NonIncreasingDepth([]Entry{
		{StateLabel: "root"}, {StateLabel: "aa"}, {StateLabel: "a"},
	}, depthOf)
	if bad {
		t.Error("expected a depth drop followed by a shallower node to fail")
	}
}

func TestFirstOccurrence(t *testing.T) {
	entries := []Entry{{Step: 1, StateLabel: "root"}, {Step: 2, StateLabel: "a"}}
	if got := FirstOccurrence(entries, "a"); got != 2 {
		t.Errorf("expected step 2, got %d", got)
	}
	if got := FirstOccurrence(entries, "missing"); got != -1 {
		t.Errorf("expected -1 for a missing label, got %d", got)
	}
}
