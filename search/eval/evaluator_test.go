package eval

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/boukeas/searchtoy/search"
)

type stubState struct{ label string }

func (s *stubState) Clone() search.State { c := *s; return &c }
func (s *stubState) Hash() any           { return s.label }
func (s *stubState) String() string      { return s.label }

func (s *stubState) Equal(other search.State) bool {
	o, ok := other.(*stubState)
	return ok && o.label == s.label
}

func TestEvaluateParsesRating(t *testing.T) {
	model := &MockChatModel{Responses: []ChatOut{{Text: "42", InputTokens: 10, OutputTokens: 2}}}
	tracker := NewCostTracker()
	e := &LLMEvaluator{Model: model, ModelName: "gpt-4o-mini", Goal: "reach the exit", Cost: tracker}

	node := &search.Node{State: &stubState{label: "start"}}
	rating := e.Evaluate(node)

	if rating != 42.0 {
		t.Errorf("expected rating 42, got %g", rating)
	}
	if len(model.Calls) != 1 {
		t.Errorf("expected 1 model call, got %d", len(model.Calls))
	}
	if tracker.TotalCost() <= 0 {
		t.Errorf("expected a positive tracked cost, got %g", tracker.TotalCost())
	}
}

func TestEvaluateFallsBackOnUnparseableResponse(t *testing.T) {
	model := &MockChatModel{Responses: []ChatOut{{Text: "I cannot answer that."}}}
	e := &LLMEvaluator{Model: model, Goal: "reach the exit"}

	rating := e.Evaluate(&search.Node{State: &stubState{label: "start"}})
	if !math.IsInf(rating, 1) {
		t.Errorf("expected +Inf fallback, got %g", rating)
	}
}

func TestEvaluateFallsBackOnError(t *testing.T) {
	model := &MockChatModel{Err: errors.New("rate limited")}
	e := &LLMEvaluator{Model: model, Goal: "reach the exit", Fallback: 999}

	rating := e.Evaluate(&search.Node{State: &stubState{label: "start"}})
	if rating != 999.0 {
		t.Errorf("expected fallback 999, got %g", rating)
	}
	if len(model.Calls) != 1 {
		t.Errorf("expected 1 model call, got %d", len(model.Calls))
	}
}

func TestEvaluateRetriesTransientErrors(t *testing.T) {
	model := &failNTimesModel{failures: 2, then: ChatOut{Text: "7"}}
	e := &LLMEvaluator{
		Model: model,
		Goal:  "reach the exit",
		Retry: &RetryPolicy{
			MaxAttempts: 3,
			BaseDelay:   time.Millisecond,
			MaxDelay:    5 * time.Millisecond,
			Retryable:   func(error) bool { return true },
		},
	}

	rating := e.Evaluate(&search.Node{State: &stubState{label: "start"}})
	if rating != 7.0 {
		t.Errorf("expected rating 7, got %g", rating)
	}
	if model.calls != 3 {
		t.Errorf("expected 3 calls, got %d", model.calls)
	}
}

// failNTimesModel fails its first `failures` calls, then returns `then`.
type failNTimesModel struct {
	failures int
	then     ChatOut
	calls    int
}

func (m *failNTimesModel) Chat(context.Context, []Message) (ChatOut, error) {
	m.calls++
	if m.calls <= m.failures {
		return ChatOut{}, errors.New("transient")
	}
	return m.then, nil
}

func TestCostTrackerTracksPerModelCosts(t *testing.T) {
	tracker := NewCostTracker()
	tracker.Record("gpt-4o-mini", 1000, 500)
	tracker.Record("gpt-4o-mini", 1000, 500)

	if tracker.TotalCost() <= 0 {
		t.Errorf("expected a positive total cost, got %g", tracker.TotalCost())
	}
	byModel := tracker.CostByModel()
	if diff := math.Abs(tracker.TotalCost() - byModel["gpt-4o-mini"]); diff > 1e-9 {
		t.Errorf("expected per-model cost to match total, diff %g", diff)
	}
	if len(tracker.Calls()) != 2 {
		t.Errorf("expected 2 recorded calls, got %d", len(tracker.Calls()))
	}
}
