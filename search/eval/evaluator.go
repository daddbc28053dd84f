package eval

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"reflect"
	"regexp"
	"sync"
	"time"

	"github.com/boukeas/searchtoy/search"
)

// LLMEvaluator implements search.Evaluator by asking a ChatModel to rate how
// close a state's rendering is to a goal description, on a 0 (at the goal)
// to 100 (far from the goal) scale. It is a well-behaved drop-in for
// search.BestFirst, at the cost of real network latency and a nonzero
// chance of a provider returning an unparseable answer.
//
// A failed or unparseable call returns Fallback (worst-priority by default)
// rather than propagating an error, since search.Evaluator.Evaluate has no
// error return: a single flaky call should not abort an entire search.
type LLMEvaluator struct {
	Model     ChatModel
	ModelName string
	Goal      string

	// Render renders a state for the prompt. Defaults to state.String().
	Render func(search.State) string

	// Requirement restricts this evaluator to one state type, or nil to
	// accept any.
	Requirement reflect.Type

	// Retry, if set, retries a failed call per its policy.
	Retry *RetryPolicy

	// Timeout bounds a single call (including retries' total time is not
	// bounded by this; it bounds each individual attempt).
	Timeout time.Duration

	// Cost, if set, records token usage and USD cost for every call.
	Cost *CostTracker

	// Fallback is returned when a call fails or the response can't be
	// parsed as a number. Zero (the unset value) is treated as +Inf, the
	// least promising value a BestFirst frontier can order by.
	Fallback float64

	mu  sync.Mutex
	rng *rand.Rand
}

var ratingPattern = regexp.MustCompile(`-?\d+(\.\d+)?`)

// Requires implements search.Evaluator.
func (e *LLMEvaluator) Requires() reflect.Type { return e.Requirement }

// Evaluate implements search.Evaluator.
func (e *LLMEvaluator) Evaluate(node *search.Node) float64 {
	render := e.Render
	if render == nil {
		render = func(s search.State) string { return s.String() }
	}

	messages := []Message{
		{Role: RoleSystem, Content: "Rate how close the given state is to the goal on a scale from 0 " +
			"(at the goal) to 100 (far from the goal). Respond with only the number."},
		{Role: RoleUser, Content: fmt.Sprintf("Goal: %s\nState: %s", e.Goal, render(node.State))},
	}

	var out ChatOut
	attempt := func() error {
		var err error
		out, err = chatWithTimeout(context.Background(), e.Model, messages, e.Timeout)
		return err
	}

	var err error
	if e.Retry != nil {
		err = e.Retry.call(e.rand(), attempt)
	} else {
		err = attempt()
	}
	if err != nil {
		return e.fallback()
	}

	if e.Cost != nil {
		e.Cost.Record(e.ModelName, out.InputTokens, out.OutputTokens)
	}

	match := ratingPattern.FindString(out.Text)
	if match == "" {
		return e.fallback()
	}
	var rating float64
	if _, err := fmt.Sscanf(match, "%g", &rating); err != nil {
		return e.fallback()
	}
	return rating
}

func (e *LLMEvaluator) fallback() float64 {
	if e.Fallback != 0 {
		return e.Fallback
	}
	return math.Inf(1)
}

func (e *LLMEvaluator) rand() *rand.Rand {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e.rng
}
