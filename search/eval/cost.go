package eval

import (
	"sync"
	"time"
)

// ModelPricing gives the USD cost of one million input/output tokens for a
// model, used to attribute a dollar cost to each evaluator call.
type ModelPricing struct {
	InputPer1M  float64
	OutputPer1M float64
}

// defaultModelPricing covers the models the three provider adapters default
// to. Prices are approximate and meant for relative cost comparison between
// evaluator strategies, not billing reconciliation.
var defaultModelPricing = map[string]ModelPricing{
	"claude-sonnet-4-5-20250929": {InputPer1M: 3.00, OutputPer1M: 15.00},
	"gpt-4o-mini":                {InputPer1M: 0.15, OutputPer1M: 0.60},
	"gpt-4o":                     {InputPer1M: 2.50, OutputPer1M: 10.00},
	"gemini-1.5-flash":           {InputPer1M: 0.075, OutputPer1M: 0.30},
	"gemini-1.5-pro":             {InputPer1M: 1.25, OutputPer1M: 5.00},
}

// Call records one evaluator-to-LLM invocation.
type Call struct {
	Model        string
	InputTokens  int
	OutputTokens int
	CostUSD      float64
	Timestamp    time.Time
}

// CostTracker accumulates the USD cost and token usage of every LLM call an
// Evaluator makes over the lifetime of a search run.
type CostTracker struct {
	mu         sync.RWMutex
	pricing    map[string]ModelPricing
	calls      []Call
	totalCost  float64
	modelCosts map[string]float64
}

// NewCostTracker returns a CostTracker seeded with default pricing for the
// models the bundled provider adapters use.
func NewCostTracker() *CostTracker {
	pricing := make(map[string]ModelPricing, len(defaultModelPricing))
	for k, v := range defaultModelPricing {
		pricing[k] = v
	}
	return &CostTracker{
		pricing:    pricing,
		modelCosts: make(map[string]float64),
	}
}

// SetPricing overrides (or adds) the pricing entry for model.
func (ct *CostTracker) SetPricing(model string, pricing ModelPricing) {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	ct.pricing[model] = pricing
}

// Record attributes a cost to one LLM call, based on the tracked pricing
// table. Models absent from the table are recorded at zero cost.
func (ct *CostTracker) Record(model string, inputTokens, outputTokens int) {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	pricing := ct.pricing[model]
	cost := (float64(inputTokens)/1_000_000.0)*pricing.InputPer1M +
		(float64(outputTokens)/1_000_000.0)*pricing.OutputPer1M

	ct.calls = append(ct.calls, Call{
		Model:        model,
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		CostUSD:      cost,
		Timestamp:    time.Now(),
	})
	ct.totalCost += cost
	ct.modelCosts[model] += cost
}

// TotalCost returns the cumulative USD cost of every recorded call.
func (ct *CostTracker) TotalCost() float64 {
	ct.mu.RLock()
	defer ct.mu.RUnlock()
	return ct.totalCost
}

// CostByModel returns a copy of the per-model cost breakdown.
func (ct *CostTracker) CostByModel() map[string]float64 {
	ct.mu.RLock()
	defer ct.mu.RUnlock()
	result := make(map[string]float64, len(ct.modelCosts))
	for k, v := range ct.modelCosts {
		result[k] = v
	}
	return result
}

// Calls returns a copy of every call recorded so far, in call order.
func (ct *CostTracker) Calls() []Call {
	ct.mu.RLock()
	defer ct.mu.RUnlock()
	result := make([]Call, len(ct.calls))
	copy(result, ct.calls)
	return result
}
