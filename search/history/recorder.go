package history

import (
	"context"
	"time"

	"github.com/boukeas/searchtoy/search"
)

// Recorder wraps a Store and labels every run it records, so callers
// don't have to repeat the problem label at each call site.
type Recorder struct {
	Store Store
	Label string
}

// Optimize runs problem.Optimize with strategy and bounds, then records a
// Run summary regardless of whether a solution was found. The search
// error (including search.ErrNoSolution) is returned unchanged; a
// failure to persist the summary is reported as well if the search
// itself succeeded.
func (r *Recorder) Optimize(ctx context.Context, problem *search.Problem, strategy *search.Strategy, bounds search.Bounds) (*search.Solution, error) {
	start := time.Now()
	solution, searchErr := problem.Optimize(strategy, bounds)
	elapsed := time.Since(start)

	run := Run{
		Label:       r.Label,
		Strategy:    strategy.Name(),
		LowerBound:  bounds.Lower,
		UpperBound:  bounds.Upper,
		NbExplored:  strategy.NbExplored(),
		NbSolutions: strategy.NbSolutions(),
		Duration:    elapsed,
		RecordedAt:  start,
	}
	if solution != nil {
		cost := solution.Cost
		run.BestCost = &cost
	}

	if _, recordErr := r.Store.Record(ctx, run); recordErr != nil {
		if searchErr != nil {
			return solution, searchErr
		}
		return solution, recordErr
	}
	return solution, searchErr
}
