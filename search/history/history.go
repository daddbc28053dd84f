// Package history records completed-run summaries for later inspection and
// analytics. It is deliberately not a resumable snapshot of search state:
// it never stores the frontier, the seen-map, or the node graph, only the
// facts a caller would want in a dashboard after the fact.
package history

import (
	"context"
	"time"
)

// Run summarizes one completed Solutions/Solve/Optimize call.
type Run struct {
	// ID is assigned by the Store on Record and returned for reference.
	ID int64

	Label       string
	Strategy    string
	LowerBound  *float64
	UpperBound  *float64
	NbExplored  int
	NbSolutions int
	BestCost    *float64
	Duration    time.Duration
	RecordedAt  time.Time
}

// Store persists Run summaries and lets a caller list them back out,
// filtered by label.
type Store interface {
	// Record appends run to the store and assigns its ID.
	Record(ctx context.Context, run Run) (int64, error)

	// List returns every recorded run for label, most recent first. An
	// empty label matches every run.
	List(ctx context.Context, label string) ([]Run, error)

	// Close releases any resources the store holds open.
	Close() error
}
