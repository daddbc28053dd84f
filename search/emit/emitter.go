// Package emit provides event emission and observability for search runs.
package emit

import "context"

// Emitter receives observability events produced while a Strategy drives a
// search over a Problem.
//
// Implementations should be non-blocking and thread-safe: a search loop is
// single-threaded, but a caller may share one Emitter across several
// concurrently running searches.
type Emitter interface {
	// Emit sends a single event to the configured backend. Emit must not
	// block the search loop and must not panic.
	Emit(event Event)

	// EmitBatch sends multiple events in one operation, preserving order.
	// Returns an error only on catastrophic failures; individual event
	// failures should be logged internally and not returned.
	EmitBatch(ctx context.Context, events []Event) error

	// Flush blocks until every buffered event has been delivered or the
	// context is done. Safe to call multiple times.
	Flush(ctx context.Context) error
}
