package emit

// Event represents one observable occurrence during a search run.
//
// Msg values emitted by the search engine:
//   - "node_popped": a node was removed from the frontier for expansion.
//   - "solution_yielded": a goal node was found and returned to the caller.
//   - "bound_tightened": the upper bound was lowered after a solution.
//
// The engine emits no run-level event (no start or done event).
type Event struct {
	// RunID identifies the Solutions/Solve/Optimize call that produced
	// this event, letting a caller correlate events across a run.
	RunID string

	// Step is the 1-indexed count of nodes popped so far when this event
	// was emitted.
	Step int

	// Msg names the kind of event.
	Msg string

	// Meta carries event-specific structured data. Common keys:
	//   - "cost": the node's cumulative cost (float64).
	//   - "state": the node's State.String() rendering.
	//   - "incoming": the popped node's Incoming.String() rendering.
	//   - "bound": the new upper bound after tightening (float64).
	Meta map[string]any
}
