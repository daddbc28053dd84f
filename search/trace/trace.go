// Package trace records the exact sequence of nodes a Strategy pops from
// its frontier, for use in tests that assert strategy-ordering laws (depth-
// first pre-order, breadth-first minimum-depth-first, best-first frontier-
// minimum-at-pop) rather than merely checking a search's final answer.
//
// A Recorder observes a single run; it has no resume or replay capability
// and is not a substitute for search/history's run-summary persistence.
package trace

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"sync"

	"github.com/boukeas/searchtoy/search/emit"
)

// Entry is one node popped from the frontier during a recorded run.
type Entry struct {
	Step       int
	StateHash  uint64
	Cost       float64
	Incoming   string
	StateLabel string
}

// Recorder implements emit.Emitter, collecting a node_popped Entry for
// every node a Strategy pops. Attach it via Strategy.Emitter and read back
// the sequence with Entries after the run completes.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Emit implements emit.Emitter. Only "node_popped" events produce an
// Entry; other event kinds are ignored.
func (r *Recorder) Emit(event emit.Event) {
	if event.Msg != "node_popped" {
		return
	}
	entry := Entry{Step: event.Step}
	if cost, ok := event.Meta["cost"].(float64); ok {
		entry.Cost = cost
	}
	if state, ok := event.Meta["state"].(string); ok {
		entry.StateLabel = state
		entry.StateHash = hashLabel(state)
	}
	if incoming, ok := event.Meta["incoming"].(string); ok {
		entry.Incoming = incoming
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

// EmitBatch implements emit.Emitter.
func (r *Recorder) EmitBatch(_ context.Context, events []emit.Event) error {
	for _, event := range events {
		r.Emit(event)
	}
	return nil
}

// Flush implements emit.Emitter; recording is synchronous, so there is
// nothing to flush.
func (r *Recorder) Flush(context.Context) error { return nil }

// Entries returns every recorded Entry, in pop order.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Reset clears the recorded entries so the Recorder can be reused across
// runs.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}

// hashLabel truncates a SHA-256 digest of label to a uint64, mirroring
// search.HashJSON's content-hashing approach for an observed string
// rather than a marshaled state.
func hashLabel(label string) uint64 {
	sum := sha256.Sum256([]byte(label))
	return binary.BigEndian.Uint64(sum[:8])
}
