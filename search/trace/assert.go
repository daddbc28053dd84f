package trace

// MonotonicCost reports whether Cost is non-decreasing across entries, the
// invariant a best-first recording must satisfy since the frontier always
// pops its current minimum.
func MonotonicCost(entries []Entry) bool {
	for i := 1; i < len(entries); i++ {
		if entries[i].Cost < entries[i-1].Cost {
			return false
		}
	}
	return true
}

// NonIncreasingDepth reports whether entries never resumes a shallower
// branch after a deeper one within the same step count, the shape a
// breadth-first recording takes: each depth is fully popped before the
// next begins. depthOf maps a StateLabel to its depth in the search tree.
func NonIncreasingDepth(entries []Entry, depthOf func(label string) int) bool {
	last := -1
	for _, e := range entries {
		d := depthOf(e.StateLabel)
		if d < last {
			return false
		}
		last = d
	}
	return true
}

// FirstOccurrence returns the step at which label was first popped, or -1
// if it never was.
func FirstOccurrence(entries []Entry, label string) int {
	for _, e := range entries {
		if e.StateLabel == label {
			return e.Step
		}
	}
	return -1
}
