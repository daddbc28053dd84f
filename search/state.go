package search

// State is the contract a client type must satisfy to be searched over.
//
// States are expected to be effectively immutable once constructed: an
// Operation never mutates a State in place, it Clones first and mutates the
// clone (see Operation.Apply). A State's Hash must agree with Equal — two
// states considered Equal must report the same Hash, and the engine relies
// on this when deduplicating successors during graph search.
type State interface {
	// Clone returns an independent copy of the state. The returned value
	// must not alias any mutable field of the receiver.
	Clone() State

	// Hash returns a value suitable for use as a map key identifying the
	// state's content. Two states that are Equal must return the same
	// Hash; the converse need not hold (collisions are permitted, but the
	// engine does not fall back to Equal on a hash match — see
	// HashJSON's doc comment for the implication).
	Hash() any

	// Equal reports whether the state is equivalent to other for search
	// purposes.
	Equal(other State) bool

	// String returns a human-readable rendering of the state, used by
	// examples and by LLM-backed evaluators (search/eval) as the textual
	// form a model is asked to judge.
	String() string
}
