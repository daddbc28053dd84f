package search

import "errors"

// Sentinel errors identify the error kinds named in the package's error
// taxonomy. Use errors.Is to test for a specific kind; use errors.As with
// *Error to recover the offending operator/generator/evaluator name.
var (
	// ErrMalformedOperator is returned when an operator is declared in an
	// unsupported shape (an empty name, an Operator declared with a
	// negative default cost, or an Action declared with a nil mutate
	// function).
	ErrMalformedOperator = errors.New("search: malformed operator")

	// ErrGeneratorMissing is returned when a search starts on a state type
	// that has no generator bound to it.
	ErrGeneratorMissing = errors.New("search: no generator bound to state type")

	// ErrGeneratorRebind is returned when BindGenerator is called twice for
	// the same state type. Binding is one-shot.
	ErrGeneratorRebind = errors.New("search: generator already bound")

	// ErrGeneratorIncompatible is returned when a generator's Requires type
	// does not match the state type it is bound to.
	ErrGeneratorIncompatible = errors.New("search: generator incompatible with state type")

	// ErrEvaluatorMissing is returned by BestFirst when it is constructed
	// with a nil evaluator. DepthFirst and BreadthFirst never return it.
	ErrEvaluatorMissing = errors.New("search: evaluator required but not configured")

	// ErrEvaluatorIncompatible is returned when an evaluator's Requires type
	// does not match the Problem's start state type.
	ErrEvaluatorIncompatible = errors.New("search: evaluator incompatible with state type")

	// ErrNoSolution is returned by Solve and Optimize when the frontier is
	// exhausted without yielding an acceptable solution.
	ErrNoSolution = errors.New("search: no solution found")
)

// Error is a structured error carrying the failing component's name
// alongside one of the sentinel kinds above, mirroring the teacher's
// NodeError/EngineError shape (a Kind in place of a code, the offending
// Component name, and a Cause field).
type Error struct {
	// Kind is one of the sentinel errors declared above; errors.Is(e, Kind)
	// holds for the *Error itself via Unwrap.
	Kind error

	// Component names the operator, generator, or evaluator involved.
	Component string

	// Cause is the underlying error, if any. No constructor in this
	// package sets it (the engine does not wrap client errors), and
	// Unwrap returns Kind, not Cause.
	Cause error
}

func (e *Error) Error() string {
	if e.Component == "" {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Component
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func malformedOperator(name string) error {
	return &Error{Kind: ErrMalformedOperator, Component: name}
}

func generatorError(kind error, component string) error {
	return &Error{Kind: kind, Component: component}
}

func evaluatorError(kind error, component string) error {
	return &Error{Kind: kind, Component: component}
}
