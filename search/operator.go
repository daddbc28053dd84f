package search

// Operator is a named, costed, state-mutating transformation declared once
// per state type. The source library attaches operators to states through a
// per-class registry assembled by a metaclass; Go has no such hook, so an
// Operator here is plain data (name plus default cost) and the registry is
// whatever field-of-functions struct a client chooses to build around it
// (for instance a package-level struct whose fields are closures that call
// Operator.New).
type Operator struct {
	// Name identifies the operator; it appears in an Operation's printable
	// form and in MalformedOperator error messages.
	Name string

	// DefaultCost is used whenever New is called with a negative cost.
	DefaultCost float64
}

// NewOperator declares an operator. defaultCost must be non-negative.
func NewOperator(name string, defaultCost float64) (Operator, error) {
	if name == "" {
		return Operator{}, malformedOperator(name)
	}
	if defaultCost < 0 {
		return Operator{}, malformedOperator(name)
	}
	return Operator{Name: name, DefaultCost: defaultCost}, nil
}

// New builds an Operation that, when applied, clones the receiver state and
// runs mutate on the clone. cost overrides the operator's default cost
// unless negative, in which case the default is used. args are recorded for
// the Operation's printable form only; mutate is responsible for actually
// reading whatever arguments it closed over.
func (o Operator) New(mutate func(State), cost float64, args ...any) Operation {
	if cost < 0 {
		cost = o.DefaultCost
	}
	return Operation{name: o.Name, cost: cost, args: args, mutate: mutate}
}

// Action is a parameter-less Operator: a single, fixed-cost Operation
// shared by every invocation site, matching the source's "calling an Action
// returns itself" ergonomics.
type Action struct {
	op Operation
}

// NewAction declares an action with a fixed cost. cost must be non-negative;
// passing a negative cost uses the default cost of 1.
func NewAction(name string, mutate func(State), cost float64) (Action, error) {
	if name == "" || mutate == nil {
		return Action{}, malformedOperator(name)
	}
	if cost < 0 {
		cost = 1
	}
	return Action{op: Operation{name: name, cost: cost, mutate: mutate}}, nil
}

// New returns the action's single shared Operation.
func (a Action) New() Operation {
	return a.op
}
