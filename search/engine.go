package search

import (
	"iter"
	"reflect"

	"github.com/boukeas/searchtoy/search/emit"
)

// Bounds restricts the costs of solutions a search considers. Upper prunes
// expansion and reporting: a node is only expanded, and a goal node only
// yielded, while strictly below Upper; each yielded solution lowers Upper
// to its own cost. Lower
// short-circuits iteration: once a solution at or below Lower is yielded,
// the search ends. Either or both may be nil.
type Bounds struct {
	Lower *float64
	Upper *float64
}

// Search runs the strategy against problem's state space and returns a
// lazy sequence of solution nodes. The sequence is driven entirely by the
// caller pulling from it (range-over-func); abandoning iteration early
// releases all held search state.
//
// An error is returned immediately, before any node is popped, when no
// generator is bound to the problem's start state type, or when the
// strategy's evaluator (if any) is incompatible with that type.
func (st *Strategy) Search(problem *Problem, bounds Bounds) (iter.Seq[*Node], error) {
	gen, err := generatorFor(problem.Start)
	if err != nil {
		return nil, err
	}
	if st.evaluator != nil {
		if req := st.evaluator.Requires(); req != nil {
			t := reflect.TypeOf(problem.Start)
			if !t.AssignableTo(req) {
				return nil, evaluatorError(ErrEvaluatorIncompatible, t.String())
			}
		}
	}

	st.nbExplored = 0
	st.nbSolutions = 0
	frontier := st.newFrontier(st.evaluator)
	frontier.Insert(NewRoot(problem.Start))

	if gen.Graph() {
		return st.graphSearch(frontier, gen, problem, bounds), nil
	}
	return st.treeSearch(frontier, gen, problem, bounds), nil
}

// treeSearch forwards every successor of an expanded node to the frontier
// unconditionally (no duplicate-state tracking).
func (st *Strategy) treeSearch(frontier Frontier, gen Generator, problem *Problem, bounds Bounds) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		upper := bounds.Upper
		for frontier.Len() > 0 {
			current := frontier.Remove()
			st.nbExplored++
			st.observePop(current, frontier.Len())

			isSolution := problem.IsSolution(current.State)
			belowUpper := upper == nil || current.Cost < *upper

			if isSolution {
				if !belowUpper {
					continue
				}
				st.nbSolutions++
				st.observeSolution(current.Cost)
				if !yield(current) {
					return
				}
				cost := current.Cost
				upper = &cost
				st.observeBoundTightened(cost)
				if bounds.Lower != nil && current.Cost <= *bounds.Lower {
					return
				}
				continue
			}

			if belowUpper {
				frontier.Extend(collectSuccessors(current, gen))
			}
		}
	}
}

// graphSearch additionally keeps a map of every state forwarded as a
// successor to the lowest cost at which it was forwarded, dropping any
// rediscovery at an equal or higher cost. The root is never seeded into
// this map: only successors pass through it.
func (st *Strategy) graphSearch(frontier Frontier, gen Generator, problem *Problem, bounds Bounds) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		upper := bounds.Upper
		seen := map[any]float64{}
		for frontier.Len() > 0 {
			current := frontier.Remove()
			st.nbExplored++
			st.observePop(current, frontier.Len())

			isSolution := problem.IsSolution(current.State)
			belowUpper := upper == nil || current.Cost < *upper

			if isSolution {
				if !belowUpper {
					continue
				}
				st.nbSolutions++
				st.observeSolution(current.Cost)
				if !yield(current) {
					return
				}
				cost := current.Cost
				upper = &cost
				st.observeBoundTightened(cost)
				if bounds.Lower != nil && current.Cost <= *bounds.Lower {
					return
				}
				continue
			}

			if belowUpper {
				var batch []*Node
				for succ := range successors(current, gen) {
					key := succ.State.Hash()
					if cost, ok := seen[key]; !ok || succ.Cost < cost {
						seen[key] = succ.Cost
						batch = append(batch, succ)
					}
				}
				frontier.Extend(batch)
			}
		}
	}
}

// observePop reports a node_popped event and updates the nodes-explored and
// frontier-depth metrics, when an Emitter/Metrics is configured.
func (st *Strategy) observePop(current *Node, frontierLen int) {
	st.emit("node_popped", map[string]any{
		"cost":     current.Cost,
		"state":    current.State.String(),
		"incoming": current.Incoming.String(),
	})
	if st.Metrics != nil {
		st.Metrics.IncNodesExplored(st.name)
		st.Metrics.SetFrontierDepth(frontierLen)
	}
}

// observeSolution reports a solution_yielded event and increments the
// solutions-yielded counter.
func (st *Strategy) observeSolution(cost float64) {
	st.emit("solution_yielded", map[string]any{"cost": cost})
	if st.Metrics != nil {
		st.Metrics.IncSolutionsYielded(st.name)
	}
}

// observeBoundTightened reports a bound_tightened event and increments the
// bound-tightenings counter.
func (st *Strategy) observeBoundTightened(bound float64) {
	st.emit("bound_tightened", map[string]any{"bound": bound})
	if st.Metrics != nil {
		st.Metrics.IncBoundTightenings(st.name)
	}
}

// emit forwards an event to the configured Emitter, if any. Kept as a
// single gate so the search loops stay readable.
func (st *Strategy) emit(msg string, meta map[string]any) {
	if st.Emitter == nil {
		return
	}
	st.Emitter.Emit(emit.Event{RunID: st.RunID, Step: st.nbExplored, Msg: msg, Meta: meta})
}

func collectSuccessors(n *Node, gen Generator) []*Node {
	var batch []*Node
	for succ := range successors(n, gen) {
		batch = append(batch, succ)
	}
	return batch
}
