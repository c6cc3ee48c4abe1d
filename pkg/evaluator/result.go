package evaluator

import "imp/interpreter-go/pkg/state"

// Result is the outcome of a fuel-bounded command evaluation: either a
// definite final state, or indeterminate when the budget ran out first.
// An indeterminate result carries no state, so exhaustion can never be
// mistaken for a legitimately computed (empty or unchanged) state.
type Result struct {
	state    state.State
	definite bool
}

// Definite wraps a successfully computed final state.
func Definite(st state.State) Result {
	return Result{state: st, definite: true}
}

// Indeterminate reports that the computation could not be completed within
// the supplied fuel. Retrying with strictly more fuel is always safe.
func Indeterminate() Result {
	return Result{}
}

// IsDefinite reports whether the evaluation completed.
func (r Result) IsDefinite() bool {
	return r.definite
}

// State returns the final state when the result is definite.
func (r Result) State() (state.State, bool) {
	return r.state, r.definite
}

func (r Result) String() string {
	if !r.definite {
		return "indeterminate"
	}
	return "definite " + r.state.String()
}
