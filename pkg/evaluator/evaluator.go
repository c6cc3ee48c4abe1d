// Package evaluator implements the fuel-bounded Imp evaluator: a terminating
// command interpreter that answers Indeterminate instead of running forever.
package evaluator

import (
	"fmt"

	"imp/interpreter-go/pkg/ast"
	"imp/interpreter-go/pkg/state"
)

// EvalCommand runs cmd from st under a recursion budget. Fuel bounds the
// depth of the evaluator's own call tree, not the number of commands
// executed: both halves of a sequence receive the same decremented budget,
// and a loop hands that same budget to its body and to its own next
// iteration. A wide sequence tree therefore costs fuel proportional to its
// nesting depth rather than its node count, and a loop costs one unit per
// iteration plus its body depth. Callers that calibrate a literal fuel
// value depend on this discipline.
//
// With zero fuel every command, including skip, is Indeterminate. Once a
// call is definite at some fuel, every larger fuel returns the identical
// state, so retrying with more fuel is always safe.
func EvalCommand(st state.State, cmd ast.Command, fuel int) Result {
	if fuel <= 0 {
		return Indeterminate()
	}
	n := fuel - 1

	switch c := cmd.(type) {
	case *ast.Skip:
		return Definite(st)
	case *ast.Assignment:
		return Definite(st.Set(c.Target.Name, EvalArith(st, c.Value)))
	case *ast.Sequence:
		first := EvalCommand(st, c.First, n)
		mid, ok := first.State()
		if !ok {
			return first
		}
		return EvalCommand(mid, c.Second, n)
	case *ast.Conditional:
		// The untaken branch is never evaluated.
		if EvalBool(st, c.Condition) {
			return EvalCommand(st, c.Then, n)
		}
		return EvalCommand(st, c.Else, n)
	case *ast.WhileLoop:
		if !EvalBool(st, c.Condition) {
			return Definite(st)
		}
		body := EvalCommand(st, c.Body, n)
		next, ok := body.State()
		if !ok {
			return body
		}
		return EvalCommand(next, c, n)
	}
	panic(fmt.Sprintf("unsupported command: %s", cmd.NodeType()))
}
