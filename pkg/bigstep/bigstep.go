// Package bigstep implements the unbounded big-step semantics of Imp
// commands. It exists for correctness work, not for running untrusted
// programs: Eval recurses without a budget and does not return for
// divergent programs. Alongside the final state it produces the derivation
// tree of the judgment, from which a sufficient budget for the fuel-bounded
// evaluator can be read off.
package bigstep

import (
	"fmt"

	"imp/interpreter-go/pkg/ast"
	"imp/interpreter-go/pkg/evaluator"
	"imp/interpreter-go/pkg/state"
)

// Derivation is one rule application in a big-step derivation tree: the
// judgment "Command takes Before to After", justified by the derivations of
// its premises. Skip, assignment, and an idle loop have no premises; a
// sequence has two; a conditional has one (the taken branch); an iterating
// loop has its body step and the remainder of the loop.
type Derivation struct {
	Command  ast.Command
	Before   state.State
	After    state.State
	Premises []*Derivation
}

// Fuel returns a budget at which the fuel-bounded evaluator reproduces this
// derivation's final state. One unit pays for this rule; monotonicity lets
// the premises share the remainder, so their requirements combine by
// maximum rather than by sum.
func (d *Derivation) Fuel() int {
	max := 0
	for _, p := range d.Premises {
		if f := p.Fuel(); f > max {
			max = f
		}
	}
	return max + 1
}

// Size returns the number of rule applications in the derivation.
func (d *Derivation) Size() int {
	n := 1
	for _, p := range d.Premises {
		n += p.Size()
	}
	return n
}

// Eval derives the big-step judgment for cmd from st, returning the
// derivation and the final state. It diverges exactly when cmd does.
func Eval(st state.State, cmd ast.Command) (*Derivation, state.State) {
	switch c := cmd.(type) {
	case *ast.Skip:
		return &Derivation{Command: cmd, Before: st, After: st}, st
	case *ast.Assignment:
		after := st.Set(c.Target.Name, evaluator.EvalArith(st, c.Value))
		return &Derivation{Command: cmd, Before: st, After: after}, after
	case *ast.Sequence:
		first, mid := Eval(st, c.First)
		second, after := Eval(mid, c.Second)
		return &Derivation{Command: cmd, Before: st, After: after, Premises: []*Derivation{first, second}}, after
	case *ast.Conditional:
		branch := c.Else
		if evaluator.EvalBool(st, c.Condition) {
			branch = c.Then
		}
		taken, after := Eval(st, branch)
		return &Derivation{Command: cmd, Before: st, After: after, Premises: []*Derivation{taken}}, after
	case *ast.WhileLoop:
		if !evaluator.EvalBool(st, c.Condition) {
			return &Derivation{Command: cmd, Before: st, After: st}, st
		}
		body, mid := Eval(st, c.Body)
		rest, after := Eval(mid, c)
		return &Derivation{Command: cmd, Before: st, After: after, Premises: []*Derivation{body, rest}}, after
	}
	panic(fmt.Sprintf("unsupported command: %s", cmd.NodeType()))
}
