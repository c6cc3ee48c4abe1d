package evaluator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"imp/interpreter-go/pkg/ast"
	"imp/interpreter-go/pkg/state"
)

// Randomized suites for the evaluator's two load-bearing guarantees:
// once definite, a result never changes under larger fuel, and any two
// definite runs agree. Programs are generated structurally, so divergent
// loops appear regularly; the fuel bound keeps every run finite.

var propertyVariables = []string{"X", "Y", "Z", "W"}

func randomArith(r *rand.Rand, depth int) ast.ArithExpr {
	if depth <= 0 || r.Intn(3) == 0 {
		if r.Intn(2) == 0 {
			return ast.Num(int64(r.Intn(11) - 5))
		}
		return ast.Var(propertyVariables[r.Intn(len(propertyVariables))])
	}
	ops := []ast.ArithOp{ast.OpAdd, ast.OpSub, ast.OpMul}
	return ast.NewArithBinary(ops[r.Intn(len(ops))], randomArith(r, depth-1), randomArith(r, depth-1))
}

func randomBool(r *rand.Rand, depth int) ast.BoolExpr {
	if depth <= 0 || r.Intn(3) == 0 {
		return ast.Bool(r.Intn(2) == 0)
	}
	switch r.Intn(4) {
	case 0:
		ops := []ast.CompareOp{ast.CompareEq, ast.CompareNeq, ast.CompareLe, ast.CompareGt}
		return ast.NewComparison(ops[r.Intn(len(ops))], randomArith(r, depth-1), randomArith(r, depth-1))
	case 1:
		return ast.Not(randomBool(r, depth-1))
	default:
		return ast.And(randomBool(r, depth-1), randomBool(r, depth-1))
	}
}

func randomCommand(r *rand.Rand, depth int) ast.Command {
	if depth <= 0 {
		if r.Intn(2) == 0 {
			return ast.Nop()
		}
		return ast.Asgn(propertyVariables[r.Intn(len(propertyVariables))], randomArith(r, 1))
	}
	switch r.Intn(5) {
	case 0:
		return ast.Nop()
	case 1:
		return ast.Asgn(propertyVariables[r.Intn(len(propertyVariables))], randomArith(r, 2))
	case 2:
		return ast.NewSequence(randomCommand(r, depth-1), randomCommand(r, depth-1))
	case 3:
		return ast.If(randomBool(r, 2), randomCommand(r, depth-1), randomCommand(r, depth-1))
	default:
		return ast.While(randomBool(r, 2), randomCommand(r, depth-1))
	}
}

func randomState(r *rand.Rand) state.State {
	st := state.Empty()
	for _, name := range propertyVariables {
		if r.Intn(2) == 0 {
			st = st.Set(name, int64(r.Intn(7)-3))
		}
	}
	return st
}

func TestPropertyZeroFuelLaw(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		cmd := randomCommand(r, 3)
		require.False(t, EvalCommand(randomState(r), cmd, 0).IsDefinite(),
			"zero fuel must be indeterminate for %s", cmd.NodeType())
	}
}

func TestPropertyMonotonicity(t *testing.T) {
	r := rand.New(rand.NewSource(23))
	for i := 0; i < 2000; i++ {
		cmd := randomCommand(r, 3)
		st := randomState(r)
		small := r.Intn(12)

		settled, ok := EvalCommand(st, cmd, small).State()
		if !ok {
			continue
		}
		for _, extra := range []int{1, 2, 7, 100} {
			again, ok := EvalCommand(st, cmd, small+extra).State()
			require.True(t, ok, "definite at fuel %d but not at %d", small, small+extra)
			require.True(t, settled.Equal(again),
				"fuel %d produced %s but fuel %d produced %s", small, settled, small+extra, again)
		}
	}
}

func TestPropertyDeterminismAcrossFuels(t *testing.T) {
	r := rand.New(rand.NewSource(37))
	for i := 0; i < 2000; i++ {
		cmd := randomCommand(r, 3)
		st := randomState(r)

		first, ok1 := EvalCommand(st, cmd, r.Intn(16)).State()
		second, ok2 := EvalCommand(st, cmd, r.Intn(16)).State()
		if ok1 && ok2 {
			require.True(t, first.Equal(second),
				"two definite runs disagree: %s vs %s", first, second)
		}
	}
}

func TestPropertyEvaluationIsPure(t *testing.T) {
	r := rand.New(rand.NewSource(53))
	for i := 0; i < 500; i++ {
		cmd := randomCommand(r, 3)
		st := randomState(r)
		before := st.Bindings()

		EvalCommand(st, cmd, 10)
		require.Equal(t, before, st.Bindings(), "evaluation mutated its input state")
	}
}
