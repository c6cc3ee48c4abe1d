package evaluator

import (
	"fmt"

	"imp/interpreter-go/pkg/ast"
	"imp/interpreter-go/pkg/state"
)

// EvalArith reduces an arithmetic expression under st. It is total and
// pure: expressions cannot contain commands, so structural recursion always
// terminates, and there is no failure mode. Arithmetic is int64
// two's-complement, wrapping on overflow.
func EvalArith(st state.State, expr ast.ArithExpr) int64 {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		return e.Value
	case *ast.Variable:
		return st.Get(e.Name)
	case *ast.ArithBinary:
		left := EvalArith(st, e.Left)
		right := EvalArith(st, e.Right)
		switch e.Op {
		case ast.OpAdd:
			return left + right
		case ast.OpSub:
			return left - right
		case ast.OpMul:
			return left * right
		}
		panic(fmt.Sprintf("unsupported arithmetic operator: %s", e.Op))
	}
	panic(fmt.Sprintf("unsupported arithmetic expression: %s", expr.NodeType()))
}

// EvalBool reduces a boolean expression under st. Total and pure, like
// EvalArith.
func EvalBool(st state.State, expr ast.BoolExpr) bool {
	switch e := expr.(type) {
	case *ast.BoolLiteral:
		return e.Value
	case *ast.Comparison:
		left := EvalArith(st, e.Left)
		right := EvalArith(st, e.Right)
		switch e.Op {
		case ast.CompareEq:
			return left == right
		case ast.CompareNeq:
			return left != right
		case ast.CompareLe:
			return left <= right
		case ast.CompareGt:
			return left > right
		}
		panic(fmt.Sprintf("unsupported comparison operator: %s", e.Op))
	case *ast.NotExpression:
		return !EvalBool(st, e.Operand)
	case *ast.AndExpression:
		return EvalBool(st, e.Left) && EvalBool(st, e.Right)
	}
	panic(fmt.Sprintf("unsupported boolean expression: %s", expr.NodeType()))
}
