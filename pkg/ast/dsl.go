package ast

// Terse builders for assembling programs in tests and demo catalogs.

func Num(value int64) *NumberLiteral {
	return NewNumberLiteral(value)
}

func Var(name string) *Variable {
	return NewVariable(name)
}

func Add(left, right ArithExpr) *ArithBinary {
	return NewArithBinary(OpAdd, left, right)
}

func Sub(left, right ArithExpr) *ArithBinary {
	return NewArithBinary(OpSub, left, right)
}

func Mul(left, right ArithExpr) *ArithBinary {
	return NewArithBinary(OpMul, left, right)
}

func Bool(value bool) *BoolLiteral {
	return NewBoolLiteral(value)
}

func Eq(left, right ArithExpr) *Comparison {
	return NewComparison(CompareEq, left, right)
}

func Neq(left, right ArithExpr) *Comparison {
	return NewComparison(CompareNeq, left, right)
}

func Le(left, right ArithExpr) *Comparison {
	return NewComparison(CompareLe, left, right)
}

func Gt(left, right ArithExpr) *Comparison {
	return NewComparison(CompareGt, left, right)
}

func Not(operand BoolExpr) *NotExpression {
	return NewNotExpression(operand)
}

func And(left, right BoolExpr) *AndExpression {
	return NewAndExpression(left, right)
}

func Nop() *Skip {
	return NewSkip()
}

func Asgn(name string, value ArithExpr) *Assignment {
	return NewAssignment(NewVariable(name), value)
}

// Seq folds commands into a right-nested sequence.
func Seq(first Command, rest ...Command) Command {
	if len(rest) == 0 {
		return first
	}
	return NewSequence(first, Seq(rest[0], rest[1:]...))
}

func If(condition BoolExpr, thenBranch, elseBranch Command) *Conditional {
	return NewConditional(condition, thenBranch, elseBranch)
}

func While(condition BoolExpr, body Command) *WhileLoop {
	return NewWhileLoop(condition, body)
}
