package ast

type NodeType string

const (
	NodeNumberLiteral NodeType = "NumberLiteral"
	NodeVariable      NodeType = "Variable"
	NodeArithBinary   NodeType = "ArithBinary"
	NodeBoolLiteral   NodeType = "BoolLiteral"
	NodeComparison    NodeType = "Comparison"
	NodeNotExpression NodeType = "NotExpression"
	NodeAndExpression NodeType = "AndExpression"
	NodeSkip          NodeType = "Skip"
	NodeAssignment    NodeType = "Assignment"
	NodeSequence      NodeType = "Sequence"
	NodeConditional   NodeType = "Conditional"
	NodeWhileLoop     NodeType = "WhileLoop"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces.
//
// The three syntactic categories are closed: arithmetic expressions cannot
// contain booleans or commands, boolean expressions embed arithmetic only
// through comparisons, and commands are the only place behavior can loop.
// Evaluators are expected to switch exhaustively over each category.

type ArithExpr interface {
	Node
	arithExprNode()
}

type arithExprMarker struct{}

func (arithExprMarker) arithExprNode() {}

type BoolExpr interface {
	Node
	boolExprNode()
}

type boolExprMarker struct{}

func (boolExprMarker) boolExprNode() {}

type Command interface {
	Node
	commandNode()
}

type commandMarker struct{}

func (commandMarker) commandNode() {}

// Arithmetic expressions

type ArithOp string

const (
	OpAdd ArithOp = "+"
	OpSub ArithOp = "-"
	OpMul ArithOp = "*"
)

type NumberLiteral struct {
	nodeImpl
	arithExprMarker

	Value int64 `json:"value"`
}

func NewNumberLiteral(value int64) *NumberLiteral {
	return &NumberLiteral{nodeImpl: newNodeImpl(NodeNumberLiteral), Value: value}
}

type Variable struct {
	nodeImpl
	arithExprMarker

	Name string `json:"name"`
}

func NewVariable(name string) *Variable {
	return &Variable{nodeImpl: newNodeImpl(NodeVariable), Name: name}
}

type ArithBinary struct {
	nodeImpl
	arithExprMarker

	Op    ArithOp   `json:"op"`
	Left  ArithExpr `json:"left"`
	Right ArithExpr `json:"right"`
}

func NewArithBinary(op ArithOp, left, right ArithExpr) *ArithBinary {
	return &ArithBinary{nodeImpl: newNodeImpl(NodeArithBinary), Op: op, Left: left, Right: right}
}

// Boolean expressions

type CompareOp string

const (
	CompareEq  CompareOp = "=="
	CompareNeq CompareOp = "!="
	CompareLe  CompareOp = "<="
	CompareGt  CompareOp = ">"
)

type BoolLiteral struct {
	nodeImpl
	boolExprMarker

	Value bool `json:"value"`
}

func NewBoolLiteral(value bool) *BoolLiteral {
	return &BoolLiteral{nodeImpl: newNodeImpl(NodeBoolLiteral), Value: value}
}

type Comparison struct {
	nodeImpl
	boolExprMarker

	Op    CompareOp `json:"op"`
	Left  ArithExpr `json:"left"`
	Right ArithExpr `json:"right"`
}

func NewComparison(op CompareOp, left, right ArithExpr) *Comparison {
	return &Comparison{nodeImpl: newNodeImpl(NodeComparison), Op: op, Left: left, Right: right}
}

type NotExpression struct {
	nodeImpl
	boolExprMarker

	Operand BoolExpr `json:"operand"`
}

func NewNotExpression(operand BoolExpr) *NotExpression {
	return &NotExpression{nodeImpl: newNodeImpl(NodeNotExpression), Operand: operand}
}

type AndExpression struct {
	nodeImpl
	boolExprMarker

	Left  BoolExpr `json:"left"`
	Right BoolExpr `json:"right"`
}

func NewAndExpression(left, right BoolExpr) *AndExpression {
	return &AndExpression{nodeImpl: newNodeImpl(NodeAndExpression), Left: left, Right: right}
}

// Commands

type Skip struct {
	nodeImpl
	commandMarker
}

func NewSkip() *Skip {
	return &Skip{nodeImpl: newNodeImpl(NodeSkip)}
}

type Assignment struct {
	nodeImpl
	commandMarker

	Target *Variable `json:"target"`
	Value  ArithExpr `json:"value"`
}

func NewAssignment(target *Variable, value ArithExpr) *Assignment {
	return &Assignment{nodeImpl: newNodeImpl(NodeAssignment), Target: target, Value: value}
}

type Sequence struct {
	nodeImpl
	commandMarker

	First  Command `json:"first"`
	Second Command `json:"second"`
}

func NewSequence(first, second Command) *Sequence {
	return &Sequence{nodeImpl: newNodeImpl(NodeSequence), First: first, Second: second}
}

type Conditional struct {
	nodeImpl
	commandMarker

	Condition BoolExpr `json:"condition"`
	Then      Command  `json:"then"`
	Else      Command  `json:"else"`
}

func NewConditional(condition BoolExpr, thenBranch, elseBranch Command) *Conditional {
	return &Conditional{nodeImpl: newNodeImpl(NodeConditional), Condition: condition, Then: thenBranch, Else: elseBranch}
}

type WhileLoop struct {
	nodeImpl
	commandMarker

	Condition BoolExpr `json:"condition"`
	Body      Command  `json:"body"`
}

func NewWhileLoop(condition BoolExpr, body Command) *WhileLoop {
	return &WhileLoop{nodeImpl: newNodeImpl(NodeWhileLoop), Condition: condition, Body: body}
}
