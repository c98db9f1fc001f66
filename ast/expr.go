package ast

// Expr represents an expression.  All expression nodes implement the `Expr`
// interface.  Expressions form a tree by recursive ownership: no sharing, no
// cycles.
type Expr interface {
	Node

	// exprNode distinguishes expressions from other AST nodes.
	exprNode()
}

// ExprBase is the base struct for all expressions.
type ExprBase struct {
	NodeBase
}

func (eb ExprBase) exprNode() {}

// -----------------------------------------------------------------------------

// NumberLit represents a numeric literal.  The value is stored as a 64-bit
// float regardless of the eventual target width.
type NumberLit struct {
	ExprBase

	Value float64
}

// BoolLit represents a boolean literal.
type BoolLit struct {
	ExprBase

	Value bool
}

// StringLit represents a string literal.  The value has the enclosing quotes
// trimmed and escape sequences processed.
type StringLit struct {
	ExprBase

	Value string
}

// Identifier represents a named value reference.  The name is resolved
// against the enclosing function's storage table during lowering.
type Identifier struct {
	ExprBase

	Name string
}

// BinaryOp represents a binary operator application.  Both operands are
// owned by the node.
type BinaryOp struct {
	ExprBase

	Op       Opcode
	Lhs, Rhs Expr
}

// Call represents a function call.  The callee is referenced by name and is
// resolved against the module's function table during lowering.
type Call struct {
	ExprBase

	Callee string
	Args   []Expr
}
