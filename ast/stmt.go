package ast

// Statement represents a statement.  All statement nodes implement the
// `Statement` interface.
type Statement interface {
	Node

	// stmtNode distinguishes statements from other AST nodes.
	stmtNode()
}

// StmtBase is the base struct for all statements.
type StmtBase struct {
	NodeBase
}

func (sb StmtBase) stmtNode() {}

// -----------------------------------------------------------------------------

// LetStmt represents a variable declaration.  The declared type is optional:
// when absent, the variable takes the type of its initializer.
type LetStmt struct {
	StmtBase

	// The optional explicit type annotation.
	Type *Type

	// The binding name.
	Name string

	// The initializer expression.
	Init Expr
}

// Param is a single (type, name) parameter pair of a function definition.
type Param struct {
	Type Type
	Name string
}

// FuncDef represents a function definition.  The body is an owned, ordered
// sequence of statements.
type FuncDef struct {
	StmtBase

	Name string

	// The ordered parameter list.  May be empty.
	Params []Param

	// The optional return type.  A nil return type means the function
	// returns no value.
	ReturnType *Type

	Body []Statement
}

// ReturnStmt represents a return statement with an optional return value.
type ReturnStmt struct {
	StmtBase

	// The returned expression.  Nil for a void return.
	Value Expr
}

// ExprStmt represents an expression evaluated for its side effect with the
// resulting value discarded.
type ExprStmt struct {
	StmtBase

	Expr Expr
}

// IfStmt represents a conditional statement.  There is no else clause: a
// false condition always falls through past the body.
type IfStmt struct {
	StmtBase

	Cond Expr
	Body []Statement
}
