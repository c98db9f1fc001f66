package syntax

import (
	"strings"
	"testing"

	"azlc/ast"
	"azlc/report"
)

// parseSource parses a source string into its top-level statements.
func parseSource(t *testing.T, src string) []ast.Statement {
	t.Helper()

	program, err := NewParser(strings.NewReader(src)).Parse()
	if err != nil {
		t.Fatalf("parse failed: %s", err)
	}

	return program
}

func TestParseFuncDefSignature(t *testing.T) {
	program := parseSource(t, `func add(x: int32, y: int32) -> int32 { return x + y; }`)
	if len(program) != 1 {
		t.Fatalf("expected 1 top-level statement, got %d", len(program))
	}

	fd, ok := program[0].(*ast.FuncDef)
	if !ok {
		t.Fatalf("expected a function definition, got %T", program[0])
	}

	if fd.Name != "add" {
		t.Fatalf("expected function name `add`, got `%s`", fd.Name)
	}

	if len(fd.Params) != 2 || fd.Params[0].Name != "x" || fd.Params[1].Name != "y" {
		t.Fatalf("unexpected parameter list: %v", fd.Params)
	}

	wantType := ast.Type{Kind: ast.KindInteger, Width: 32}
	if fd.Params[0].Type != wantType || fd.Params[1].Type != wantType {
		t.Fatalf("expected int32 parameters, got %s and %s", fd.Params[0].Type, fd.Params[1].Type)
	}

	if fd.ReturnType == nil || *fd.ReturnType != wantType {
		t.Fatalf("expected int32 return type, got %v", fd.ReturnType)
	}

	if len(fd.Body) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(fd.Body))
	}

	ret, ok := fd.Body[0].(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("expected a return statement, got %T", fd.Body[0])
	}

	bop, ok := ret.Value.(*ast.BinaryOp)
	if !ok || bop.Op != ast.OpAdd {
		t.Fatalf("expected an addition return value, got %v", ret.Value)
	}
}

func TestParseVoidFuncDef(t *testing.T) {
	program := parseSource(t, `func greet() { print("hello"); }`)

	fd := program[0].(*ast.FuncDef)
	if fd.ReturnType != nil {
		t.Fatalf("expected no return type, got %s", *fd.ReturnType)
	}

	es, ok := fd.Body[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("expected an expression statement, got %T", fd.Body[0])
	}

	call, ok := es.Expr.(*ast.Call)
	if !ok || call.Callee != "print" || len(call.Args) != 1 {
		t.Fatalf("expected a one-argument call to print, got %v", es.Expr)
	}

	lit, ok := call.Args[0].(*ast.StringLit)
	if !ok || lit.Value != "hello" {
		t.Fatalf("expected string literal argument `hello`, got %v", call.Args[0])
	}
}

func TestParseLetAndIf(t *testing.T) {
	program := parseSource(t, `func main() -> int32 { let z: int32 = 5; if z { return z; } return 0; }`)

	fd := program[0].(*ast.FuncDef)
	if len(fd.Body) != 3 {
		t.Fatalf("expected 3 body statements, got %d", len(fd.Body))
	}

	let, ok := fd.Body[0].(*ast.LetStmt)
	if !ok || let.Name != "z" {
		t.Fatalf("expected a let binding of z, got %v", fd.Body[0])
	}

	if let.Type == nil || let.Type.Kind != ast.KindInteger || let.Type.Width != 32 {
		t.Fatalf("expected declared type int32, got %v", let.Type)
	}

	num, ok := let.Init.(*ast.NumberLit)
	if !ok || num.Value != 5 {
		t.Fatalf("expected initializer 5, got %v", let.Init)
	}

	ifStmt, ok := fd.Body[1].(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected an if statement, got %T", fd.Body[1])
	}

	if _, ok := ifStmt.Cond.(*ast.Identifier); !ok {
		t.Fatalf("expected an identifier condition, got %T", ifStmt.Cond)
	}

	if len(ifStmt.Body) != 1 {
		t.Fatalf("expected 1 statement in the if body, got %d", len(ifStmt.Body))
	}
}

func TestParseLetWithoutTypeAnnotation(t *testing.T) {
	program := parseSource(t, `func f() { let x = 1.5; }`)

	let := program[0].(*ast.FuncDef).Body[0].(*ast.LetStmt)
	if let.Type != nil {
		t.Fatalf("expected no declared type, got %s", *let.Type)
	}

	if num := let.Init.(*ast.NumberLit); num.Value != 1.5 {
		t.Fatalf("expected initializer 1.5, got %v", num.Value)
	}
}

func TestParseOperatorPrecedence(t *testing.T) {
	program := parseSource(t, `func f() { let x = 1 + 2 * 3 < 4 && true; }`)

	// (((1 + (2 * 3)) < 4) && true)
	let := program[0].(*ast.FuncDef).Body[0].(*ast.LetStmt)

	and, ok := let.Init.(*ast.BinaryOp)
	if !ok || and.Op != ast.OpAnd {
		t.Fatalf("expected && at the root, got %v", let.Init)
	}

	lt, ok := and.Lhs.(*ast.BinaryOp)
	if !ok || lt.Op != ast.OpLessThan {
		t.Fatalf("expected < below &&, got %v", and.Lhs)
	}

	add, ok := lt.Lhs.(*ast.BinaryOp)
	if !ok || add.Op != ast.OpAdd {
		t.Fatalf("expected + below <, got %v", lt.Lhs)
	}

	mul, ok := add.Rhs.(*ast.BinaryOp)
	if !ok || mul.Op != ast.OpMul {
		t.Fatalf("expected * below +, got %v", add.Rhs)
	}
}

func TestParseLeftAssociativity(t *testing.T) {
	program := parseSource(t, `func f() { let x = 10 - 4 - 3; }`)

	// ((10 - 4) - 3)
	let := program[0].(*ast.FuncDef).Body[0].(*ast.LetStmt)

	outer := let.Init.(*ast.BinaryOp)
	if outer.Op != ast.OpSub {
		t.Fatalf("expected - at the root, got %s", outer.Op)
	}

	if rhs := outer.Rhs.(*ast.NumberLit); rhs.Value != 3 {
		t.Fatalf("expected right operand 3, got %v", rhs.Value)
	}

	inner := outer.Lhs.(*ast.BinaryOp)
	if inner.Op != ast.OpSub {
		t.Fatalf("expected a nested - on the left, got %s", inner.Op)
	}
}

func TestParseUnknownTypeAnnotation(t *testing.T) {
	_, err := NewParser(strings.NewReader(`func f(x: int16) { return; }`)).Parse()
	if err == nil {
		t.Fatalf("expected an unresolved-type error")
	}

	cerr, ok := err.(*report.CompileError)
	if !ok || cerr.Kind != report.ErrKindUnresolvedType {
		t.Fatalf("expected an unresolved-type error, got %v", err)
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	for _, src := range []string{
		`func f( { }`,
		`func f() { let = 5; }`,
		`func f() { return 1 }`,
		`func f() { "unclosed }`,
		`func f() { let x = 5 ? 3; }`,
	} {
		_, err := NewParser(strings.NewReader(src)).Parse()
		if err == nil {
			t.Fatalf("expected a syntax error for %q", src)
		}

		if cerr, ok := err.(*report.CompileError); !ok || cerr.Kind != report.ErrKindSyntax {
			t.Fatalf("expected a syntax error for %q, got %v", src, err)
		}
	}
}

func TestParseCommentsAndWhitespace(t *testing.T) {
	program := parseSource(t, `
// a whole-line comment
func f() -> float64 { // a trailing comment
	return 6.0 / 3.0;
}
`)

	fd := program[0].(*ast.FuncDef)
	if fd.Name != "f" || len(fd.Body) != 1 {
		t.Fatalf("unexpected parse result: %v", fd)
	}

	div := fd.Body[0].(*ast.ReturnStmt).Value.(*ast.BinaryOp)
	if div.Op != ast.OpDiv {
		t.Fatalf("expected a division, got %s", div.Op)
	}
}

func TestParseSpansAreTracked(t *testing.T) {
	program := parseSource(t, "func f() {\n    let x = 1;\n}")

	let := program[0].(*ast.FuncDef).Body[0].(*ast.LetStmt)
	if span := let.Span(); span.StartLine != 2 {
		t.Fatalf("expected the let statement to start on line 2, got %d", span.StartLine)
	}
}
