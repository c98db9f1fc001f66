package syntax

import (
	"strconv"

	"azlc/ast"
	"azlc/report"
)

// expr := bin_op_expr ;
func (p *Parser) parseExpr() (ast.Expr, error) {
	lhs, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	return p.precedenceParse(lhs, len(precTable))
}

// precTable is the operator precedence table for binary operators.  The
// table is ordered highest to lowest precedence.
var precTable = [][]int{
	{TOK_STAR, TOK_DIV, TOK_MOD},
	{TOK_PLUS, TOK_MINUS},
	{TOK_LT, TOK_GT, TOK_LTEQ, TOK_GTEQ},
	{TOK_EQ, TOK_NEQ},
	{TOK_LAND},
	{TOK_LOR},
}

// tokKindOpcodes maps operator token kinds to their opcodes.
var tokKindOpcodes = map[int]ast.Opcode{
	TOK_STAR:  ast.OpMul,
	TOK_DIV:   ast.OpDiv,
	TOK_MOD:   ast.OpRem,
	TOK_PLUS:  ast.OpAdd,
	TOK_MINUS: ast.OpSub,
	TOK_LT:    ast.OpLessThan,
	TOK_GT:    ast.OpGreaterThan,
	TOK_LTEQ:  ast.OpLessEqual,
	TOK_GTEQ:  ast.OpGreaterEqual,
	TOK_EQ:    ast.OpEq,
	TOK_NEQ:   ast.OpNotEq,
	TOK_LAND:  ast.OpAnd,
	TOK_LOR:   ast.OpOr,
}

// precedenceParse performs operator precedence parsing for binary operators:
// an augmented implementation of a Pratt parser.  Only operators at or above
// the given precedence bound are consumed.
func (p *Parser) precedenceParse(lhs ast.Expr, maxPrec int) (ast.Expr, error) {
	for {
		// Check whether the lookahead matches any operator at or above our
		// precedence level.
		var opTok *Token
		var opPrec int
		for prec, precLevel := range precTable[:maxPrec] {
			if p.gotOneOf(precLevel...) {
				opTok = p.tok
				opPrec = prec
				break
			}
		}

		// No matching operator: the expression is finished.
		if opTok == nil {
			return lhs, nil
		}

		if err := p.next(); err != nil {
			return nil, err
		}

		rhs, err := p.parseAtom()
		if err != nil {
			return nil, err
		}

		// Bind all tighter operators into the right operand; operators at the
		// same level stay left-associative.
		if rhs, err = p.precedenceParse(rhs, opPrec); err != nil {
			return nil, err
		}

		lhs = &ast.BinaryOp{
			ExprBase: ast.ExprBase{NodeBase: ast.NewNodeBaseOver(lhs.Span(), rhs.Span())},
			Op:       tokKindOpcodes[opTok.Kind],
			Lhs:      lhs,
			Rhs:      rhs,
		}
	}
}

// -----------------------------------------------------------------------------

// atom := NUMLIT | STRINGLIT | BOOLLIT | IDENT [call_args] | '(' expr ')' ;
// call_args := '(' [expr {',' expr}] ')' ;
func (p *Parser) parseAtom() (ast.Expr, error) {
	switch p.tok.Kind {
	case TOK_NUMLIT:
		value, err := strconv.ParseFloat(p.tok.Value, 64)
		if err != nil {
			return nil, report.Raise(report.ErrKindSyntax, p.tok.Span, "invalid numeric literal: `%s`", p.tok.Value)
		}

		lit := &ast.NumberLit{
			ExprBase: ast.ExprBase{NodeBase: ast.NewNodeBaseOn(p.tok.Span)},
			Value:    value,
		}

		return lit, p.next()
	case TOK_STRINGLIT:
		lit := &ast.StringLit{
			ExprBase: ast.ExprBase{NodeBase: ast.NewNodeBaseOn(p.tok.Span)},
			Value:    p.tok.Value,
		}

		return lit, p.next()
	case TOK_BOOLLIT:
		lit := &ast.BoolLit{
			ExprBase: ast.ExprBase{NodeBase: ast.NewNodeBaseOn(p.tok.Span)},
			Value:    p.tok.Value == "true",
		}

		return lit, p.next()
	case TOK_IDENT:
		identTok := p.tok
		if err := p.next(); err != nil {
			return nil, err
		}

		if p.got(TOK_LPAREN) {
			return p.parseCall(identTok)
		}

		return &ast.Identifier{
			ExprBase: ast.ExprBase{NodeBase: ast.NewNodeBaseOn(identTok.Span)},
			Name:     identTok.Value,
		}, nil
	case TOK_LPAREN:
		if err := p.next(); err != nil {
			return nil, err
		}

		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if _, err := p.want(TOK_RPAREN); err != nil {
			return nil, err
		}

		return expr, nil
	}

	return nil, p.reject()
}

// parseCall parses the argument list of a function call whose callee token
// has already been consumed.  The parser is positioned on the `(`.
func (p *Parser) parseCall(calleeTok *Token) (ast.Expr, error) {
	if err := p.next(); err != nil {
		return nil, err
	}

	var args []ast.Expr
	for !p.got(TOK_RPAREN) {
		if len(args) > 0 {
			if _, err := p.want(TOK_COMMA); err != nil {
				return nil, err
			}
		}

		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		args = append(args, arg)
	}

	if err := p.next(); err != nil {
		return nil, err
	}

	return &ast.Call{
		ExprBase: ast.ExprBase{NodeBase: ast.NewNodeBaseOver(calleeTok.Span, p.lookbehind.Span)},
		Callee:   calleeTok.Value,
		Args:     args,
	}, nil
}
