package syntax

import (
	"azlc/ast"
	"azlc/report"
)

// stmt := func_def | let_stmt | return_stmt | if_stmt | expr ';' ;
func (p *Parser) parseStmt() (ast.Statement, error) {
	switch p.tok.Kind {
	case TOK_FUNC:
		return p.parseFuncDef()
	case TOK_LET:
		return p.parseLetStmt()
	case TOK_RETURN:
		return p.parseReturnStmt()
	case TOK_IF:
		return p.parseIfStmt()
	default:
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if _, err := p.want(TOK_SEMI); err != nil {
			return nil, err
		}

		return &ast.ExprStmt{
			StmtBase: ast.StmtBase{NodeBase: ast.NewNodeBaseOver(expr.Span(), p.lookbehind.Span)},
			Expr:     expr,
		}, nil
	}
}

// func_def := 'func' IDENT '(' [param {',' param}] ')' ['->' type_label] block ;
// param := IDENT ':' type_label ;
func (p *Parser) parseFuncDef() (ast.Statement, error) {
	startSpan := p.tok.Span
	if err := p.next(); err != nil {
		return nil, err
	}

	nameTok, err := p.want(TOK_IDENT)
	if err != nil {
		return nil, err
	}

	if _, err := p.want(TOK_LPAREN); err != nil {
		return nil, err
	}

	var params []ast.Param
	for !p.got(TOK_RPAREN) {
		if len(params) > 0 {
			if _, err := p.want(TOK_COMMA); err != nil {
				return nil, err
			}
		}

		paramTok, err := p.want(TOK_IDENT)
		if err != nil {
			return nil, err
		}

		if _, err := p.want(TOK_COLON); err != nil {
			return nil, err
		}

		paramType, err := p.parseTypeLabel()
		if err != nil {
			return nil, err
		}

		params = append(params, ast.Param{Type: paramType, Name: paramTok.Value})
	}

	if err := p.next(); err != nil {
		return nil, err
	}

	var returnType *ast.Type
	if p.got(TOK_ARROW) {
		if err := p.next(); err != nil {
			return nil, err
		}

		rtType, err := p.parseTypeLabel()
		if err != nil {
			return nil, err
		}

		returnType = &rtType
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.FuncDef{
		StmtBase:   ast.StmtBase{NodeBase: ast.NewNodeBaseOver(startSpan, p.lookbehind.Span)},
		Name:       nameTok.Value,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
	}, nil
}

// let_stmt := 'let' IDENT [':' type_label] '=' expr ';' ;
func (p *Parser) parseLetStmt() (ast.Statement, error) {
	startSpan := p.tok.Span
	if err := p.next(); err != nil {
		return nil, err
	}

	nameTok, err := p.want(TOK_IDENT)
	if err != nil {
		return nil, err
	}

	var declType *ast.Type
	if p.got(TOK_COLON) {
		if err := p.next(); err != nil {
			return nil, err
		}

		typ, err := p.parseTypeLabel()
		if err != nil {
			return nil, err
		}

		declType = &typ
	}

	if _, err := p.want(TOK_ASSIGN); err != nil {
		return nil, err
	}

	init, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.want(TOK_SEMI); err != nil {
		return nil, err
	}

	return &ast.LetStmt{
		StmtBase: ast.StmtBase{NodeBase: ast.NewNodeBaseOver(startSpan, p.lookbehind.Span)},
		Type:     declType,
		Name:     nameTok.Value,
		Init:     init,
	}, nil
}

// return_stmt := 'return' [expr] ';' ;
func (p *Parser) parseReturnStmt() (ast.Statement, error) {
	startSpan := p.tok.Span
	if err := p.next(); err != nil {
		return nil, err
	}

	var value ast.Expr
	if !p.got(TOK_SEMI) {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		value = expr
	}

	if _, err := p.want(TOK_SEMI); err != nil {
		return nil, err
	}

	return &ast.ReturnStmt{
		StmtBase: ast.StmtBase{NodeBase: ast.NewNodeBaseOver(startSpan, p.lookbehind.Span)},
		Value:    value,
	}, nil
}

// if_stmt := 'if' expr block ;
func (p *Parser) parseIfStmt() (ast.Statement, error) {
	startSpan := p.tok.Span
	if err := p.next(); err != nil {
		return nil, err
	}

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.IfStmt{
		StmtBase: ast.StmtBase{NodeBase: ast.NewNodeBaseOver(startSpan, p.lookbehind.Span)},
		Cond:     cond,
		Body:     body,
	}, nil
}

// block := '{' {stmt} '}' ;
func (p *Parser) parseBlock() ([]ast.Statement, error) {
	if _, err := p.want(TOK_LBRACE); err != nil {
		return nil, err
	}

	var stmts []ast.Statement
	for !p.got(TOK_RBRACE) {
		if p.got(TOK_EOF) {
			return nil, p.reject()
		}

		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}

		stmts = append(stmts, stmt)
	}

	if err := p.next(); err != nil {
		return nil, err
	}

	return stmts, nil
}

// type_label := IDENT ;
// The annotation is resolved against the fixed primitive type set here: an
// unrecognized spelling is an error, never a default.
func (p *Parser) parseTypeLabel() (ast.Type, error) {
	typeTok, err := p.want(TOK_IDENT)
	if err != nil {
		return ast.Type{}, err
	}

	typ, ok := ast.TypeFromName(typeTok.Value)
	if !ok {
		return ast.Type{}, report.Raise(report.ErrKindUnresolvedType, typeTok.Span, "unknown type: `%s`", typeTok.Value)
	}

	return typ, nil
}
