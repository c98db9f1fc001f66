// Package syntax implements the frontend for the Azalea language: a lexer
// and a recursive descent parser producing the AST the lowering pipeline
// consumes.  All parsing functions assume that they begin with the parser
// centered on the first token of their production and consume all tokens of
// their production, leaving the parser on the next token.
package syntax

import (
	"io"

	"azlc/ast"
	"azlc/report"
)

// Parser is the parser for an Azalea source file.  It performs syntax
// analysis and AST generation only: name resolution and type checking happen
// during lowering.
type Parser struct {
	// lexer is the Lexer this parser is using to lex the source file.
	lexer *Lexer

	// tok is the current token the parser is positioned on.
	tok *Token

	// lookbehind is the token before the current token.
	lookbehind *Token
}

// NewParser creates a new parser reading from the given source.
func NewParser(r io.Reader) *Parser {
	return &Parser{lexer: NewLexer(r)}
}

// Parse parses a whole source file into its ordered sequence of top-level
// statements.
func (p *Parser) Parse() ([]ast.Statement, error) {
	if err := p.next(); err != nil {
		return nil, err
	}

	var program []ast.Statement
	for !p.got(TOK_EOF) {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}

		program = append(program, stmt)
	}

	return program, nil
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.
func (p *Parser) next() error {
	tok, err := p.lexer.NextToken()
	if err != nil {
		return err
	}

	p.lookbehind = p.tok
	p.tok = tok
	return nil
}

// got returns true if the parser is on a token of the given kind.
func (p *Parser) got(kind int) bool {
	return p.tok.Kind == kind
}

// gotOneOf returns true if the parser's current token kind is one of the
// given kinds.
func (p *Parser) gotOneOf(kinds ...int) bool {
	for _, kind := range kinds {
		if p.tok.Kind == kind {
			return true
		}
	}

	return false
}

// want asserts that the parser is on a token of the given kind, returning
// the token and moving the parser forward.
func (p *Parser) want(kind int) (*Token, error) {
	if !p.got(kind) {
		return nil, p.reject()
	}

	tok := p.tok
	if err := p.next(); err != nil {
		return nil, err
	}

	return tok, nil
}

// reject raises a syntax error on the current token.
func (p *Parser) reject() error {
	if p.tok.Kind == TOK_EOF {
		return report.Raise(report.ErrKindSyntax, p.tok.Span, "unexpected end of file")
	}

	return report.Raise(report.ErrKindSyntax, p.tok.Span, "unexpected token: `%s`", p.tok.Value)
}
