package syntax

import "azlc/report"

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token.  This may not directly correspond to
	// the source text: eg. the value of a string token has the leading quotes
	// trimmed off for convenience.
	Value string

	// The text span over which the token occurs.
	Span *report.TextSpan
}

// Enumeration of token kinds.
const (
	TOK_FUNC = iota
	TOK_LET
	TOK_IF
	TOK_RETURN

	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_DIV
	TOK_MOD

	TOK_EQ
	TOK_NEQ
	TOK_LT
	TOK_GT
	TOK_LTEQ
	TOK_GTEQ

	TOK_LAND
	TOK_LOR

	TOK_ASSIGN
	TOK_ARROW

	TOK_LPAREN
	TOK_RPAREN
	TOK_LBRACE
	TOK_RBRACE
	TOK_COMMA
	TOK_COLON
	TOK_SEMI

	TOK_IDENT
	TOK_NUMLIT
	TOK_BOOLLIT
	TOK_STRINGLIT

	TOK_EOF
)
