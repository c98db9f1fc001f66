package syntax

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"azlc/report"
)

// Lexer is responsible for tokenizing a source file.
type Lexer struct {
	file    *bufio.Reader
	tokBuff *strings.Builder

	line, col           int
	startLine, startCol int
}

// NewLexer creates a new lexer reading from the given source.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		file:    bufio.NewReader(r),
		tokBuff: &strings.Builder{},
		line:    1,
		col:     1,
	}
}

// NextToken retrieves the next token from the input.  If the input has
// ended, this will be an EOF token.
func (l *Lexer) NextToken() (*Token, error) {
	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if c == -1 {
			break
		}

		switch c {
		case '\n', '\t', ' ', '\r', '\v', '\f':
			l.skip()
		case '/':
			if tok, err := l.lexCommentOrDiv(); tok != nil || err != nil {
				return tok, err
			}
		case '"':
			return l.lexStringLit()
		default:
			if isDecimalDigit(c) {
				return l.lexNumberLit()
			} else if isFirstIdentChar(c) {
				return l.lexIdentOrKeyword()
			} else {
				return l.lexPunctOrOper()
			}
		}
	}

	return &Token{Kind: TOK_EOF, Span: l.getSpan()}, nil
}

// -----------------------------------------------------------------------------

// symbolPatterns maps symbol strings (patterns) to their punctuation or
// operator token kind.
var symbolPatterns = map[string]int{
	"+": TOK_PLUS,
	"-": TOK_MINUS,
	"*": TOK_STAR,
	// Division operator is handled with comment logic.
	"%": TOK_MOD,

	"==": TOK_EQ,
	"!=": TOK_NEQ,
	"<":  TOK_LT,
	"<=": TOK_LTEQ,
	">":  TOK_GT,
	">=": TOK_GTEQ,

	"&&": TOK_LAND,
	"||": TOK_LOR,

	"=":  TOK_ASSIGN,
	"->": TOK_ARROW,

	"(": TOK_LPAREN,
	")": TOK_RPAREN,
	"{": TOK_LBRACE,
	"}": TOK_RBRACE,
	",": TOK_COMMA,
	":": TOK_COLON,
	";": TOK_SEMI,
}

// lexPunctOrOper lexes a punctuation or operator symbol by maximal munch
// over the symbol patterns.
func (l *Lexer) lexPunctOrOper() (*Token, error) {
	l.mark()
	l.eat()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if c == -1 {
			break
		}

		if _, ok := symbolPatterns[l.tokBuff.String()+string(c)]; ok {
			l.eat()
		} else {
			break
		}
	}

	kind, ok := symbolPatterns[l.tokBuff.String()]
	if !ok {
		return nil, report.Raise(report.ErrKindSyntax, l.getSpan(), "unknown symbol: `%s`", l.tokBuff.String())
	}

	return l.makeToken(kind), nil
}

// -----------------------------------------------------------------------------

// keywordPatterns maps keyword strings (patterns) to their keyword token
// kind.
var keywordPatterns = map[string]int{
	"func":   TOK_FUNC,
	"let":    TOK_LET,
	"if":     TOK_IF,
	"return": TOK_RETURN,

	"true":  TOK_BOOLLIT,
	"false": TOK_BOOLLIT,
}

// lexIdentOrKeyword lexes an identifier or a keyword.
func (l *Lexer) lexIdentOrKeyword() (*Token, error) {
	l.mark()
	l.eat()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if !isFirstIdentChar(c) && !isDecimalDigit(c) {
			break
		}

		l.eat()
	}

	kind := TOK_IDENT
	if keywordKind, ok := keywordPatterns[l.tokBuff.String()]; ok {
		kind = keywordKind
	}

	return l.makeToken(kind), nil
}

// lexNumberLit lexes a numeric literal: a decimal integer or float with an
// optional fraction and exponent.
func (l *Lexer) lexNumberLit() (*Token, error) {
	l.mark()
	l.eat()

	hasDot, hasExp := false, false
	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		if isDecimalDigit(c) {
			l.eat()
		} else if c == '.' && !hasDot && !hasExp {
			hasDot = true
			l.eat()
		} else if (c == 'e' || c == 'E') && !hasExp {
			hasExp = true
			l.eat()

			if c, err = l.peek(); err != nil {
				return nil, err
			} else if c == '+' || c == '-' {
				l.eat()
			}
		} else {
			break
		}
	}

	return l.makeToken(TOK_NUMLIT), nil
}

// lexStringLit lexes a standard double-quoted string literal.
func (l *Lexer) lexStringLit() (*Token, error) {
	l.mark()
	l.skip()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		switch c {
		case -1, '\n':
			return nil, report.Raise(report.ErrKindSyntax, l.getSpan(), "unclosed string literal")
		case '"':
			l.skip()
			return l.makeToken(TOK_STRINGLIT), nil
		case '\\':
			l.skip()

			if err := l.lexEscapeSequence(); err != nil {
				return nil, err
			}
		default:
			l.eat()
		}
	}
}

// lexEscapeSequence lexes the character following a backslash in a string
// literal and writes the escaped rune to the token buffer.
func (l *Lexer) lexEscapeSequence() error {
	c, err := l.peek()
	if err != nil {
		return err
	}

	switch c {
	case 'n':
		l.tokBuff.WriteRune('\n')
	case 't':
		l.tokBuff.WriteRune('\t')
	case 'r':
		l.tokBuff.WriteRune('\r')
	case '0':
		l.tokBuff.WriteRune(0)
	case '"', '\\':
		l.tokBuff.WriteRune(c)
	default:
		return report.Raise(report.ErrKindSyntax, l.getSpan(), "unknown escape sequence: `\\%c`", c)
	}

	l.skip()
	return nil
}

// lexCommentOrDiv lexes either a line comment, in which case it returns a nil
// token and the lexer continues, or a division operator.
func (l *Lexer) lexCommentOrDiv() (*Token, error) {
	l.mark()
	l.eat()

	c, err := l.peek()
	if err != nil {
		return nil, err
	}

	if c != '/' {
		return l.makeToken(TOK_DIV), nil
	}

	for c != -1 && c != '\n' {
		l.skip()

		if c, err = l.peek(); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

// -----------------------------------------------------------------------------

// peek returns the next rune in the input without moving the lexer forward.
// It returns -1 at the end of the input.
func (l *Lexer) peek() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err == io.EOF {
		return -1, nil
	} else if err != nil {
		return 0, report.Raise(report.ErrKindSyntax, l.getSpan(), "failed to read input: %s", err)
	}

	l.file.UnreadRune()
	return c, nil
}

// eat moves the lexer forward one rune, adding it to the current token.
func (l *Lexer) eat() {
	c, _, err := l.file.ReadRune()
	if err != nil {
		return
	}

	l.tokBuff.WriteRune(c)
	l.advance(c)
}

// skip moves the lexer forward one rune without recording it.
func (l *Lexer) skip() {
	c, _, err := l.file.ReadRune()
	if err != nil {
		return
	}

	l.advance(c)
}

// advance updates the lexer's position for the consumed rune.
func (l *Lexer) advance(c rune) {
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
}

// mark records the start of a new token.
func (l *Lexer) mark() {
	l.tokBuff.Reset()
	l.startLine = l.line
	l.startCol = l.col
}

// getSpan returns the span from the last mark to the current position.
func (l *Lexer) getSpan() *report.TextSpan {
	return &report.TextSpan{
		StartLine: l.startLine,
		StartCol:  l.startCol,
		EndLine:   l.line,
		EndCol:    l.col,
	}
}

// makeToken produces a token of the given kind from the token buffer.
func (l *Lexer) makeToken(kind int) *Token {
	return &Token{
		Kind:  kind,
		Value: l.tokBuff.String(),
		Span:  l.getSpan(),
	}
}

// -----------------------------------------------------------------------------

func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isFirstIdentChar(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}
