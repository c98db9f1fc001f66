package report

import "fmt"

// TextSpan represents a range or "span" of source text.  It is used to specify
// erroneous or otherwise significant source text in an Azalea program.  Text
// spans are half-open: the starting position is the position of the first
// character in the span and the ending position is one past the last
// character in the span.  The line and column numbers are one-indexed.
type TextSpan struct {
	// The line and column beginning the text span.
	StartLine, StartCol int

	// The line and column ending the text span.
	EndLine, EndCol int
}

// NewSpanOver returns a new text span which spans over and between the two
// given text spans.
func NewSpanOver(start, end *TextSpan) *TextSpan {
	return &TextSpan{
		StartLine: start.StartLine,
		StartCol:  start.StartCol,
		EndLine:   end.EndLine,
		EndCol:    end.EndCol,
	}
}

// -----------------------------------------------------------------------------

// Enumeration of compile error kinds.  Every error produced while translating
// a source program belongs to exactly one of these kinds.
const (
	ErrKindSyntax         = iota // Malformed source text.
	ErrKindUnresolvedType        // A type annotation not in the fixed type set.
	ErrKindUnimplemented         // An integer/float width outside {32, 64}.
	ErrKindUndefined             // A name missing from the relevant table.
	ErrKindStructure             // A structural violation (eg. non-function at top level).
	ErrKindTypeMismatch          // Operand types that do not agree.
	ErrKindMissingReturn         // A non-void function without a trailing return.
)

// errKindLabels maps error kinds to their display labels.
var errKindLabels = map[int]string{
	ErrKindSyntax:         "syntax error",
	ErrKindUnresolvedType: "unresolved type",
	ErrKindUnimplemented:  "unimplemented",
	ErrKindUndefined:      "undefined reference",
	ErrKindStructure:      "structural error",
	ErrKindTypeMismatch:   "type mismatch",
	ErrKindMissingReturn:  "missing return",
}

// CompileError is an error in the user's source program detected during
// parsing or lowering.  All compile errors are fatal: the compiler stops the
// run when the first one propagates up to the driver.
type CompileError struct {
	// The kind of the error.  This must be one of the enumerated error kinds.
	Kind int

	// The error message.
	Message string

	// The span over which the error occurs.  This may be nil for errors with
	// no meaningful source location.
	Span *TextSpan
}

func (ce *CompileError) Error() string {
	return ce.Message
}

// Label returns the display label for the error's kind.
func (ce *CompileError) Label() string {
	return errKindLabels[ce.Kind]
}

// Raise creates a new compile error of the given kind.
func Raise(kind int, span *TextSpan, msg string, args ...interface{}) *CompileError {
	return &CompileError{Kind: kind, Message: fmt.Sprintf(msg, args...), Span: span}
}
