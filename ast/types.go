package ast

import (
	"fmt"

	"azlc/report"
)

// TypeKind enumerates the kinds of primitive source types.  The type set is
// closed: the language has no type constructors of any form.
type TypeKind int

const (
	KindInteger TypeKind = iota
	KindFloat
	KindBool
	KindString
)

// Type is a primitive source type.  Types are immutable values and are
// comparable: two types are the same type exactly when they are equal.  The
// width field is only meaningful for integer and float types.
type Type struct {
	Kind  TypeKind
	Width int
}

var (
	BoolType   = Type{Kind: KindBool}
	StringType = Type{Kind: KindString}
)

// IntegerType creates a new integer type of the given bit width.  Widths
// other than 32 and 64 are rejected at construction.
func IntegerType(width int) (Type, error) {
	if width != 32 && width != 64 {
		return Type{}, report.Raise(report.ErrKindUnimplemented, nil, "unimplemented int width: %d", width)
	}

	return Type{Kind: KindInteger, Width: width}, nil
}

// FloatType creates a new float type of the given bit width.  Widths other
// than 32 and 64 are rejected at construction.
func FloatType(width int) (Type, error) {
	if width != 32 && width != 64 {
		return Type{}, report.Raise(report.ErrKindUnimplemented, nil, "unimplemented float width: %d", width)
	}

	return Type{Kind: KindFloat, Width: width}, nil
}

func (t Type) String() string {
	switch t.Kind {
	case KindInteger:
		return fmt.Sprintf("int%d", t.Width)
	case KindFloat:
		return fmt.Sprintf("float%d", t.Width)
	case KindBool:
		return "bool"
	default:
		return "string"
	}
}

// -----------------------------------------------------------------------------

// namedTypes maps the recognized type annotation spellings to their types.
var namedTypes = map[string]Type{
	"int":     {Kind: KindInteger, Width: 32},
	"int32":   {Kind: KindInteger, Width: 32},
	"int64":   {Kind: KindInteger, Width: 64},
	"float":   {Kind: KindFloat, Width: 32},
	"float32": {Kind: KindFloat, Width: 32},
	"float64": {Kind: KindFloat, Width: 64},
	"string":  StringType,
	"bool":    BoolType,
}

// TypeFromName resolves a source type annotation to its primitive type.  The
// returned boolean indicates whether the spelling was recognized: callers
// must treat an unrecognized annotation as a fatal error, never as a default.
func TypeFromName(name string) (Type, bool) {
	typ, ok := namedTypes[name]
	return typ, ok
}
