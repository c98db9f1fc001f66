package ast

// Opcode enumerates the binary operators of the language.  Every opcode is a
// pure, side-effect-free binary operator; which instruction family (integer,
// float, or boolean) an opcode lowers to is decided by the lowerer from the
// operand types, not by the opcode itself.
type Opcode int

const (
	OpMul Opcode = iota
	OpDiv
	OpAdd
	OpSub
	OpRem

	OpEq
	OpNotEq
	OpLessThan
	OpGreaterThan
	OpLessEqual
	OpGreaterEqual

	OpOr
	OpAnd
)

// opSpellings maps opcodes to their source spellings.
var opSpellings = map[Opcode]string{
	OpMul:          "*",
	OpDiv:          "/",
	OpAdd:          "+",
	OpSub:          "-",
	OpRem:          "%",
	OpEq:           "==",
	OpNotEq:        "!=",
	OpLessThan:     "<",
	OpGreaterThan:  ">",
	OpLessEqual:    "<=",
	OpGreaterEqual: ">=",
	OpOr:           "||",
	OpAnd:          "&&",
}

func (op Opcode) String() string {
	return opSpellings[op]
}
