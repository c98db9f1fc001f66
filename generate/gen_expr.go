package generate

import (
	"fmt"

	"azlc/ast"
	"azlc/report"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// genExpr lowers an expression onto the end of the given block and returns
// the resulting IR value.
func (g *Generator) genExpr(block *ir.Block, expr ast.Expr) (value.Value, error) {
	switch v := expr.(type) {
	case *ast.NumberLit:
		// Numeric literals are 64-bit float constants in this design.
		return constant.NewFloat(types.Double, v.Value), nil
	case *ast.BoolLit:
		return constant.NewBool(v.Value), nil
	case *ast.StringLit:
		return g.genStringLit(block, v), nil
	case *ast.Identifier:
		slot, ok := g.locals[v.Name]
		if !ok {
			return nil, report.Raise(report.ErrKindUndefined, v.Span(), "undefined variable: `%s`", v.Name)
		}

		return block.NewLoad(slot.Type, slot.Ptr), nil
	case *ast.BinaryOp:
		return g.genBinaryOp(block, v)
	case *ast.Call:
		return g.genCall(block, v)
	}

	return nil, report.Raise(report.ErrKindStructure, expr.Span(), "expression cannot be lowered")
}

// genStringLit lowers a string literal: the bytes are interned as a private
// null-terminated global and the literal's value is a pointer to them.
func (g *Generator) genStringLit(block *ir.Block, lit *ast.StringLit) value.Value {
	strBytes := g.mod.NewGlobalDef(fmt.Sprintf("__strlit.%d", g.strCount), constant.NewCharArrayFromString(lit.Value+"\x00"))
	g.strCount++
	strBytes.Linkage = enum.LinkagePrivate
	strBytes.Immutable = true

	return block.NewBitCast(strBytes, types.I8Ptr)
}

// genCall lowers a function call: the callee is resolved by name in the
// module's function table and the arguments are lowered in left-to-right
// order.
func (g *Generator) genCall(block *ir.Block, call *ast.Call) (value.Value, error) {
	llvmFunc, ok := g.funcs[call.Callee]
	if !ok {
		return nil, report.Raise(report.ErrKindUndefined, call.Span(), "call to undeclared function: `%s`", call.Callee)
	}

	// The argument count must match the signature exactly; only a variadic
	// callee may take extras beyond its fixed parameters.
	if len(call.Args) < len(llvmFunc.Sig.Params) ||
		(len(call.Args) > len(llvmFunc.Sig.Params) && !llvmFunc.Sig.Variadic) {

		return nil, report.Raise(
			report.ErrKindTypeMismatch, call.Span(),
			"function `%s` takes %d arguments, not %d", call.Callee, len(llvmFunc.Sig.Params), len(call.Args),
		)
	}

	args := make([]value.Value, len(call.Args))
	for i, argExpr := range call.Args {
		arg, err := g.genExpr(block, argExpr)
		if err != nil {
			return nil, err
		}

		// Adapt each argument to its parameter type where one exists; the
		// trailing arguments of a variadic callee pass through unchanged.
		if i < len(llvmFunc.Sig.Params) {
			arg = coerce(block, arg, llvmFunc.Sig.Params[i])
			if !arg.Type().Equal(llvmFunc.Sig.Params[i]) {
				return nil, report.Raise(
					report.ErrKindTypeMismatch, argExpr.Span(),
					"argument %d of `%s` must be %s, not %s", i+1, call.Callee, llvmFunc.Sig.Params[i], arg.Type(),
				)
			}
		}

		args[i] = arg
	}

	return block.NewCall(llvmFunc, args...), nil
}

// -----------------------------------------------------------------------------

// intPreds maps comparison opcodes to their signed integer predicates.
var intPreds = map[ast.Opcode]enum.IPred{
	ast.OpEq:           enum.IPredEQ,
	ast.OpNotEq:        enum.IPredNE,
	ast.OpLessThan:     enum.IPredSLT,
	ast.OpGreaterThan:  enum.IPredSGT,
	ast.OpLessEqual:    enum.IPredSLE,
	ast.OpGreaterEqual: enum.IPredSGE,
}

// floatPreds maps comparison opcodes to their ordered float predicates.
var floatPreds = map[ast.Opcode]enum.FPred{
	ast.OpEq:           enum.FPredOEQ,
	ast.OpNotEq:        enum.FPredONE,
	ast.OpLessThan:     enum.FPredOLT,
	ast.OpGreaterThan:  enum.FPredOGT,
	ast.OpLessEqual:    enum.FPredOLE,
	ast.OpGreaterEqual: enum.FPredOGE,
}

// genBinaryOp lowers a binary operator application.  The left operand lowers
// before the right; the operand IR type selects the instruction family.  The
// primitive type set does not auto-coerce: mismatched operand types are an
// error.
func (g *Generator) genBinaryOp(block *ir.Block, bop *ast.BinaryOp) (value.Value, error) {
	lhs, err := g.genExpr(block, bop.Lhs)
	if err != nil {
		return nil, err
	}

	rhs, err := g.genExpr(block, bop.Rhs)
	if err != nil {
		return nil, err
	}

	if !lhs.Type().Equal(rhs.Type()) {
		return nil, report.Raise(
			report.ErrKindTypeMismatch, bop.Span(),
			"mismatched operand types for `%s`: %s and %s", bop.Op, lhs.Type(), rhs.Type(),
		)
	}

	switch lhs.Type().(type) {
	case *types.IntType:
		// Booleans are i1 and share the integer instruction family.
		return g.genIntOp(block, bop, lhs, rhs)
	case *types.FloatType:
		return g.genFloatOp(block, bop, lhs, rhs)
	}

	return nil, report.Raise(report.ErrKindTypeMismatch, bop.Span(), "operator `%s` is not defined for type %s", bop.Op, lhs.Type())
}

// genIntOp emits the integer instruction for a binary operator.
func (g *Generator) genIntOp(block *ir.Block, bop *ast.BinaryOp, lhs, rhs value.Value) (value.Value, error) {
	switch bop.Op {
	case ast.OpMul:
		return block.NewMul(lhs, rhs), nil
	case ast.OpDiv:
		return block.NewSDiv(lhs, rhs), nil
	case ast.OpAdd:
		return block.NewAdd(lhs, rhs), nil
	case ast.OpSub:
		return block.NewSub(lhs, rhs), nil
	case ast.OpRem:
		return block.NewSRem(lhs, rhs), nil
	case ast.OpOr:
		return block.NewOr(lhs, rhs), nil
	case ast.OpAnd:
		return block.NewAnd(lhs, rhs), nil
	}

	return block.NewICmp(intPreds[bop.Op], lhs, rhs), nil
}

// genFloatOp emits the float instruction for a binary operator.
func (g *Generator) genFloatOp(block *ir.Block, bop *ast.BinaryOp, lhs, rhs value.Value) (value.Value, error) {
	switch bop.Op {
	case ast.OpMul:
		return block.NewFMul(lhs, rhs), nil
	case ast.OpDiv:
		return block.NewFDiv(lhs, rhs), nil
	case ast.OpAdd:
		return block.NewFAdd(lhs, rhs), nil
	case ast.OpSub:
		return block.NewFSub(lhs, rhs), nil
	case ast.OpRem:
		return block.NewFRem(lhs, rhs), nil
	case ast.OpOr, ast.OpAnd:
		return nil, report.Raise(report.ErrKindTypeMismatch, bop.Span(), "operator `%s` is not defined for type %s", bop.Op, lhs.Type())
	}

	return block.NewFCmp(floatPreds[bop.Op], lhs, rhs), nil
}
