package generate

import (
	"azlc/ast"
	"azlc/report"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// genStmt lowers a single statement onto the end of the given block.  It
// returns the block in which lowering continues: the same block for straight
// line statements, a fresh fall-through block for branching ones, or nil if
// the statement terminated the control path.
func (g *Generator) genStmt(block *ir.Block, stmt ast.Statement) (*ir.Block, error) {
	switch v := stmt.(type) {
	case *ast.LetStmt:
		return g.genLet(block, v)
	case *ast.ReturnStmt:
		return g.genReturn(block, v)
	case *ast.ExprStmt:
		// Evaluated for its side effect; the value is discarded.
		_, err := g.genExpr(block, v.Expr)
		return block, err
	case *ast.IfStmt:
		return g.genIf(block, v)
	case *ast.FuncDef:
		return nil, report.Raise(report.ErrKindStructure, v.Span(), "function `%s` defined below top level", v.Name)
	}

	return nil, report.Raise(report.ErrKindStructure, stmt.Span(), "statement cannot be lowered")
}

// genLet lowers a variable declaration: a new named stack slot sized for the
// declared type if present, else for the initializer's type.  The binding
// overwrites any prior binding of the same name for the remainder of the
// function.
func (g *Generator) genLet(block *ir.Block, let *ast.LetStmt) (*ir.Block, error) {
	init, err := g.genExpr(block, let.Init)
	if err != nil {
		return nil, err
	}

	slotType := init.Type()
	if let.Type != nil {
		if slotType, err = convType(*let.Type); err != nil {
			return nil, err
		}

		init = coerce(block, init, slotType)
	}

	slot := block.NewAlloca(slotType)
	block.NewStore(init, slot)
	g.locals[let.Name] = &localSlot{Ptr: slot, Type: slotType}

	return block, nil
}

// genReturn lowers a return statement and terminates the current block.  The
// returned value must agree with the enclosing signature after coercion: a
// bare return inside a non-void function and a value whose type cannot be
// adapted to the return type are both errors, never emitted as-is.
func (g *Generator) genReturn(block *ir.Block, ret *ast.ReturnStmt) (*ir.Block, error) {
	if ret.Value == nil {
		if !g.fn.Sig.RetType.Equal(types.Void) {
			return nil, report.Raise(
				report.ErrKindMissingReturn, ret.Span(),
				"function `%s` returns %s but the return carries no value", g.fn.Name(), g.fn.Sig.RetType,
			)
		}

		block.NewRet(nil)
		return nil, nil
	}

	val, err := g.genExpr(block, ret.Value)
	if err != nil {
		return nil, err
	}

	val = coerce(block, val, g.fn.Sig.RetType)
	if !val.Type().Equal(g.fn.Sig.RetType) {
		return nil, report.Raise(
			report.ErrKindTypeMismatch, ret.Span(),
			"function `%s` returns %s, not %s", g.fn.Name(), g.fn.Sig.RetType, val.Type(),
		)
	}

	block.NewRet(val)
	return nil, nil
}

// genIf lowers a conditional statement.  The condition branches to a new
// "then" block holding the lowered body; there is no else clause, so a false
// condition always falls through to the fall-through block, which is where
// lowering continues.
func (g *Generator) genIf(block *ir.Block, ifStmt *ast.IfStmt) (*ir.Block, error) {
	cond, err := g.genExpr(block, ifStmt.Cond)
	if err != nil {
		return nil, err
	}

	condBool, err := asBool(block, cond, ifStmt.Cond.Span())
	if err != nil {
		return nil, err
	}

	thenBlock := g.appendBlock()
	exitBlock := g.appendBlock()
	block.NewCondBr(condBool, thenBlock, exitBlock)

	body := thenBlock
	for _, stmt := range ifStmt.Body {
		if body == nil {
			break
		}

		if body, err = g.genStmt(body, stmt); err != nil {
			return nil, err
		}
	}

	// Fall through to the exit block unless the body already terminated.
	if body != nil {
		body.NewBr(exitBlock)
	}

	return exitBlock, nil
}

// -----------------------------------------------------------------------------

// asBool adapts a condition value to i1.  Integer conditions compare against
// zero; float conditions against 0.0.  A value of any other type cannot stand
// as a condition and is an error.
func asBool(block *ir.Block, val value.Value, span *report.TextSpan) (value.Value, error) {
	switch t := val.Type().(type) {
	case *types.IntType:
		if t.BitSize == 1 {
			return val, nil
		}

		return block.NewICmp(enum.IPredNE, val, constant.NewInt(t, 0)), nil
	case *types.FloatType:
		return block.NewFCmp(enum.FPredONE, val, constant.NewFloat(t, 0)), nil
	}

	return nil, report.Raise(report.ErrKindTypeMismatch, span, "condition of type %s cannot be tested", val.Type())
}
