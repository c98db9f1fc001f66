package generate

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// coerce adapts a lowered value to a target primitive type.  Numeric literals
// always lower as doubles, so storing one into an integer or 32-bit float
// slot, returning one from an integer function, or passing one to a typed
// parameter inserts the matching conversion.  Values already of the target
// type pass through untouched.
func coerce(block *ir.Block, val value.Value, want types.Type) value.Value {
	if val.Type().Equal(want) {
		return val
	}

	switch wt := want.(type) {
	case *types.IntType:
		if _, ok := val.Type().(*types.FloatType); ok {
			return block.NewFPToSI(val, wt)
		}
	case *types.FloatType:
		switch vt := val.Type().(type) {
		case *types.FloatType:
			if vt.Kind == types.FloatKindDouble && wt.Kind == types.FloatKindFloat {
				return block.NewFPTrunc(val, wt)
			}

			return block.NewFPExt(val, wt)
		case *types.IntType:
			return block.NewSIToFP(val, wt)
		}
	}

	return val
}
