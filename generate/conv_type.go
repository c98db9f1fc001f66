package generate

import (
	"azlc/ast"
	"azlc/report"

	"github.com/llir/llvm/ir/types"
)

// llTypes is the single table mapping every source type to its LLVM
// primitive.  Extending the type set means extending this table.  Strings
// lower to a pointer to their bytes.
var llTypes = map[ast.Type]types.Type{
	{Kind: ast.KindInteger, Width: 32}: types.I32,
	{Kind: ast.KindInteger, Width: 64}: types.I64,
	{Kind: ast.KindFloat, Width: 32}:   types.Float,
	{Kind: ast.KindFloat, Width: 64}:   types.Double,
	ast.BoolType:                       types.I1,
	ast.StringType:                     types.I8Ptr,
}

// convType converts a source type to its LLVM primitive.  A type outside the
// table is an unimplemented-type error, never a rounded width.
func convType(typ ast.Type) (types.Type, error) {
	if llTyp, ok := llTypes[typ]; ok {
		return llTyp, nil
	}

	return nil, report.Raise(report.ErrKindUnimplemented, nil, "unimplemented type: %s", typ)
}
