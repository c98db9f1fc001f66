package generate

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
)

// declareBuiltins defines the fixed set of runtime-provided output functions
// visible to user code from module scope: `print` writes a string followed by
// a newline, `printnum` a number.  Both wrap the C `printf`, which the linker
// resolves from libc.  They are registered before any user function so calls
// to them always resolve.
func (g *Generator) declareBuiltins() {
	printf := g.mod.NewFunc("printf", types.I32, ir.NewParam("format", types.I8Ptr))
	printf.Sig.Variadic = true

	g.funcs["print"] = g.defineBuiltinPrint("print", "%s\n", printf, types.I8Ptr)
	g.funcs["printnum"] = g.defineBuiltinPrint("printnum", "%f\n", printf, types.Double)
}

// defineBuiltinPrint defines one private printf wrapper taking a single
// argument of the given type.
func (g *Generator) defineBuiltinPrint(name, format string, printf *ir.Func, argType types.Type) *ir.Func {
	formatBytes := g.mod.NewGlobalDef("__fmt."+name, constant.NewCharArrayFromString(format+"\x00"))
	formatBytes.Linkage = enum.LinkagePrivate
	formatBytes.Immutable = true

	wrapper := g.mod.NewFunc(name, types.Void, ir.NewParam("value", argType))
	wrapper.Linkage = enum.LinkagePrivate

	entry := wrapper.NewBlock("entry")
	entry.NewCall(printf, entry.NewBitCast(formatBytes, types.I8Ptr), wrapper.Params[0])
	entry.NewRet(nil)

	return wrapper
}
