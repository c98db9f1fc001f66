package generate

import (
	"azlc/ast"
	"azlc/report"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
)

// declareFunc translates a function's signature and declares it in the
// module and the function table.  Only the entry point is callable from
// outside the generated module: `main` receives external linkage, every
// other function private linkage.
func (g *Generator) declareFunc(fd *ast.FuncDef) error {
	if _, ok := g.funcs[fd.Name]; ok {
		return report.Raise(report.ErrKindStructure, fd.Span(), "function `%s` declared multiple times", fd.Name)
	}

	params := make([]*ir.Param, len(fd.Params))
	for i, p := range fd.Params {
		paramType, err := convType(p.Type)
		if err != nil {
			return err
		}

		params[i] = ir.NewParam(p.Name, paramType)
	}

	// No return type annotation means the function returns void.
	retType := types.Type(types.Void)
	if fd.ReturnType != nil {
		llRetType, err := convType(*fd.ReturnType)
		if err != nil {
			return err
		}

		retType = llRetType
	}

	llvmFunc := g.mod.NewFunc(fd.Name, retType, params...)
	if fd.Name == "main" {
		llvmFunc.Linkage = enum.LinkageExternal
	} else {
		llvmFunc.Linkage = enum.LinkagePrivate
	}

	g.funcs[fd.Name] = llvmFunc
	return nil
}

// genFuncBody lowers the body of an already declared function.
func (g *Generator) genFuncBody(fd *ast.FuncDef) error {
	g.fn = g.funcs[fd.Name]
	g.locals = make(map[string]*localSlot)

	entry := g.fn.NewBlock("entry")

	// Materialize each parameter, in declaration order, into an addressable
	// stack slot registered under the parameter's name.
	for i, p := range fd.Params {
		param := g.fn.Params[i]
		slot := entry.NewAlloca(param.Typ)
		entry.NewStore(param, slot)
		g.locals[p.Name] = &localSlot{Ptr: slot, Type: param.Typ}
	}

	block := entry
	for _, stmt := range fd.Body {
		// A nil block means the body already terminated: trailing statements
		// are unreachable and no code is emitted for them.
		if block == nil {
			break
		}

		var err error
		block, err = g.genStmt(block, stmt)
		if err != nil {
			return err
		}
	}

	// Implicit-return policy: a body whose final path ends in a return needs
	// nothing more.  Otherwise a void function receives a synthesized void
	// return and a non-void function is rejected.
	if block != nil {
		if fd.ReturnType != nil {
			return report.Raise(report.ErrKindMissingReturn, fd.Span(), "function `%s` is missing a trailing return", fd.Name)
		}

		block.NewRet(nil)
	}

	return nil
}
