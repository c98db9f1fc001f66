// Package generate lowers the Azalea AST into an LLVM IR module.  All
// lowering state is carried explicitly on the Generator: a fresh Generator
// lowers a fresh module, so lowering the same AST twice produces structurally
// identical IR.
package generate

import (
	"fmt"

	"azlc/ast"
	"azlc/report"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// localSlot is a single named unit of per-function stack storage.
type localSlot struct {
	// Ptr is the address of the slot's stack allocation.
	Ptr value.Value

	// Type is the type of the value held in the slot.
	Type types.Type
}

// Generator is responsible for converting the Azalea AST into LLVM IR.  It
// converts one source program into a single LLVM module.
type Generator struct {
	// mod is the LLVM module being generated.
	mod *ir.Module

	// funcs is the module-wide function table used to resolve calls by name.
	// Built-ins are registered first; it is append-only during declaration and
	// read-only once body lowering begins.
	funcs map[string]*ir.Func

	// fn is the function currently being lowered.
	fn *ir.Func

	// locals is the storage table of the function currently being lowered:
	// one flat name-to-slot table shared by parameters and `let` bindings.
	// There is no block scoping: re-declaration overwrites, and bindings made
	// inside an `if` body remain visible for the rest of the function.  The
	// table is reset for each function and discarded when it completes.
	locals map[string]*localSlot

	// strCount is a counter used to name interned string literal globals.
	strCount int
}

// NewGenerator creates a new generator with the built-in runtime functions
// pre-declared.
func NewGenerator() *Generator {
	g := &Generator{
		mod:   ir.NewModule(),
		funcs: make(map[string]*ir.Func),
	}

	g.declareBuiltins()

	return g
}

// Generate runs the main lowering algorithm for a source program: an ordered
// sequence of top-level statements produced by the parser.  It returns the
// completed LLVM module or the first error encountered.
func (g *Generator) Generate(program []ast.Statement) (*ir.Module, error) {
	// Every top-level statement must be a function definition.
	defs := make([]*ast.FuncDef, len(program))
	for i, stmt := range program {
		fd, ok := stmt.(*ast.FuncDef)
		if !ok {
			return nil, report.Raise(report.ErrKindStructure, stmt.Span(), "non-function statement at top level")
		}

		defs[i] = fd
	}

	// Declare every function's signature before lowering any body so that
	// calls resolve by name regardless of declaration order.
	for _, fd := range defs {
		if err := g.declareFunc(fd); err != nil {
			return nil, err
		}
	}

	for _, fd := range defs {
		if err := g.genFuncBody(fd); err != nil {
			return nil, err
		}
	}

	return g.mod, nil
}

// -----------------------------------------------------------------------------

// appendBlock adds a new basic block to the current function.  It does *not*
// set the current block to this new block.
func (g *Generator) appendBlock() *ir.Block {
	return g.fn.NewBlock(fmt.Sprintf("bb%d", len(g.fn.Blocks)))
}
