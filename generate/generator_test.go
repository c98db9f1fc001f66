package generate

import (
	"strings"
	"testing"

	"azlc/syntax"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"

	"azlc/report"
)

// lowerSource parses and lowers a source string into an LLVM module.
func lowerSource(t *testing.T, src string) *ir.Module {
	t.Helper()

	program, err := syntax.NewParser(strings.NewReader(src)).Parse()
	if err != nil {
		t.Fatalf("parse failed: %s", err)
	}

	mod, err := NewGenerator().Generate(program)
	if err != nil {
		t.Fatalf("lowering failed: %s", err)
	}

	return mod
}

// expectLowerError asserts that lowering a source string fails with a compile
// error of the given kind.
func expectLowerError(t *testing.T, src string, kind int) {
	t.Helper()

	program, err := syntax.NewParser(strings.NewReader(src)).Parse()
	if err != nil {
		t.Fatalf("parse failed: %s", err)
	}

	_, err = NewGenerator().Generate(program)
	if err == nil {
		t.Fatalf("expected lowering to fail")
	}

	cerr, ok := err.(*report.CompileError)
	if !ok {
		t.Fatalf("expected a compile error, got %T", err)
	}

	if cerr.Kind != kind {
		t.Fatalf("expected error kind %d, got %d (%s)", kind, cerr.Kind, cerr.Message)
	}
}

// findFunc looks a function up in the module by name.
func findFunc(t *testing.T, mod *ir.Module, name string) *ir.Func {
	t.Helper()

	for _, fn := range mod.Funcs {
		if fn.Name() == name {
			return fn
		}
	}

	t.Fatalf("function `%s` not found in module", name)
	return nil
}

func TestLowerAddFunction(t *testing.T) {
	mod := lowerSource(t, `func add(x: int32, y: int32) -> int32 { return x + y; }`)

	fn := findFunc(t, mod, "add")
	if fn.Linkage != enum.LinkagePrivate {
		t.Fatalf("expected private linkage for a non-entry function, got %s", fn.Linkage)
	}

	if len(fn.Params) != 2 || !fn.Params[0].Typ.Equal(types.I32) || !fn.Params[1].Typ.Equal(types.I32) {
		t.Fatalf("expected two i32 parameters, got %v", fn.Params)
	}

	if !fn.Sig.RetType.Equal(types.I32) {
		t.Fatalf("expected an i32 return type, got %s", fn.Sig.RetType)
	}

	if len(fn.Blocks) != 1 {
		t.Fatalf("expected a single basic block, got %d", len(fn.Blocks))
	}

	entry := fn.Blocks[0]

	adds := 0
	for _, inst := range entry.Insts {
		if _, ok := inst.(*ir.InstAdd); ok {
			adds++
		}
	}

	if adds != 1 {
		t.Fatalf("expected exactly one add instruction, got %d", adds)
	}

	ret, ok := entry.Term.(*ir.TermRet)
	if !ok || ret.X == nil {
		t.Fatalf("expected a value-carrying return terminator, got %v", entry.Term)
	}
}

func TestLowerMainLinkageAndBranching(t *testing.T) {
	mod := lowerSource(t, `
func main() -> int32 {
	let z: int32 = 5;
	if z {
		return z;
	}
	return 0;
}
`)

	fn := findFunc(t, mod, "main")
	if fn.Linkage != enum.LinkageExternal {
		t.Fatalf("expected external linkage for main, got %s", fn.Linkage)
	}

	// Entry, the conditional body, and the fallthrough block.
	if len(fn.Blocks) != 3 {
		t.Fatalf("expected 3 basic blocks, got %d", len(fn.Blocks))
	}

	if _, ok := fn.Blocks[0].Term.(*ir.TermCondBr); !ok {
		t.Fatalf("expected the entry block to end in a conditional branch, got %v", fn.Blocks[0].Term)
	}

	// Both the conditional body and the fallthrough end in a return.
	for _, block := range fn.Blocks[1:] {
		if _, ok := block.Term.(*ir.TermRet); !ok {
			t.Fatalf("expected block %s to end in a return, got %v", block.LocalName, block.Term)
		}
	}
}

func TestLowerVoidImplicitReturn(t *testing.T) {
	mod := lowerSource(t, `func noop() { }`)

	fn := findFunc(t, mod, "noop")
	if !fn.Sig.RetType.Equal(types.Void) {
		t.Fatalf("expected a void return type, got %s", fn.Sig.RetType)
	}

	ret, ok := fn.Blocks[0].Term.(*ir.TermRet)
	if !ok || ret.X != nil {
		t.Fatalf("expected a synthesized void return, got %v", fn.Blocks[0].Term)
	}
}

func TestLowerMissingReturnRejected(t *testing.T) {
	expectLowerError(t, `func f() -> int32 { let x = 1; }`, report.ErrKindMissingReturn)
}

func TestLowerUndefinedVariable(t *testing.T) {
	expectLowerError(t, `func f() -> int32 { return missing; }`, report.ErrKindUndefined)
}

func TestLowerUndefinedFunction(t *testing.T) {
	expectLowerError(t, `func f() { missing(); }`, report.ErrKindUndefined)
}

func TestLowerNonFunctionAtTopLevel(t *testing.T) {
	expectLowerError(t, `let x = 5;`, report.ErrKindStructure)
}

func TestLowerDuplicateFunction(t *testing.T) {
	expectLowerError(t, `func f() { } func f() { }`, report.ErrKindStructure)
}

func TestLowerBareReturnFromNonVoidRejected(t *testing.T) {
	expectLowerError(t, `func f() -> int32 { return; }`, report.ErrKindMissingReturn)
}

func TestLowerReturnValueTypeRejected(t *testing.T) {
	// Integer widths do not narrow implicitly.
	expectLowerError(t, `func g(x: int64) -> int32 { return x; }`, report.ErrKindTypeMismatch)
}

func TestLowerValueReturnFromVoidRejected(t *testing.T) {
	expectLowerError(t, `func f() { return 1.0; }`, report.ErrKindTypeMismatch)
}

func TestLowerWrongArgumentCountRejected(t *testing.T) {
	expectLowerError(t, `
func add(x: int32, y: int32) -> int32 { return x + y; }
func main() -> int32 { return add(1); }
`, report.ErrKindTypeMismatch)

	expectLowerError(t, `
func add(x: int32, y: int32) -> int32 { return x + y; }
func main() -> int32 { return add(1, 2, 3); }
`, report.ErrKindTypeMismatch)
}

func TestLowerArgumentTypeRejected(t *testing.T) {
	expectLowerError(t, `
func take(x: int32) { }
func f(s: string) { take(s); }
`, report.ErrKindTypeMismatch)
}

func TestLowerNonNumericConditionRejected(t *testing.T) {
	expectLowerError(t, `func f(s: string) { if s { return; } }`, report.ErrKindTypeMismatch)
}

func TestLowerMixedOperandTypesRejected(t *testing.T) {
	expectLowerError(t, `func f(x: int32, b: bool) -> int32 { return x + b; }`, report.ErrKindTypeMismatch)
}

func TestLowerForwardReference(t *testing.T) {
	mod := lowerSource(t, `
func caller() -> float64 { return callee(); }
func callee() -> float64 { return 1.0; }
`)

	fn := findFunc(t, mod, "caller")

	calls := 0
	for _, inst := range fn.Blocks[0].Insts {
		if call, ok := inst.(*ir.InstCall); ok {
			calls++
			if callee, ok := call.Callee.(*ir.Func); !ok || callee.Name() != "callee" {
				t.Fatalf("expected a call to callee, got %v", call.Callee)
			}
		}
	}

	if calls != 1 {
		t.Fatalf("expected exactly one call instruction, got %d", calls)
	}
}

func TestLowerRedeclarationResolvesToLatestSlot(t *testing.T) {
	mod := lowerSource(t, `
func f() -> float64 {
	let x = 1.0;
	let x = 2.0;
	return x;
}
`)

	entry := findFunc(t, mod, "f").Blocks[0]

	var allocas []*ir.InstAlloca
	var load *ir.InstLoad
	for _, inst := range entry.Insts {
		switch inst := inst.(type) {
		case *ir.InstAlloca:
			allocas = append(allocas, inst)
		case *ir.InstLoad:
			load = inst
		}
	}

	if len(allocas) != 2 {
		t.Fatalf("expected two stack slots, got %d", len(allocas))
	}

	if load == nil || load.Src != allocas[1] {
		t.Fatalf("expected the final read to resolve to the second slot")
	}
}

func TestLowerUnreachableCodeSkipped(t *testing.T) {
	mod := lowerSource(t, `
func f() -> float64 {
	return 1.0;
	return 2.0;
}
`)

	fn := findFunc(t, mod, "f")
	if len(fn.Blocks) != 1 {
		t.Fatalf("expected a single basic block, got %d", len(fn.Blocks))
	}
}

func TestLowerNumericCoercion(t *testing.T) {
	mod := lowerSource(t, `func f() -> int32 { return 3; }`)

	entry := findFunc(t, mod, "f").Blocks[0]

	converts := 0
	for _, inst := range entry.Insts {
		if _, ok := inst.(*ir.InstFPToSI); ok {
			converts++
		}
	}

	if converts != 1 {
		t.Fatalf("expected the literal to be converted to the integer return type")
	}

	ret := entry.Term.(*ir.TermRet)
	if ret.X == nil || !ret.X.Type().Equal(types.I32) {
		t.Fatalf("expected an i32 return value, got %v", ret.X)
	}
}

func TestLowerBuiltins(t *testing.T) {
	mod := lowerSource(t, `
func main() -> int32 {
	print("hello");
	printnum(3.5);
	return 0;
}
`)

	printf := findFunc(t, mod, "printf")
	if !printf.Sig.Variadic {
		t.Fatalf("expected printf to be variadic")
	}

	for _, name := range []string{"print", "printnum"} {
		if fn := findFunc(t, mod, name); fn.Linkage != enum.LinkagePrivate {
			t.Fatalf("expected builtin %s to have private linkage, got %s", name, fn.Linkage)
		}
	}

	// The string literal is interned as a private immutable global.
	found := false
	for _, global := range mod.Globals {
		if strings.HasPrefix(global.Name(), "__strlit.") {
			found = true
			if global.Linkage != enum.LinkagePrivate || !global.Immutable {
				t.Fatalf("expected the string literal global to be private and constant")
			}
		}
	}

	if !found {
		t.Fatalf("expected an interned string literal global")
	}
}

func TestLowerDeterministicOutput(t *testing.T) {
	src := `
func add(x: int32, y: int32) -> int32 { return x + y; }
func main() -> int32 {
	let z: int32 = 5;
	if z {
		print("big");
	}
	return add(z, 2);
}
`

	program, err := syntax.NewParser(strings.NewReader(src)).Parse()
	if err != nil {
		t.Fatalf("parse failed: %s", err)
	}

	first, err := NewGenerator().Generate(program)
	if err != nil {
		t.Fatalf("lowering failed: %s", err)
	}

	second, err := NewGenerator().Generate(program)
	if err != nil {
		t.Fatalf("lowering failed: %s", err)
	}

	if first.String() != second.String() {
		t.Fatalf("lowering the same program twice produced different modules")
	}
}
