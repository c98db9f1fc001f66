// Package cmd is the top-level "driver" package for the azlc compiler: it
// contains the functionality for parsing command-line arguments, managing
// compiler state, and running all the phases of the compiler.
package cmd

import (
	"os"
	"strings"

	"azlc/common"
	"azlc/generate"
	"azlc/report"
	"azlc/syntax"
)

// Compiler represents the overall state and configuration of compilation.
type Compiler struct {
	// rootPath is the path to the root source file of compilation.
	rootPath string

	// profile is the build profile of the compiler.
	profile *BuildProfile
}

// NewCompiler creates a new compiler for the given root source file.
func NewCompiler(rootPath string, profile *BuildProfile) *Compiler {
	return &Compiler{rootPath: rootPath, profile: profile}
}

// Compile runs all the phases of the compiler: parsing, lowering, and
// linking.  It returns whether compilation succeeded.
func (c *Compiler) Compile() bool {
	if !strings.HasSuffix(c.rootPath, common.AzlFileExt) {
		report.ReportFatal("%s is not an Azalea source file", c.rootPath)
	}

	report.ReportCompileHeader(c.rootPath)

	// Parse the root file into the top-level statement sequence.
	report.ReportBeginPhase("Parsing")
	f, err := os.Open(c.rootPath)
	if err != nil {
		report.ReportFatal("failed to open %s: %s", c.rootPath, err)
	}

	program, perr := syntax.NewParser(f).Parse()
	f.Close()
	if perr != nil {
		report.ReportCompileError(c.rootPath, perr)
		return false
	}
	report.ReportEndPhase()

	// Lower the AST into an LLVM module.
	report.ReportBeginPhase("Generating")
	mod, gerr := generate.NewGenerator().Generate(program)
	if gerr != nil {
		report.ReportCompileError(c.rootPath, gerr)
		return false
	}
	report.ReportEndPhase()

	// Emit the module and link the executable.
	llPath := c.emitModule(mod)
	if c.profile.EmitLLVM {
		report.ReportCompilationFinished(llPath, fileSize(llPath))
		return true
	}

	report.ReportBeginPhase("Linking")
	outPath := c.linkExecutable(llPath)
	report.ReportEndPhase()

	report.ReportCompilationFinished(outPath, fileSize(outPath))
	return true
}

// fileSize returns the size in bytes of the file at the given path.
func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		report.ReportFatal("could not read generated output: %s", err)
	}

	return info.Size()
}
