package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"azlc/common"
	"azlc/report"

	"github.com/llir/llvm/ir"
)

// outputStem is the root source path with its extension stripped: the
// default base for all compilation outputs.
func (c *Compiler) outputStem() string {
	return strings.TrimSuffix(c.rootPath, common.AzlFileExt)
}

// emitModule writes the textual LLVM IR module into the build directory next
// to the root source file and returns its path.
func (c *Compiler) emitModule(mod *ir.Module) string {
	buildDir := filepath.Join(filepath.Dir(c.rootPath), common.AzlBuildDir)
	if err := os.MkdirAll(buildDir, 0755); err != nil {
		report.ReportFatal("failed to create build directory: %s", err)
	}

	llPath := filepath.Join(buildDir, filepath.Base(c.outputStem())+".ll")
	if err := os.WriteFile(llPath, []byte(mod.String()), 0644); err != nil {
		report.ReportFatal("failed to write module to file: %s", err)
	}

	return llPath
}

// linkExecutable produces an executable from the emitted IR module using the
// profile's linker (clang by default, which handles both native code
// generation for the host and linking against libc).  It returns the path of
// the executable.
func (c *Compiler) linkExecutable(llPath string) string {
	outputPath := c.profile.OutputPath
	if outputPath == "" {
		outputPath = c.outputStem()
	}

	args := append([]string{"-o", outputPath, llPath}, c.profile.LinkArgs...)
	out, err := exec.Command(c.profile.Linker, args...).CombinedOutput()
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			// Exit error: the linker ran but rejected the input.  Hand its
			// output to the user.
			report.ReportFatal("link error:\n%s", string(out))
		} else {
			// Some other error: probably could not find the linker.
			report.ReportFatal("failed to run linker: %s", err)
		}
	}

	return outputPath
}
