package report

import (
	"fmt"
	"os"
)

// ReportCompileError reports a compilation error: ie. erroneous input code.
// The reprPath is the representative path to the erroneous source file.
func ReportCompileError(reprPath string, err error) {
	if rep.logLevel > LogLevelSilent {
		rep.isErr = true

		endPhase(false)

		if cerr, ok := err.(*CompileError); ok {
			displayCompileError(reprPath, cerr)
		} else {
			displayStdError(reprPath, err)
		}
	}
}

// ReportFatal reports a fatal error and exits the program.  These are errors
// that generally result from invalid configuration of some form: unreadable
// input files, a missing linker, etc.
func ReportFatal(msg string, args ...interface{}) {
	endPhase(false)

	displayFatal(fmt.Sprintf(msg, args...))

	os.Exit(1)
}

// AnyErrors returns whether or not any errors were detected.
func AnyErrors() bool {
	return rep.isErr
}

// -----------------------------------------------------------------------------
// Below are the "aesthetic" reporting functions that only run if the log level
// is verbose.  These provide additional information about the compilation
// process so as to make the compiler more friendly.

// ReportCompileHeader reports the pre-compilation header: information about
// the compiler's current configuration (version and root file).
func ReportCompileHeader(rootFile string) {
	if rep.logLevel == LogLevelVerbose {
		displayCompileHeader(rootFile)
	}
}

// ReportBeginPhase reports the beginning of a compilation phase.
func ReportBeginPhase(phase string) {
	if rep.logLevel == LogLevelVerbose {
		beginPhase(phase)
	}
}

// ReportEndPhase reports the end of the current compilation phase.  The phase
// is displayed as successful only if no errors have been detected.
func ReportEndPhase() {
	if rep.logLevel == LogLevelVerbose {
		endPhase(!rep.isErr)
	}
}

// ReportCompilationFinished reports the concluding message for compilation:
// the output path and the size of the generated binary.
func ReportCompilationFinished(outputPath string, sizeBytes int64) {
	if rep.logLevel == LogLevelVerbose {
		displayCompilationFinished(outputPath, sizeBytes)
	}
}

// DisplayInfoMessage displays a tagged informational message to the user
// regardless of log level (eg. the compiler version).
func DisplayInfoMessage(tag, msg string) {
	displayInfoMessage(tag, msg)
}
