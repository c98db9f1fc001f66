package report

import (
	"fmt"
	"strings"
	"time"

	"azlc/common"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// displayCompileError displays a compilation error with its kind label and, if
// known, its source location.
func displayCompileError(reprPath string, cerr *CompileError) {
	if cerr.Span == nil {
		fmt.Printf("%s: ", reprPath)
	} else {
		fmt.Printf("%s:%d:%d: ", reprPath, cerr.Span.StartLine, cerr.Span.StartCol)
	}

	ErrorColorFG.Print(cerr.Label())
	fmt.Printf(": %s\n", cerr.Message)
}

// displayStdError displays a standard Go error.
func displayStdError(reprPath string, err error) {
	fmt.Printf("%s: ", reprPath)
	ErrorColorFG.Print("error")
	fmt.Printf(": %s\n", err)
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	ErrorStyleBG.Print("Fatal Error")
	ErrorColorFG.Println(" " + message)
}

// displayInfoMessage displays a tagged informational message.
func displayInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// -----------------------------------------------------------------------------

// displayCompileHeader displays the compiler information before starting
// compilation.
func displayCompileHeader(rootFile string) {
	fmt.Print("azlc ")
	InfoColorFG.Print("v" + common.AzlcVersion)
	fmt.Print(" -- compiling: ")
	InfoColorFG.Println(rootFile)
}

// phaseSpinner stores the current phase spinner.
var phaseSpinner *pterm.SpinnerPrinter
var currentPhase string
var phaseStartTime time.Time

const maxPhaseLength = len("Generating")

// beginPhase displays the beginning of a compilation phase.
func beginPhase(phase string) {
	currentPhase = phase
	phaseText := phase + "..." + strings.Repeat(" ", maxPhaseLength-len(phase)+2)
	phaseSpinner = pterm.DefaultSpinner.WithStyle(pterm.NewStyle(InfoColorFG))

	phaseSpinner.SuccessPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: SuccessStyleBG,
			Text:  "Done",
		},
	}

	phaseSpinner.FailPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: ErrorStyleBG,
			Text:  "Fail",
		},
	}

	phaseSpinner.Start(phaseText)
	phaseStartTime = time.Now()
}

// endPhase displays the end of the current compilation phase, if any.
func endPhase(success bool) {
	if phaseSpinner == nil {
		return
	}

	phaseText := currentPhase + strings.Repeat(" ", maxPhaseLength-len(currentPhase)+2)
	if success {
		phaseSpinner.Success(phaseText, fmt.Sprintf("(%.3fs)", time.Since(phaseStartTime).Seconds()))
	} else {
		phaseSpinner.Fail(phaseText)
	}

	phaseSpinner = nil
}

// displayCompilationFinished displays the concluding message of compilation.
func displayCompilationFinished(outputPath string, sizeBytes int64) {
	fmt.Print("\nGenerated ")
	InfoColorFG.Print(outputPath)
	fmt.Printf(" (%d KB)\n", sizeBytes/1000)
}
