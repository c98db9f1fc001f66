package cmd

import (
	"os"
	"path/filepath"

	"azlc/common"
	"azlc/report"

	"github.com/ComedicChimera/olive"
)

// Execute is the main entry point for the `azlc` CLI utility.
func Execute() {
	// set up the argument parser and all its commands and arguments
	cli := olive.NewCLI("azlc", "azlc is the compiler for the Azalea language", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	buildCmd := cli.AddSubcommand("build", "compile a source file", true)
	buildCmd.AddPrimaryArg("file-path", "the path to the source file to compile", true)
	buildCmd.AddFlag("emit-llvm", "el", "stop after writing the LLVM IR module")

	cli.AddSubcommand("version", "print the azlc version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.InitReporter(report.LogLevelVerbose)
		report.ReportFatal(err.Error())
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		execBuildCommand(subResult, result.Arguments["loglevel"].(string))
	case "version":
		report.DisplayInfoMessage("azlc version", common.AzlcVersion)
	}
}

// execBuildCommand executes the build subcommand and handles all errors.
func execBuildCommand(result *olive.ArgParseResult, loglevel string) {
	report.InitReporter(report.LogLevelFromName(loglevel))

	// get the primary argument: the root source path
	rootPath, _ := result.PrimaryArg()

	profile, err := LoadProfile(filepath.Dir(rootPath))
	if err != nil {
		report.ReportFatal("failed to load build profile: %s", err)
	}

	if result.HasFlag("emit-llvm") {
		profile.EmitLLVM = true
	}

	if !NewCompiler(rootPath, profile).Compile() {
		os.Exit(1)
	}
}
