package common

// AzlcVersion is the current azlc version as a string.
const AzlcVersion string = "0.1.0"

// AzlFileExt is the file extension for an Azalea source file.
const AzlFileExt string = ".azl"

// AzlProfileFileName is the name for Azalea build profile files.
const AzlProfileFileName string = "azl.toml"

// AzlBuildDir is the directory intermediate build artifacts are written to.
const AzlBuildDir string = ".build"
