package cmd

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"azlc/common"

	"github.com/pelletier/go-toml"
)

// tomlProfileFile represents the build profile file as it is encoded in TOML.
type tomlProfileFile struct {
	Profile *tomlProfile `toml:"profile"`
}

// tomlProfile represents a build profile as it is encoded in TOML.
type tomlProfile struct {
	OutputPath string   `toml:"output,omitempty"`
	EmitLLVM   bool     `toml:"emit-llvm"`
	Linker     string   `toml:"linker,omitempty"`
	LinkArgs   []string `toml:"link-args,omitempty"`
}

// BuildProfile is the resolved build configuration for one compilation.
type BuildProfile struct {
	// OutputPath is the path to write the executable to.  When empty, the
	// output is placed next to the root source file with its extension
	// stripped.
	OutputPath string

	// EmitLLVM indicates that compilation should stop after writing the
	// textual LLVM IR module.
	EmitLLVM bool

	// Linker is the linking tool invoked on the IR module.
	Linker string

	// LinkArgs are extra arguments passed through to the linker.
	LinkArgs []string
}

// LoadProfile loads the build profile from the `azl.toml` in the given
// directory if one exists; otherwise it returns the default profile.
func LoadProfile(dir string) (*BuildProfile, error) {
	profile := &BuildProfile{Linker: "clang"}

	f, err := os.Open(filepath.Join(dir, common.AzlProfileFileName))
	if os.IsNotExist(err) {
		return profile, nil
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	tpf := &tomlProfileFile{}
	if err := toml.Unmarshal(buff, tpf); err != nil {
		return nil, err
	}

	if tpf.Profile != nil {
		profile.OutputPath = tpf.Profile.OutputPath
		profile.EmitLLVM = tpf.Profile.EmitLLVM
		profile.LinkArgs = tpf.Profile.LinkArgs

		if tpf.Profile.Linker != "" {
			profile.Linker = tpf.Profile.Linker
		}
	}

	return profile, nil
}
