package process

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the toolchain config looked up in the working directory.
const DefaultConfigFile = "cairo-toolchain.yaml"

// DefaultCommand is the compiler executable used when no config says otherwise.
const DefaultCommand = "cairo-compile"

// ToolchainConfig describes how the external compiler is invoked.
// The compiler must print the serialized program on stdout.
type ToolchainConfig struct {
	Command     string            `yaml:"command" json:"command" mapstructure:"command"`
	Args        []string          `yaml:"args" json:"args" mapstructure:"args"`
	Environment map[string]string `yaml:"env" json:"env" mapstructure:"env"`
	Dir         string            `yaml:"dir" json:"dir" mapstructure:"dir"`

	// Flags used to express domain.CompileOptions. An empty flag means the
	// toolchain behaves that way without being told.
	ReplaceIDsFlag          string `yaml:"replace_ids_flag" json:"replace_ids_flag" mapstructure:"replace_ids_flag"`
	SkipAutoWithdrawGasFlag string `yaml:"skip_auto_withdraw_gas_flag" json:"skip_auto_withdraw_gas_flag" mapstructure:"skip_auto_withdraw_gas_flag"`

	// Corelib overrides core library detection. Empty lets the toolchain detect it.
	Corelib     string `yaml:"corelib" json:"corelib" mapstructure:"corelib"`
	CorelibFlag string `yaml:"corelib_flag" json:"corelib_flag" mapstructure:"corelib_flag"`
}

// ConfigFile represents the structure of cairo-toolchain.yaml
type ConfigFile struct {
	Compiler ToolchainConfig `yaml:"compiler" json:"compiler" mapstructure:"compiler"`
}

// DefaultToolchain returns the built-in toolchain settings.
func DefaultToolchain() ToolchainConfig {
	return ToolchainConfig{
		Command:                 DefaultCommand,
		ReplaceIDsFlag:          "--replace-ids",
		SkipAutoWithdrawGasFlag: "--skip-auto-withdraw-gas",
		CorelibFlag:             "--corelib",
	}
}

// LoadToolchain reads a configuration file (YAML or JSON) on top of DefaultToolchain.
// A missing file yields the defaults unless required is set.
// Unknown keys are rejected.
func LoadToolchain(fsys afero.Fs, path string, required bool) (ToolchainConfig, error) {
	cfg := ConfigFile{Compiler: DefaultToolchain()}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg.Compiler, nil
		}
		return ToolchainConfig{}, fmt.Errorf("failed to read toolchain config: %w", err)
	}

	var raw map[string]any
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return ToolchainConfig{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return ToolchainConfig{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return ToolchainConfig{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return ToolchainConfig{}, fmt.Errorf("invalid toolchain config %s: %w", path, err)
	}

	if strings.TrimSpace(cfg.Compiler.Command) == "" {
		return ToolchainConfig{}, fmt.Errorf("invalid toolchain config %s: compiler.command is empty", path)
	}
	return cfg.Compiler, nil
}
