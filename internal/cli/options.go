package cli

import (
	"io"
	"os"

	"github.com/aretw0/cairo1-compile/pkg/adapters/process"
	"github.com/spf13/afero"
)

// Options carries the settings shared by every command.
type Options struct {
	Fs     afero.Fs
	Stdout io.Writer
	Debug  bool

	// ToolchainPath is the toolchain config file. ToolchainExplicit makes it required.
	ToolchainPath     string
	ToolchainExplicit bool
	// CompilerCommand overrides the configured compiler executable when set.
	CompilerCommand string

	// MetricsFile receives a Prometheus textfile after the command when set.
	MetricsFile string
}

func (o Options) withDefaults() Options {
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.ToolchainPath == "" {
		o.ToolchainPath = process.DefaultConfigFile
	}
	return o
}
