package main

import (
	"fmt"
	"io"

	"github.com/aretw0/cairo1-compile/internal/cli"
	"github.com/aretw0/cairo1-compile/pkg/adapters/process"
	"github.com/aretw0/cairo1-compile/pkg/domain"
	"github.com/spf13/cobra"
)

func newRootCmd(stdout io.Writer) *cobra.Command {
	opts := &cli.Options{Stdout: stdout}

	rootCmd := &cobra.Command{
		Use:   "cairo1-compile",
		Short: "Compile Cairo 1 programs to Sierra and build runner inputs",
		Long: `cairo1-compile drives the Cairo 1 compiler to produce Sierra programs as JSON,
and merges a compiled program with a program input into a single document for the runner.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unknown command %q for %q", domain.ErrUsage, args[0], cmd.CommandPath())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("%w: a subcommand is required (compile, merge, inspect, version)", domain.ErrUsage)
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.ToolchainExplicit = cmd.Flags().Changed("toolchain")
		},
	}
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", domain.ErrUsage, err)
	})

	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.ToolchainPath, "toolchain", process.DefaultConfigFile, "Toolchain config file (YAML or JSON)")
	flags.StringVar(&opts.CompilerCommand, "compiler", "", "Compiler executable, overriding the toolchain config")
	flags.BoolVar(&opts.Debug, "debug", false, "Log debug details to stderr")
	flags.StringVar(&opts.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this file after the command")

	rootCmd.AddCommand(
		newCompileCmd(opts),
		newMergeCmd(opts),
		newInspectCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// exactArgs is cobra.ExactArgs reporting a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrUsage, err)
		}
		return nil
	}
}
