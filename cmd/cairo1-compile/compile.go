package main

import (
	"github.com/aretw0/cairo1-compile/internal/cli"
	"github.com/spf13/cobra"
)

func newCompileCmd(opts *cli.Options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "compile <FILE>",
		Short: "Compile a Cairo file or project to a Sierra program",
		Long: `Runs the Cairo compiler on FILE with identifier replacement enabled and
automatic gas withdrawal disabled, then writes the Sierra program as JSON.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunCompile(cmd.Context(), *opts, args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the program to this file instead of stdout")
	return cmd
}
