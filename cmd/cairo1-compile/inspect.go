package main

import (
	"github.com/aretw0/cairo1-compile/internal/cli"
	"github.com/spf13/cobra"
)

func newInspectCmd(opts *cli.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <FILE>",
		Short: "Validate a program or merged document and summarize it",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunInspect(*opts, args[0])
		},
	}
}
