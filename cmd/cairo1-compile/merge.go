package main

import (
	"github.com/aretw0/cairo1-compile/internal/cli"
	"github.com/aretw0/cairo1-compile/pkg/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newMergeCmd(opts *cli.Options) *cobra.Command {
	var output string
	layout := layoutFlag(domain.DefaultLayout)

	cmd := &cobra.Command{
		Use:   "merge <SIERRA_FILE> <INPUT_FILE>",
		Short: "Merge a Sierra program and a program input into one document",
		Long: `Reads a Sierra program (as written by compile) and any JSON value, and writes
{"program": ..., "program_input": ..., "layout": ...}.`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunMerge(*opts, args[0], args[1], output, domain.Layout(layout))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the document to this file instead of stdout")
	cmd.Flags().VarP(&layout, "layout", "l", "Memory layout for the runner (recursive)")
	return cmd
}

// layoutFlag accepts only the known layout names.
type layoutFlag domain.Layout

var _ pflag.Value = (*layoutFlag)(nil)

func (l *layoutFlag) String() string { return string(*l) }

func (l *layoutFlag) Set(s string) error {
	parsed, err := domain.ParseLayout(s)
	if err != nil {
		return err
	}
	*l = layoutFlag(parsed)
	return nil
}

func (l *layoutFlag) Type() string { return "layout" }
