package main

import (
	"fmt"
	"strings"

	cairo1compile "github.com/aretw0/cairo1-compile"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of cairo1-compile",
		Args:  exactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cairo1-compile version %s\n", strings.TrimSpace(cairo1compile.Version))
		},
	}
}
