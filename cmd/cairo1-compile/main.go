package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/cairo1-compile/internal/cli"
	"github.com/aretw0/cairo1-compile/internal/presentation/tui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	ctx := cli.NewSignalContext(context.Background())
	defer ctx.Stop()

	root := newRootCmd(stdout)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		if sig := ctx.Signal(); sig != nil {
			err = fmt.Errorf("interrupted by %v: %w", sig, err)
		}
		tui.PrintError(stderr, err)
		return 1
	}
	return 0
}
