package cli

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	cairo1compile "github.com/aretw0/cairo1-compile"
	"github.com/aretw0/cairo1-compile/internal/logging"
	"github.com/aretw0/cairo1-compile/internal/presentation/report"
	"github.com/aretw0/cairo1-compile/internal/presentation/tui"
	"github.com/aretw0/cairo1-compile/pkg/adapters/process"
	"github.com/aretw0/cairo1-compile/pkg/domain"
	"github.com/aretw0/cairo1-compile/pkg/observability"
)

// Command names, used as the metrics "command" label.
const (
	CommandCompile = "compile"
	CommandMerge   = "merge"
	CommandInspect = "inspect"
)

// RunCompile compiles path and writes the program to output (stdout when empty).
func RunCompile(ctx context.Context, opts Options, path, output string) error {
	opts = opts.withDefaults()
	return execute(opts, CommandCompile, func(logger *slog.Logger) (int, error) {
		compiler, err := newCompiler(opts, logger)
		if err != nil {
			return 0, err
		}
		d := newDriver(opts, logger, cairo1compile.WithCompiler(compiler))

		program, err := d.Compile(ctx, path)
		if err != nil {
			return 0, err
		}
		return d.Write(output, program)
	})
}

// RunMerge merges a program file with an input file and writes the document to output.
func RunMerge(opts Options, programPath, inputPath, output string, layout domain.Layout) error {
	opts = opts.withDefaults()
	return execute(opts, CommandMerge, func(logger *slog.Logger) (int, error) {
		d := newDriver(opts, logger)

		doc, err := d.Merge(programPath, inputPath, layout)
		if err != nil {
			return 0, err
		}
		return d.Write(output, doc)
	})
}

// RunInspect prints a summary of a program or merged document.
func RunInspect(opts Options, path string) error {
	opts = opts.withDefaults()
	return execute(opts, CommandInspect, func(logger *slog.Logger) (int, error) {
		d := newDriver(opts, logger)

		in, err := d.Inspect(path)
		if err != nil {
			return 0, err
		}
		rendered, err := tui.NewRenderer(opts.Stdout)(report.GenerateMarkdown(in))
		if err != nil {
			return 0, err
		}
		return opts.Stdout.Write([]byte(rendered))
	})
}

// execute runs fn with a CLI logger and records its outcome when metrics are enabled.
func execute(opts Options, command string, fn func(logger *slog.Logger) (int, error)) error {
	logger := logging.ForCLI(opts.Debug)
	start := time.Now()

	n, err := fn(logger)
	if err != nil {
		logger.Debug("Command failed", "command", command, "category", domain.Classify(err), "error", err)
	}

	if opts.MetricsFile != "" {
		m := observability.NewMetrics()
		m.Observe(command, start, err)
		if err == nil {
			m.AddOutputBytes(command, n)
		}
		if werr := m.WriteTextfile(opts.MetricsFile); werr != nil {
			logger.Warn("Failed to write metrics", "path", opts.MetricsFile, "error", werr)
		}
	}
	return err
}

func newDriver(opts Options, logger *slog.Logger, extra ...cairo1compile.Option) *cairo1compile.Driver {
	base := []cairo1compile.Option{
		cairo1compile.WithFs(opts.Fs),
		cairo1compile.WithStdout(opts.Stdout),
		cairo1compile.WithLogger(logger),
	}
	return cairo1compile.New(append(base, extra...)...)
}

// newCompiler loads the toolchain config. A relative dir in the config is taken
// relative to the config file.
func newCompiler(opts Options, logger *slog.Logger) (*process.Compiler, error) {
	tc, err := process.LoadToolchain(opts.Fs, opts.ToolchainPath, opts.ToolchainExplicit)
	if err != nil {
		return nil, err
	}
	if tc.Dir != "" && !filepath.IsAbs(tc.Dir) {
		tc.Dir = filepath.Join(filepath.Dir(opts.ToolchainPath), tc.Dir)
	}
	logger.Debug("Toolchain loaded", "config", opts.ToolchainPath, "command", tc.Command)

	return process.NewCompiler(tc,
		process.WithLogger(logger),
		process.WithCommand(opts.CompilerCommand),
	), nil
}
