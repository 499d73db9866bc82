package cairo1compile

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/cairo1-compile/internal/logging"
	"github.com/aretw0/cairo1-compile/pkg/adapters/process"
	"github.com/aretw0/cairo1-compile/pkg/domain"
	"github.com/aretw0/cairo1-compile/pkg/jsonio"
	"github.com/aretw0/cairo1-compile/pkg/ports"
	"github.com/aretw0/cairo1-compile/pkg/project"
	"github.com/aretw0/cairo1-compile/pkg/sierra"
	"github.com/spf13/afero"
)

// Driver is the high-level entry point for the library.
// A Driver holds no state between calls; every method builds its values fresh.
type Driver struct {
	fs       afero.Fs
	stdout   io.Writer
	logger   *slog.Logger
	compiler ports.Compiler
	options  domain.CompileOptions
}

// Option defines a functional option for configuring the Driver.
type Option func(*Driver)

// WithFs sets the filesystem used for every read and write (default: the OS filesystem).
func WithFs(fs afero.Fs) Option {
	return func(d *Driver) {
		d.fs = fs
	}
}

// WithStdout sets where documents go when no output path is given.
func WithStdout(w io.Writer) Option {
	return func(d *Driver) {
		d.stdout = w
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

// WithCompiler injects the compiler port, bypassing the default process toolchain.
func WithCompiler(c ports.Compiler) Option {
	return func(d *Driver) {
		d.compiler = c
	}
}

// WithCompileOptions overrides domain.DefaultCompileOptions.
func WithCompileOptions(opts domain.CompileOptions) Option {
	return func(d *Driver) {
		d.options = opts
	}
}

// New creates a Driver.
func New(opts ...Option) *Driver {
	d := &Driver{
		fs:      afero.NewOsFs(),
		stdout:  os.Stdout,
		logger:  logging.NewNop(),
		options: domain.DefaultCompileOptions(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.compiler == nil {
		d.compiler = process.NewCompiler(process.DefaultToolchain(), process.WithLogger(d.logger))
	}
	return d
}

// Compile resolves the project at path, runs the compiler on it and validates the result.
func (d *Driver) Compile(ctx context.Context, path string) (*sierra.Program, error) {
	proj, err := project.Discover(d.fs, path)
	if err != nil {
		return nil, err
	}
	d.logger.Debug("Project resolved", "path", proj.Path, "kind", proj.Kind, "manifest", proj.Manifest)

	out, err := d.compiler.Compile(ctx, proj.Path, d.options)
	if err != nil {
		return nil, err
	}

	program, err := sierra.Parse(out)
	if err != nil {
		return nil, fmt.Errorf("compiler output for %s: %w", path, err)
	}
	return program, nil
}

// ReadProgram reads and validates a serialized program.
func (d *Driver) ReadProgram(path string) (*sierra.Program, error) {
	data, err := jsonio.ReadFile(d.fs, path)
	if err != nil {
		return nil, err
	}
	program, err := sierra.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return program, nil
}

// Merge combines the program at programPath with the JSON value at inputPath.
// An empty layout selects domain.DefaultLayout.
func (d *Driver) Merge(programPath, inputPath string, layout domain.Layout) (*Document, error) {
	if layout != "" {
		if _, err := domain.ParseLayout(string(layout)); err != nil {
			return nil, err
		}
	}

	program, err := d.ReadProgram(programPath)
	if err != nil {
		return nil, err
	}
	input, err := jsonio.ReadValue(d.fs, inputPath)
	if err != nil {
		return nil, err
	}

	doc := NewDocument(program, input, layout)
	d.logger.Debug("Merged document", "program", programPath, "input", inputPath, "layout", doc.Layout)
	return doc, nil
}

// Write serializes v to output, or to stdout (plus a newline) when output is empty.
// It returns the number of document bytes written.
func (d *Driver) Write(output string, v any) (int, error) {
	n, err := jsonio.NewWriter(d.fs, d.stdout).Write(output, v)
	if err != nil {
		return n, err
	}
	dest := output
	if dest == "" {
		dest = "stdout"
	}
	d.logger.Debug("Document written", "dest", dest, "bytes", n)
	return n, nil
}
