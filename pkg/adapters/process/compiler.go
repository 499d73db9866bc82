package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/aretw0/cairo1-compile/internal/logging"
	"github.com/aretw0/cairo1-compile/pkg/domain"
)

// waitDelay bounds how long a killed compiler may keep its output pipes open.
const waitDelay = 2 * time.Second

// Compiler runs the external compiler toolchain as a child process.
type Compiler struct {
	toolchain ToolchainConfig
	logger    *slog.Logger
}

// CompilerOption configures the compiler.
type CompilerOption func(*Compiler)

// WithLogger sets the logger used for invocation details.
func WithLogger(logger *slog.Logger) CompilerOption {
	return func(c *Compiler) {
		c.logger = logger
	}
}

// WithCommand replaces the configured compiler executable. Empty keeps it.
func WithCommand(command string) CompilerOption {
	return func(c *Compiler) {
		if command != "" {
			c.toolchain.Command = command
		}
	}
}

// WithBaseDir sets the working directory of the compiler process.
func WithBaseDir(dir string) CompilerOption {
	return func(c *Compiler) {
		c.toolchain.Dir = dir
	}
}

// NewCompiler creates a Compiler for the given toolchain.
func NewCompiler(toolchain ToolchainConfig, opts ...CompilerOption) *Compiler {
	c := &Compiler{
		toolchain: toolchain,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Toolchain returns the effective toolchain settings.
func (c *Compiler) Toolchain() ToolchainConfig {
	return c.toolchain
}

// Args builds the argument vector for compiling path with opts.
func (c *Compiler) Args(path string, opts domain.CompileOptions) []string {
	args := slices.Clone(c.toolchain.Args)
	if opts.ReplaceIDs && c.toolchain.ReplaceIDsFlag != "" {
		args = append(args, c.toolchain.ReplaceIDsFlag)
	}
	if !opts.AutoWithdrawGas && c.toolchain.SkipAutoWithdrawGasFlag != "" {
		args = append(args, c.toolchain.SkipAutoWithdrawGasFlag)
	}
	if c.toolchain.Corelib != "" && c.toolchain.CorelibFlag != "" {
		args = append(args, c.toolchain.CorelibFlag, c.toolchain.Corelib)
	}
	return append(args, path)
}

// Compile runs the toolchain on path and returns what it printed on stdout.
// Any failure to start, a non-zero exit or an empty output is a *CompileError.
func (c *Compiler) Compile(ctx context.Context, path string, opts domain.CompileOptions) ([]byte, error) {
	if c.toolchain.Dir != "" {
		// The child runs elsewhere; keep the path pointing at the same file.
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}

	args := c.Args(path, opts)
	cmd := exec.CommandContext(ctx, c.toolchain.Command, args...)
	cmd.Dir = c.toolchain.Dir
	cmd.WaitDelay = waitDelay
	cmd.Env = append(cmd.Environ(), envPairs(c.toolchain.Environment)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.logger.Debug("Invoking compiler", "command", c.toolchain.Command, "args", args, "dir", cmd.Dir)

	if err := cmd.Run(); err != nil {
		return nil, newCompileError(c.toolchain.Command, err, stderr.String())
	}
	if len(bytes.TrimSpace(stdout.Bytes())) == 0 {
		return nil, newCompileError(c.toolchain.Command, errors.New("compiler produced no output"), stderr.String())
	}

	c.logger.Debug("Compiler finished", "command", c.toolchain.Command, "bytes", stdout.Len())
	return stdout.Bytes(), nil
}

func envPairs(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+env[k])
	}
	return pairs
}

// CompileError reports a failed compiler run.
type CompileError struct {
	Command  string
	ExitCode int // -1 when the process did not exit normally
	Stderr   string
	Err      error
}

func newCompileError(command string, err error, stderr string) *CompileError {
	code := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	return &CompileError{Command: command, ExitCode: code, Stderr: stderr, Err: err}
}

func (e *CompileError) Error() string {
	msg := fmt.Sprintf("%s: %s: %v", domain.ErrCompilation, e.Command, e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += "\n" + s
	}
	return msg
}

// Unwrap makes the error match domain.ErrCompilation as well as the underlying cause.
func (e *CompileError) Unwrap() []error {
	return []error{domain.ErrCompilation, e.Err}
}
