package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/cairo1-compile/internal/testutils"
	"github.com/aretw0/cairo1-compile/pkg/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCompile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	source := filepath.Join(dir, "add.cairo")
	require.NoError(t, os.WriteFile(source, []byte("fn main() {}"), 0o644))

	good := testutils.FakeCompiler(t, "printf '%s' '"+testutils.ProgramJSON+"'")
	bad := testutils.FakeCompiler(t, "echo 'error: unexpected token' >&2; exit 1")

	t.Run("Stdout and file carry the same document", func(t *testing.T) {
		var stdout bytes.Buffer
		opts := Options{
			Fs:              afero.NewOsFs(),
			Stdout:          &stdout,
			ToolchainPath:   filepath.Join(dir, "none.yaml"),
			CompilerCommand: good,
		}

		require.NoError(t, RunCompile(ctx, opts, source, ""))
		out := filepath.Join(dir, "add.json")
		require.NoError(t, RunCompile(ctx, opts, source, out))

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, testutils.ProgramJSON+"\n", stdout.String())
		assert.Equal(t, testutils.ProgramJSON, string(data))
	})

	t.Run("Compiler failure writes nothing", func(t *testing.T) {
		var stdout bytes.Buffer
		out := filepath.Join(dir, "broken.json")
		opts := Options{
			Fs:              afero.NewOsFs(),
			Stdout:          &stdout,
			ToolchainPath:   filepath.Join(dir, "none.yaml"),
			CompilerCommand: bad,
		}

		err := RunCompile(ctx, opts, source, out)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrCompilation)
		assert.Contains(t, err.Error(), "unexpected token")
		assert.Empty(t, stdout.String())
		_, statErr := os.Stat(out)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("Toolchain config selects the compiler", func(t *testing.T) {
		var stdout bytes.Buffer
		cfg := filepath.Join(dir, "cairo-toolchain.yaml")
		require.NoError(t, os.WriteFile(cfg, []byte("compiler:\n  command: "+good+"\n"), 0o644))

		opts := Options{Fs: afero.NewOsFs(), Stdout: &stdout, ToolchainPath: cfg, ToolchainExplicit: true}
		require.NoError(t, RunCompile(ctx, opts, source, ""))
		assert.Equal(t, testutils.ProgramJSON+"\n", stdout.String())
	})

	t.Run("Explicit toolchain config must exist", func(t *testing.T) {
		opts := Options{
			Fs:                afero.NewOsFs(),
			Stdout:            &bytes.Buffer{},
			ToolchainPath:     filepath.Join(dir, "missing.yaml"),
			ToolchainExplicit: true,
		}
		err := RunCompile(ctx, opts, source, "")
		require.Error(t, err)
		assert.Equal(t, domain.CategoryIO, domain.Classify(err))
	})

	t.Run("Missing source", func(t *testing.T) {
		opts := Options{
			Fs:              afero.NewOsFs(),
			Stdout:          &bytes.Buffer{},
			ToolchainPath:   filepath.Join(dir, "none.yaml"),
			CompilerCommand: good,
		}
		err := RunCompile(ctx, opts, filepath.Join(dir, "nope.cairo"), "")
		assert.Equal(t, domain.CategoryIO, domain.Classify(err))
	})
}

func TestRunMerge(t *testing.T) {
	files := map[string]string{
		"/w/add.json":   testutils.ProgramJSON,
		"/w/input.json": `{"n": 10}`,
		"/w/bad.json":   `{"n": 10`,
	}

	t.Run("Writes the envelope", func(t *testing.T) {
		memFs := testutils.MemFs(t, files)
		var stdout bytes.Buffer
		opts := Options{Fs: memFs, Stdout: &stdout}

		require.NoError(t, RunMerge(opts, "/w/add.json", "/w/input.json", "", ""))
		require.NoError(t, RunMerge(opts, "/w/add.json", "/w/input.json", "/w/merged.json", domain.LayoutRecursive))

		want := `{"program":` + testutils.ProgramJSON + `,"program_input":{"n":10},"layout":"recursive"}`
		assert.Equal(t, want+"\n", stdout.String())
		assert.Equal(t, want, testutils.ReadFile(t, memFs, "/w/merged.json"))
	})

	t.Run("Failure leaves no output file", func(t *testing.T) {
		memFs := testutils.MemFs(t, files)
		opts := Options{Fs: memFs, Stdout: &bytes.Buffer{}}

		err := RunMerge(opts, "/w/add.json", "/w/bad.json", "/w/merged.json", "")
		assert.ErrorIs(t, err, domain.ErrMalformedJSON)
		exists, _ := afero.Exists(memFs, "/w/merged.json")
		assert.False(t, exists)
	})

	t.Run("Records metrics", func(t *testing.T) {
		memFs := testutils.MemFs(t, files)
		metricsFile := filepath.Join(t.TempDir(), "cairo1.prom")
		opts := Options{Fs: memFs, Stdout: &bytes.Buffer{}, MetricsFile: metricsFile}

		require.NoError(t, RunMerge(opts, "/w/add.json", "/w/input.json", "", ""))

		data, err := os.ReadFile(metricsFile)
		require.NoError(t, err)
		text := string(data)
		assert.Contains(t, text, `cairo1_compile_operations_total{command="merge",outcome="ok"} 1`)
		assert.True(t, strings.Contains(text, "cairo1_compile_output_bytes_total"))
	})
}

func TestRunInspect(t *testing.T) {
	memFs := testutils.MemFs(t, map[string]string{"/add.json": testutils.ProgramJSON})
	var stdout bytes.Buffer

	require.NoError(t, RunInspect(Options{Fs: memFs, Stdout: &stdout}, "/add.json"))
	assert.Contains(t, stdout.String(), "# Sierra program")
	assert.Contains(t, stdout.String(), "| funcs | 1 |")
}
