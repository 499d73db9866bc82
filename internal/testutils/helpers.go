package testutils

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// ProgramJSON is a small valid program document (compact encoding).
// It mirrors pkg/sierra/testdata/add.sierra.json.
const ProgramJSON = `{"type_declarations":[{"id":{"id":0,"debug_name":"felt252"},"long_id":{"generic_id":"felt252","generic_args":[]},"declared_type_info":null}],"libfunc_declarations":[{"id":{"id":0,"debug_name":"felt252_add"},"long_id":{"generic_id":"felt252_add","generic_args":[]}},{"id":{"id":1,"debug_name":"store_temp<felt252>"},"long_id":{"generic_id":"store_temp","generic_args":[{"Type":{"id":0,"debug_name":"felt252"}}]}}],"statements":[{"Invocation":{"libfunc_id":{"id":0,"debug_name":"felt252_add"},"args":[{"id":0,"debug_name":null},{"id":1,"debug_name":null}],"branches":[{"target":"Fallthrough","results":[{"id":2,"debug_name":null}]}]}},{"Invocation":{"libfunc_id":{"id":1,"debug_name":"store_temp<felt252>"},"args":[{"id":2,"debug_name":null}],"branches":[{"target":{"Statement":2},"results":[{"id":3,"debug_name":null}]}]}},{"Return":[{"id":3,"debug_name":null}]}],"funcs":[{"id":{"id":0,"debug_name":"add::add::main"},"signature":{"param_types":[{"id":0,"debug_name":"felt252"},{"id":0,"debug_name":"felt252"}],"ret_types":[{"id":0,"debug_name":"felt252"}]},"params":[{"id":{"id":0,"debug_name":null},"ty":{"id":0,"debug_name":"felt252"}},{"id":{"id":1,"debug_name":null},"ty":{"id":0,"debug_name":"felt252"}}],"entry_point":0}]}`

// MemFs returns an in-memory filesystem populated with the given files.
// It fails the test immediately on error.
func MemFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		WriteFile(t, fs, name, content)
	}
	return fs
}

// WriteFile creates name (and its parent directories) on fs.
func WriteFile(t *testing.T, fs afero.Fs, name, content string) {
	t.Helper()

	require.NoError(t, fs.MkdirAll(filepath.Dir(name), 0o755), "Failed to create parent of %s", name)
	require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644), "Failed to write %s", name)
}

// ReadFile returns the content of name on fs, failing the test if it is missing.
func ReadFile(t *testing.T, fs afero.Fs, name string) string {
	t.Helper()

	data, err := afero.ReadFile(fs, name)
	require.NoError(t, err, "Failed to read %s", name)
	return string(data)
}

// FakeCompiler writes an executable shell script standing in for the compiler
// toolchain and returns its absolute path. The script body receives the
// compiler arguments as "$@".
// Tests using it are skipped on Windows.
func FakeCompiler(t *testing.T, body string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake compiler scripts require a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "fake-cairo-compile")
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755), "Failed to write fake compiler")
	return path
}
