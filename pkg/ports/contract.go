package ports

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/cairo1-compile/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunCompilerContract runs a suite of tests to verify that a Compiler implementation
// adheres to the defined interface contract.
// validPath must compile successfully; brokenPath must fail.
func RunCompilerContract(t *testing.T, compiler Compiler, validPath, brokenPath string) {
	ctx := context.Background()

	t.Run("Compiles to JSON", func(t *testing.T) {
		out, err := compiler.Compile(ctx, validPath, domain.DefaultCompileOptions())
		require.NoError(t, err, "Compile should succeed for %s", validPath)
		assert.True(t, json.Valid(out), "Compile output should be JSON")
	})

	t.Run("Failures are compilation errors", func(t *testing.T) {
		out, err := compiler.Compile(ctx, brokenPath, domain.DefaultCompileOptions())
		require.Error(t, err, "Compile should fail for %s", brokenPath)
		assert.ErrorIs(t, err, domain.ErrCompilation)
		assert.Nil(t, out, "No partial output on failure")
	})

	t.Run("Deterministic output", func(t *testing.T) {
		first, err := compiler.Compile(ctx, validPath, domain.DefaultCompileOptions())
		require.NoError(t, err)
		second, err := compiler.Compile(ctx, validPath, domain.DefaultCompileOptions())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
