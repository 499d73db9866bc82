package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/cairo1-compile/internal/testutils"
	"github.com/aretw0/cairo1-compile/pkg/adapters/memory"
	"github.com/aretw0/cairo1-compile/pkg/domain"
	"github.com/aretw0/cairo1-compile/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryCompiler_Contract(t *testing.T) {
	compiler := memory.NewCompiler(map[string]string{"add.cairo": testutils.ProgramJSON})
	ports.RunCompilerContract(t, compiler, "add.cairo", "missing.cairo")
}

func TestInMemoryCompiler_RecordsCalls(t *testing.T) {
	compiler := memory.NewCompiler(map[string]string{
		"b.cairo": testutils.ProgramJSON,
		"a.cairo": testutils.ProgramJSON,
	})
	assert.Equal(t, []string{"a.cairo", "b.cairo"}, compiler.Paths())

	_, err := compiler.Compile(context.Background(), "a.cairo", domain.DefaultCompileOptions())
	require.NoError(t, err)

	calls := compiler.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "a.cairo", calls[0].Path)
	assert.True(t, calls[0].Options.ReplaceIDs)
	assert.False(t, calls[0].Options.AutoWithdrawGas)
}

func TestInMemoryCompiler_CancelledContext(t *testing.T) {
	compiler := memory.NewCompiler(map[string]string{"a.cairo": testutils.ProgramJSON})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := compiler.Compile(ctx, "a.cairo", domain.DefaultCompileOptions())
	assert.ErrorIs(t, err, domain.ErrCompilation)
	assert.ErrorIs(t, err, context.Canceled)
}
