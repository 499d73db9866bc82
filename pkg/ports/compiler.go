package ports

import (
	"context"

	"github.com/aretw0/cairo1-compile/pkg/domain"
)

// Compiler turns a compile target into the serialized program representation.
type Compiler interface {
	// Compile builds the project at path and returns the program as JSON.
	// Failures must match domain.ErrCompilation.
	Compile(ctx context.Context, path string, opts domain.CompileOptions) ([]byte, error)
}
