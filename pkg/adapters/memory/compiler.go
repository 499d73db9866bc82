package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/cairo1-compile/pkg/domain"
)

// Compiler implements ports.Compiler by serving precompiled program documents.
// It is meant for tests and for embedding programs that were compiled ahead of time.
type Compiler struct {
	mu       sync.Mutex
	programs map[string][]byte
	calls    []Call
}

// Call records one Compile request.
type Call struct {
	Path    string
	Options domain.CompileOptions
}

// NewCompiler creates a Compiler serving the given outputs, keyed by compile path.
func NewCompiler(programs map[string]string) *Compiler {
	c := &Compiler{programs: make(map[string][]byte, len(programs))}
	for path, program := range programs {
		c.programs[path] = []byte(program)
	}
	return c
}

// Compile returns the document registered for path.
func (c *Compiler) Compile(ctx context.Context, path string, opts domain.CompileOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCompilation, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = append(c.calls, Call{Path: path, Options: opts})
	program, ok := c.programs[path]
	if !ok {
		return nil, fmt.Errorf("%w: no program registered for %s", domain.ErrCompilation, path)
	}
	return append([]byte(nil), program...), nil
}

// Calls returns the requests seen so far, in order.
func (c *Compiler) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Call(nil), c.calls...)
}

// Paths lists the registered compile paths.
func (c *Compiler) Paths() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, len(c.programs))
	for k := range c.programs {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order
	return keys
}
