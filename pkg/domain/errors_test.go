package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, CategoryOK},
		{"usage", fmt.Errorf("%w: missing argument", ErrUsage), CategoryUsage},
		{"schema", fmt.Errorf("reading a.json: %w", ErrSchemaMismatch), CategorySchema},
		{"json", fmt.Errorf("%w: unexpected EOF", ErrMalformedJSON), CategoryJSON},
		{"compiler", fmt.Errorf("%w: exit status 1", ErrCompilation), CategoryCompiler},
		{"project", fmt.Errorf("%w: no manifest", ErrProjectSetup), CategoryCompiler},
		{"not found", &fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist}, CategoryIO},
		{"permission", fmt.Errorf("writing: %w", fs.ErrPermission), CategoryIO},
		{"other", errors.New("boom"), CategoryOther},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.err))
		})
	}
}
