package domain

import (
	"errors"
	"io/fs"
)

// ErrUsage is returned when the command line cannot be turned into a request.
var ErrUsage = errors.New("usage error")

// ErrProjectSetup is returned when the compile path does not point at a recognizable project.
var ErrProjectSetup = errors.New("project setup failed")

// ErrCompilation is returned when the external compiler fails or cannot be started.
var ErrCompilation = errors.New("compilation failed")

// ErrMalformedJSON is returned when an input is not a single well-formed JSON value.
var ErrMalformedJSON = errors.New("malformed JSON")

// ErrSchemaMismatch is returned when a program document does not match the program schema.
var ErrSchemaMismatch = errors.New("program does not match schema")

// Error categories reported by Classify.
const (
	CategoryOK       = "ok"
	CategoryUsage    = "usage"
	CategoryIO       = "io"
	CategoryJSON     = "malformed_json"
	CategorySchema   = "schema_mismatch"
	CategoryCompiler = "compiler"
	CategoryOther    = "other"
)

// Classify maps an error to one of the Category constants.
// All categories share the same exit status; the label is used for logs and metrics.
func Classify(err error) string {
	switch {
	case err == nil:
		return CategoryOK
	case errors.Is(err, ErrUsage):
		return CategoryUsage
	case errors.Is(err, ErrSchemaMismatch):
		return CategorySchema
	case errors.Is(err, ErrMalformedJSON):
		return CategoryJSON
	case errors.Is(err, ErrCompilation), errors.Is(err, ErrProjectSetup):
		return CategoryCompiler
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission), isPathError(err):
		return CategoryIO
	default:
		return CategoryOther
	}
}

func isPathError(err error) bool {
	var pathErr *fs.PathError
	return errors.As(err, &pathErr)
}
