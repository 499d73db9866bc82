// Package jsonio reads opaque JSON values and writes JSON documents to a file or stdout.
//
// Files are accessed through an afero.Fs so callers (and tests) decide which
// filesystem backs a run.
package jsonio
