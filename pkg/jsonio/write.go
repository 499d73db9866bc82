package jsonio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// Writer delivers serialized documents to a named file or to Stdout.
type Writer struct {
	Fs     afero.Fs
	Stdout io.Writer
}

// NewWriter creates a Writer. Nil arguments fall back to the OS filesystem and os.Stdout.
func NewWriter(fs afero.Fs, stdout io.Writer) *Writer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Writer{Fs: fs, Stdout: stdout}
}

// Marshal encodes v as compact JSON without a trailing newline.
// HTML characters are not escaped, so strings come out as written.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Write serializes v and writes it to path, creating or truncating the file.
// An empty path prints the document to Stdout followed by a single newline.
// It returns the number of document bytes written (excluding that newline).
func (w *Writer) Write(path string, v any) (int, error) {
	data, err := Marshal(v)
	if err != nil {
		return 0, err
	}

	if path == "" {
		if _, err := w.Stdout.Write(append(data, '\n')); err != nil {
			return 0, fmt.Errorf("failed to write to stdout: %w", err)
		}
		return len(data), nil
	}

	f, err := w.Fs.Create(path)
	if err != nil {
		return 0, err
	}
	n, err := f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return n, nil
}
