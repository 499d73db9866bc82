package jsonio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/aretw0/cairo1-compile/pkg/domain"
	"github.com/spf13/afero"
)

// ReadFile returns the content of path on fs.
// Errors keep their *fs.PathError so callers can tell missing files from bad content.
func ReadFile(fs afero.Fs, path string) ([]byte, error) {
	return afero.ReadFile(fs, path)
}

// ReadValue reads path and decodes it as a single arbitrary JSON value.
func ReadValue(fs afero.Fs, path string) (any, error) {
	data, err := ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	v, err := DecodeValue(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// DecodeValue decodes exactly one JSON value from r.
// Numbers are kept as json.Number so their text survives re-encoding.
// Invalid UTF-8 anywhere in the input, or anything but whitespace after the
// value, is an error.
func DecodeValue(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: invalid UTF-8", domain.ErrMalformedJSON)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedJSON, err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("trailing data after JSON value")
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedJSON, err)
	}
	return v, nil
}
