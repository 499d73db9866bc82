package cairo1compile

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aretw0/cairo1-compile/pkg/domain"
	"github.com/aretw0/cairo1-compile/pkg/jsonio"
	"github.com/aretw0/cairo1-compile/pkg/sierra"
)

// Inspection summarizes a program file or a merged document.
type Inspection struct {
	Path   string
	Bytes  int
	Merged bool
	Stats  sierra.Stats

	// Set for merged documents only.
	Layout    domain.Layout
	InputKind string
}

// Inspect validates the file at path and reports its section sizes.
// The file may be a program or a merged document.
func (d *Driver) Inspect(path string) (*Inspection, error) {
	data, err := jsonio.ReadFile(d.fs, path)
	if err != nil {
		return nil, err
	}

	// Anything but an object is left for sierra.Parse to reject.
	var fields map[string]json.RawMessage
	_ = json.Unmarshal(data, &fields)

	in := &Inspection{Path: path, Bytes: len(data)}
	programData := data
	if raw, ok := fields[domain.KeyProgram]; ok {
		in.Merged = true
		programData = raw
		in.InputKind = jsonKind(fields[domain.KeyProgramInput])
		if rawLayout, ok := fields[domain.KeyLayout]; ok {
			var layout string
			if err := json.Unmarshal(rawLayout, &layout); err != nil {
				return nil, fmt.Errorf("%s: layout: %w: %w", path, domain.ErrMalformedJSON, err)
			}
			in.Layout = domain.Layout(layout)
		}
	}

	program, err := sierra.Parse(programData)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if in.Stats, err = program.Stats(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}

// jsonKind names the JSON type of a raw value from its first byte.
func jsonKind(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "missing"
	}
	switch raw[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
