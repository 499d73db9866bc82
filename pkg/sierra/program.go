package sierra

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aretw0/cairo1-compile/pkg/domain"
	"github.com/aretw0/cairo1-compile/pkg/jsonio"
	"github.com/aretw0/cairo1-compile/pkg/schema"
)

// SchemaName is the component of the embedded schema document that describes a program.
const SchemaName = "Program"

//go:embed program.openapi.yaml
var programSpec []byte

var loadSchema = sync.OnceValues(func() (*schema.Document, error) {
	return schema.Load(programSpec)
})

// Program is a validated, compacted program document.
type Program struct {
	raw json.RawMessage
}

// Parse decodes data as a program document and validates its structure.
// Identifiers and statement indices must be written as unsigned 64-bit integers.
func Parse(data []byte) (*Program, error) {
	value, err := jsonio.DecodeValue(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if err := Validate(value); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedJSON, err)
	}
	return &Program{raw: buf.Bytes()}, nil
}

// Validate checks an already decoded JSON value against the program schema.
// Numbers should be json.Number; float64 values cannot be checked for
// integer spelling or u64 range.
func Validate(value any) error {
	doc, err := loadSchema()
	if err != nil {
		return fmt.Errorf("loading program schema: %w", err)
	}
	if err := doc.Validate(SchemaName, value); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSchemaMismatch, err)
	}
	if err := checkIndices(value); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSchemaMismatch, err)
	}
	return nil
}

// Bytes returns a copy of the compact JSON encoding of the program.
func (p *Program) Bytes() []byte {
	if p == nil {
		return nil
	}
	return bytes.Clone(p.raw)
}

// MarshalJSON emits the program exactly as it was parsed.
func (p *Program) MarshalJSON() ([]byte, error) {
	if p == nil || len(p.raw) == 0 {
		return []byte("null"), nil
	}
	return p.raw, nil
}

// UnmarshalJSON parses and validates data, so a Program embedded in a larger
// document is checked as strictly as one read on its own.
func (p *Program) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*p = *parsed
	return nil
}

// Stats counts the entries of each top-level section.
type Stats struct {
	TypeDeclarations    int `json:"type_declarations"`
	LibfuncDeclarations int `json:"libfunc_declarations"`
	Statements          int `json:"statements"`
	Functions           int `json:"funcs"`
}

// Stats reports section sizes without decoding the entries themselves.
func (p *Program) Stats() (Stats, error) {
	var sections struct {
		TypeDeclarations    []json.RawMessage `json:"type_declarations"`
		LibfuncDeclarations []json.RawMessage `json:"libfunc_declarations"`
		Statements          []json.RawMessage `json:"statements"`
		Funcs               []json.RawMessage `json:"funcs"`
	}
	if err := json.Unmarshal(p.raw, &sections); err != nil {
		return Stats{}, fmt.Errorf("%w: %w", domain.ErrMalformedJSON, err)
	}
	return Stats{
		TypeDeclarations:    len(sections.TypeDeclarations),
		LibfuncDeclarations: len(sections.LibfuncDeclarations),
		Statements:          len(sections.Statements),
		Functions:           len(sections.Funcs),
	}, nil
}
