package schema

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Document is a set of named JSON schemas loaded from an OpenAPI 3 document.
// Only components.schemas is used; paths may be empty.
type Document struct {
	api *openapi3.T
}

// Load parses and checks an OpenAPI document (YAML or JSON).
func Load(data []byte) (*Document, error) {
	loader := openapi3.NewLoader()
	api, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema document: %w", err)
	}
	if err := api.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid schema document: %w", err)
	}
	if api.Components == nil || len(api.Components.Schemas) == 0 {
		return nil, fmt.Errorf("schema document declares no component schemas")
	}
	return &Document{api: api}, nil
}

// Names returns the component schema names, sorted.
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.api.Components.Schemas))
	for name := range d.api.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks a decoded JSON value (as produced by encoding/json into any)
// against the named component schema.
// All failures are reported together in an *AggregateError.
func (d *Document) Validate(name string, value any) error {
	ref, ok := d.api.Components.Schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return fmt.Errorf("unknown schema %q", name)
	}

	err := ref.Value.VisitJSON(value, openapi3.MultiErrors())
	if err == nil {
		return nil
	}

	var errs []error
	for _, e := range flatten(err) {
		errs = append(errs, toValidationError(e))
	}
	return &AggregateError{Errors: errs}
}

func flatten(err error) []error {
	multi, ok := err.(openapi3.MultiError)
	if !ok {
		return []error{err}
	}
	var out []error
	for _, e := range multi {
		out = append(out, flatten(e)...)
	}
	return out
}

func toValidationError(err error) *ValidationError {
	var se *openapi3.SchemaError
	if errors.As(err, &se) {
		reason := se.Reason
		if reason == "" && se.Origin != nil {
			reason = se.Origin.Error()
		}
		if reason == "" {
			reason = "does not match schema"
		}
		return &ValidationError{
			Key:    "/" + strings.Join(se.JSONPointer(), "/"),
			Reason: reason,
			Value:  se.Value,
		}
	}
	return &ValidationError{Key: "/", Reason: err.Error()}
}
