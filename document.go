package cairo1compile

import (
	"github.com/aretw0/cairo1-compile/pkg/domain"
	"github.com/aretw0/cairo1-compile/pkg/sierra"
)

// Document is the merged envelope handed to downstream consumers.
// Fields serialize in declaration order.
type Document struct {
	Program      *sierra.Program `json:"program"`
	ProgramInput any             `json:"program_input"`
	Layout       domain.Layout   `json:"layout"`
}

// NewDocument builds a Document. An empty layout becomes domain.DefaultLayout.
func NewDocument(program *sierra.Program, input any, layout domain.Layout) *Document {
	if layout == "" {
		layout = domain.DefaultLayout
	}
	return &Document{
		Program:      program,
		ProgramInput: input,
		Layout:       layout,
	}
}
