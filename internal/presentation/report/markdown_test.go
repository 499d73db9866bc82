package report

import (
	"testing"

	cairo1compile "github.com/aretw0/cairo1-compile"
	"github.com/aretw0/cairo1-compile/pkg/domain"
	"github.com/aretw0/cairo1-compile/pkg/sierra"
	"github.com/stretchr/testify/assert"
)

func TestGenerateMarkdown(t *testing.T) {
	stats := sierra.Stats{TypeDeclarations: 1, LibfuncDeclarations: 2, Statements: 3, Functions: 1}

	t.Run("Program", func(t *testing.T) {
		md := GenerateMarkdown(&cairo1compile.Inspection{Path: "add.json", Bytes: 42, Stats: stats})

		assert.Contains(t, md, "# Sierra program")
		assert.Contains(t, md, "`add.json` (42 bytes)")
		assert.Contains(t, md, "| statements | 3 |")
		assert.Contains(t, md, "| libfunc_declarations | 2 |")
		assert.NotContains(t, md, "## Envelope")
	})

	t.Run("Merged", func(t *testing.T) {
		md := GenerateMarkdown(&cairo1compile.Inspection{
			Path:      "merged.json",
			Merged:    true,
			Stats:     stats,
			Layout:    domain.LayoutRecursive,
			InputKind: "object",
		})

		assert.Contains(t, md, "# Merged document")
		assert.Contains(t, md, "- layout: recursive\n")
		assert.Contains(t, md, "- program_input: object\n")
	})

	t.Run("Unknown layout is flagged", func(t *testing.T) {
		md := GenerateMarkdown(&cairo1compile.Inspection{Merged: true, Layout: "flat", InputKind: "null"})
		assert.Contains(t, md, "- layout: flat (unknown)")
	})
}
