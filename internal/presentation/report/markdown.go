// Package report renders inspection results for humans.
package report

import (
	"fmt"
	"strings"

	cairo1compile "github.com/aretw0/cairo1-compile"
)

// GenerateMarkdown produces a Markdown summary of an inspected file.
// Merged documents get an extra section describing the envelope.
func GenerateMarkdown(in *cairo1compile.Inspection) string {
	var sb strings.Builder

	kind := "Sierra program"
	if in.Merged {
		kind = "Merged document"
	}
	fmt.Fprintf(&sb, "# %s\n\n", kind)
	fmt.Fprintf(&sb, "`%s` (%d bytes)\n\n", in.Path, in.Bytes)

	sb.WriteString("| Section | Entries |\n")
	sb.WriteString("|---|---:|\n")
	fmt.Fprintf(&sb, "| type_declarations | %d |\n", in.Stats.TypeDeclarations)
	fmt.Fprintf(&sb, "| libfunc_declarations | %d |\n", in.Stats.LibfuncDeclarations)
	fmt.Fprintf(&sb, "| statements | %d |\n", in.Stats.Statements)
	fmt.Fprintf(&sb, "| funcs | %d |\n", in.Stats.Functions)

	if in.Merged {
		sb.WriteString("\n## Envelope\n\n")
		layout := string(in.Layout)
		if layout == "" {
			layout = "missing"
		} else if !in.Layout.Known() {
			layout += " (unknown)"
		}
		fmt.Fprintf(&sb, "- layout: %s\n", layout)
		fmt.Fprintf(&sb, "- program_input: %s\n", in.InputKind)
	}
	return sb.String()
}
