package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintError writes a single "Error: <msg>" line to w.
// The prefix is colored when w is a terminal that supports it.
func PrintError(w io.Writer, err error) {
	out := termenv.NewOutput(w)
	prefix := out.String("Error:").Bold()
	if out.Profile != termenv.Ascii {
		prefix = prefix.Foreground(out.Color("#fb7185"))
	}
	fmt.Fprintf(w, "%s %v\n", prefix, err)
}
