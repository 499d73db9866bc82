package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates a configured application logger writing to w (Stderr when nil).
// Stdout is reserved for JSON documents, so logs never go there.
// It standardizes common keys (e.g., "error" -> "err").
func New(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Standardize 'error' key to 'err'
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ForCLI returns the logger used by commands. It only reports warnings
// unless debug is set.
func ForCLI(debug bool) *slog.Logger {
	if debug {
		return New(os.Stderr, slog.LevelDebug)
	}
	return New(os.Stderr, slog.LevelWarn)
}
