// Package logging builds the application loggers. Diagnostics always go
// to stderr: stdout is reserved for diagram markup and JSON-RPC frames,
// and interleaving logs there would corrupt both.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates a configured application logger at the given level.
// Common keys are standardized (e.g. "error" -> "err").
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// ForVerbosity maps the CLI --verbose flag onto a logger: debug level
// when set, info otherwise.
func ForVerbosity(verbose bool) *slog.Logger {
	if verbose {
		return New(slog.LevelDebug)
	}
	return New(slog.LevelInfo)
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
