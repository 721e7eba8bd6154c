package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/combogen/pkg/domain"
)

// Format selects the slog handler.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// New creates a configured application logger.
// It writes to Stderr (stdout carries generated Mermaid and reports).
// It standardizes common keys (e.g., "error" -> "err").
func New(level slog.Level, format Format) *slog.Logger {
	return NewWithWriter(os.Stderr, level, format)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level slog.Level, format Format) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Standardize 'error' key to 'err'
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}
	if format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Diagnostics reports every non-fatal construction finding at Warn level.
func Diagnostics(logger *slog.Logger, diags []domain.Diagnostic) {
	for _, d := range diags {
		logger.Warn("unknown symbol",
			"chain", d.Chain,
			"position", d.Position,
			"symbol", string(d.Symbol),
			"placeholder", domain.KeyPlaceholder,
		)
	}
}
