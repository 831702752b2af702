// Package logger configures the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New builds a logger writing to stdout and installs it as slog's default.
func New(level slog.Level, format string) *slog.Logger {
	l := newLogger(os.Stdout, level, format)
	slog.SetDefault(l)
	return l
}

func newLogger(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if format == "text" {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h).With("service", "shop_backend")
}
