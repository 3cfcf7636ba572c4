package logger

import (
	"io"
	"log/slog"
	"os"

	"go.uber.org/fx/fxevent"
)

// New creates the service JSON logger writing to stdout.
func New() *slog.Logger {
	return NewWithWriter(os.Stdout, slog.LevelInfo)
}

// NewWithWriter creates a JSON logger writing to w at the given level.
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("service", "ridepoints"))
}

// NewFxEventLogger routes fx lifecycle events through l.
func NewFxEventLogger(l *slog.Logger) fxevent.Logger {
	return &fxevent.SlogLogger{Logger: l}
}
