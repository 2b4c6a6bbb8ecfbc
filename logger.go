package main

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// NewLogger returns a structured slog.Logger with the given level. Logs go
// to stderr so stdout stays clean for --list-monitors output; every record
// carries a fresh run id.
func NewLogger(level slog.Leveler) *slog.Logger {
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h).With(slog.String("run_id", uuid.NewString()))
}

// levelFor maps the debug toggle to a log level.
func levelFor(debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
