package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Init creates and sets the package-level default slog logger. Output
// goes to stderr so diagnostics never mix with report output on stdout.
func Init(level slog.Level) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// ParseLevel converts a string ("debug", "info", "warn", "error") to
// slog.Level. Unknown strings default to LevelWarn, which keeps parser
// skip notices quiet unless asked for.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
