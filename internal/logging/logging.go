// Package logging configures structured logging for a rosterbook session.
// The shell owns the terminal for the whole session, so log lines go to
// .rosterbook/logs/rosterbook.log instead of stderr; tail the file to watch
// a live session.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup opens (or creates) the session log file under logsDir and installs
// a handler on it as the slog default. The returned file stays open for the
// life of the session; the caller closes it on the way out.
func Setup(logsDir, level string) (*os.File, error) {
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	path := filepath.Join(logsDir, "rosterbook.log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(file, &tint.Options{
			Level:      ParseLevel(level),
			TimeFormat: time.Kitchen,
			AddSource:  true,
			NoColor:    true,
		}),
	))
	return file, nil
}

// ParseLevel maps a config level name onto a slog level. Unknown names
// fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
