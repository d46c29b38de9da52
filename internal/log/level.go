package log

import (
	"fmt"
	"log/slog"
	"strings"
)

// ParseLevel converts a level name (debug, info, warn, error) into a
// slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf(
		"invalid log level %q, valid values are: debug, info, warn, error", level,
	)
}
