package bootstrap

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/boolean-maybe/tada/config"
)

// InitLogging installs the default slog logger.
// Logs go to the log file in the cache dir so they never draw over the TUI;
// if the file cannot be opened, logs are discarded.
// Returns the effective level.
func InitLogging(cfg *config.Config) slog.Level {
	level := ParseLogLevel(cfg.Logging.Level)

	var out io.Writer = io.Discard
	//nolint:gosec // G302: 0644 is appropriate for a log file
	f, err := os.OpenFile(config.GetLogFile(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err == nil {
		out = f
	}

	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	slog.Info("logging initialized", "level", level.String(), "file", config.GetLogFile())
	return level
}

// ParseLogLevel maps a config level name to a slog level. Unknown names mean error.
func ParseLogLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
