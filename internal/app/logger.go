package app

import (
	"log/slog"
	"os"
	"strings"

	"github.com/hi5jack/compass-backend/internal/config"
)

// NewLogger builds the process-wide slog logger from LogConfig and installs
// it as the slog default. Format "json" is meant for production; anything
// else falls back to the text handler with source locations, which is easier
// to read during local development. Output always goes to os.Stderr so that
// stdout stays free for tooling.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	textMode := !strings.EqualFold(cfg.Format, "json")

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: textMode,
	}

	var handler slog.Handler
	if textMode {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// parseLevel maps a config string to a slog level, defaulting to info.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
