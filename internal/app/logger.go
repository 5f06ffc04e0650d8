package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/noah-vh/airbour-web-sub001/internal/config"
)

// NewLogger builds the process logger from cfg, writing to stderr, and
// installs it as the slog default.
//
// Format "json" emits one JSON object per line. Any other format emits
// text with source locations. Level is debug, info, warn or error
// (case-insensitive) and falls back to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	if strings.EqualFold(strings.TrimSpace(cfg.Format), "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	opts.AddSource = true
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
