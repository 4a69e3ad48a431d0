package app

import (
	"io"
	"log/slog"
)

// App encapsulates the application's dependencies and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
}

// NewApp constructs the application with its own isolated logger; nothing
// global is touched, which keeps parallel tests independent.
func NewApp(outW io.Writer, cfg *Config) *App {
	return &App{outW: outW, logger: newLogger(cfg.LogLevel, cfg.LogFormat, outW)}
}

// newLogger builds the application logger from the configured level and
// handler format.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
