package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Shubhendu-bhakat/cafe-demo/internal/config"
)

// New constructs a zerolog logger writing to stdout. Unknown levels fall back
// to info; format "console" switches to human-readable output.
func New(cfg config.Logging, app, env string) zerolog.Logger {
	return NewWithWriter(os.Stdout, cfg, app, env)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, cfg config.Logging, app, env string) zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level))); err == nil && parsed != zerolog.NoLevel {
		level = parsed
	}

	if strings.EqualFold(strings.TrimSpace(cfg.Format), "console") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("app", app).
		Str("env", env).
		Logger()
}
