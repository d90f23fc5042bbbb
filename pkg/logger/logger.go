// Package logger builds slog loggers from environment configuration. JSON
// output is the default so records land well in log aggregation; text output
// is for local development.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config is the env-tagged logging configuration.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`  // debug, info, warn, error
	Format string `env:"LOG_FORMAT" envDefault:"json"` // json or text
}

// Option configures logger creation.
type Option func(*settings)

type settings struct {
	level  slog.Level
	format string
	output io.Writer
	attrs  []slog.Attr
}

// WithOutput sets a custom output destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.output = w
		}
	}
}

// WithService attaches a static service attribute to every record.
func WithService(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.attrs = append(s.attrs, slog.String("service", name))
		}
	}
}

// New creates a slog.Logger from the given config.
func New(cfg Config, opts ...Option) *slog.Logger {
	s := &settings{
		level:  parseLevel(cfg.Level),
		format: strings.ToLower(cfg.Format),
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}

	handlerOpts := &slog.HandlerOptions{Level: s.level}

	var handler slog.Handler
	if s.format == "text" {
		handler = slog.NewTextHandler(s.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(s.output, handlerOpts)
	}

	if len(s.attrs) > 0 {
		handler = handler.WithAttrs(s.attrs)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
