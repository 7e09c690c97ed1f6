// Package logger provides structured logging using zerolog.
// It supports JSON and console output formats with configurable log levels.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds the logger configuration options.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string

	// Format is the output format (json, console)
	Format string

	// ServiceName is added to every log entry
	ServiceName string
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "flight-search-gateway",
	}
}

// New creates a zerolog.Logger writing to stdout.
func New(cfg Config) zerolog.Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput creates a zerolog.Logger with a custom output writer.
// Useful for capturing log output in tests.
func NewWithOutput(cfg Config, output io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var writer io.Writer = output
	if cfg.Format == "console" {
		writer = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	ctx := zerolog.New(writer).
		Level(level).
		With().
		Timestamp()

	if cfg.ServiceName != "" {
		ctx = ctx.Str("service", cfg.ServiceName)
	}

	return ctx.Logger()
}

// Nop returns a disabled logger that produces no output.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
