// Package logger provides structured logging using zerolog.
// It supports JSON and console output with a configurable level.
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config holds the logger configuration options.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string

	// Format is the output format (json, console)
	Format string

	// EnableCaller adds caller information to log entries
	EnableCaller bool

	// ServiceName is attached to every entry as "service"
	ServiceName string
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "flight-lookup",
	}
}

// Logger wraps zerolog.Logger with helpers for common context fields.
type Logger struct {
	zerolog.Logger
}

// New creates a Logger writing to stdout.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput creates a Logger writing to output.
func NewWithOutput(cfg Config, output io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	writer := output
	if cfg.Format == "console" {
		writer = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	ctx := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName)

	if cfg.EnableCaller {
		ctx = ctx.Caller()
	}

	return &Logger{Logger: ctx.Logger()}
}

// WithContext returns a child logger with an extra string field.
func (l *Logger) WithContext(key, value string) *Logger {
	return &Logger{Logger: l.With().Str(key, value).Logger()}
}

// WithRequestID returns a child logger tagged with a request ID.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return l.WithContext("request_id", requestID)
}

// WithUpstream returns a child logger tagged with the upstream API name.
func (l *Logger) WithUpstream(name string) *Logger {
	return l.WithContext("upstream", name)
}

// Nop returns a disabled logger.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

var (
	globalMu sync.RWMutex
	global   *Logger
)

// SetGlobal replaces the process-wide logger.
func SetGlobal(l *Logger) {
	globalMu.Lock()
	global = l
	globalMu.Unlock()
}

// L returns the process-wide logger, creating a default one on first use.
func L() *Logger {
	globalMu.RLock()
	l := global
	globalMu.RUnlock()
	if l != nil {
		return l
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if global == nil {
		global = New(DefaultConfig())
	}
	return global
}
