// Package logging provides a zerolog-backed spacetraders.Logger.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the logger.
type Options struct {
	// Level defaults to info.
	Level zerolog.Level
	// Console switches from JSON lines to human-readable output.
	Console bool
	// Output defaults to stderr so command output on stdout stays clean.
	Output io.Writer
}

// Logger writes structured log lines.
type Logger struct {
	base zerolog.Logger
}

// New creates a logger.
func New(opts Options) *Logger {
	if opts.Level == zerolog.NoLevel {
		opts.Level = zerolog.InfoLevel
	}

	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	if opts.Console {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: "15:04:05",
		}
	}

	base := zerolog.New(output).
		With().
		Timestamp().
		Str("component", "spacetraders").
		Logger().
		Level(opts.Level)

	return &Logger{base: base}
}

// ParseLevel converts a level name, falling back to info.
func ParseLevel(value string) zerolog.Level {
	levelString := strings.ToLower(strings.TrimSpace(value))
	if levelString == "" {
		return zerolog.InfoLevel
	}

	lvl, err := zerolog.ParseLevel(levelString)
	if err != nil {
		return zerolog.InfoLevel
	}

	return lvl
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.write(l.base.Debug(), msg, fields)
}

// Info logs at info level.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.write(l.base.Info(), msg, fields)
}

// Warn logs at warn level.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.write(l.base.Warn(), msg, fields)
}

// Error logs at error level.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.write(l.base.Error(), msg, fields)
}

func (l *Logger) write(event *zerolog.Event, msg string, fields map[string]interface{}) {
	for key, value := range fields {
		switch typed := value.(type) {
		case error:
			event = event.AnErr(key, typed)
		case time.Duration:
			event = event.Dur(key, typed)
		default:
			event = event.Interface(key, typed)
		}
	}

	event.Msg(msg)
}
