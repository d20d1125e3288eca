// Package logger wraps zerolog for depviz diagnostics.
//
// Diagnostics are written to stderr in zerolog's console format so stdout
// stays reserved for the configuration report. The level is chosen with
// --log-level and defaults to warn, which keeps a successful run silent.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level is given.
const DefaultLevel = "warn"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// New returns a console logger writing to w at the named level
// (trace, debug, info, warn, error).
func New(w io.Writer, level string) (*Logger, error) {
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		return nil, fmt.Errorf("invalid log level %q", level)
	}

	_, isFile := w.(*os.File)
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    !isFile,
	}
	l := zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("app", "depviz").
		Logger()
	return &Logger{l}, nil
}

// Nop returns a *Logger that discards all output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithField returns a child logger carrying an extra string field.
func (l *Logger) WithField(key, value string) *Logger {
	return &Logger{l.Logger.With().Str(key, value).Logger()}
}
