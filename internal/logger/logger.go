// SPDX-License-Identifier: GPL-3.0-or-later

package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger our internal "singleton" wrapper around zerolog so every
// component writes diagnostics to the same place
type Logger struct {
	zl *zerolog.Logger
}

// unexported "singleton" logger
var logger Logger

func init() {
	Reset()
}

// New returns the internal "singleton" logger
func New() Logger {
	return logger
}

// Component returns a child logger tagged with the given component name
func Component(name string) Logger {
	zl := logger.zl.With().Str("component", name).Logger()
	return Logger{zl: &zl}
}

// SetGlobalLevel set level for all loggers
func SetGlobalLevel(level zerolog.Level) {
	if level == zerolog.DebugLevel {
		SetWithCaller()
	}

	zerolog.SetGlobalLevel(level)
}

// SetWithCaller enables showing caller in log context
func SetWithCaller() {
	newZl := logger.zl.With().Caller().Logger()
	*logger.zl = newZl
}

// SetOutput redirects all loggers, used by tests to capture output
func SetOutput(w io.Writer) {
	newZl := logger.zl.Output(zerolog.ConsoleWriter{Out: w, NoColor: true})
	*logger.zl = newZl
}

// Reset resets logger to default values: console output on stderr
func Reset() {
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Logger()

	logger = Logger{
		zl: &zl,
	}
}

// Info wrapper around zerolog Info
func (l Logger) Info() *zerolog.Event {
	return l.zl.Info()
}

// Debug wrapper around zerolog Debug
func (l Logger) Debug() *zerolog.Event {
	return l.zl.Debug()
}

// Warn wrapper around zerolog Warn
func (l Logger) Warn() *zerolog.Event {
	return l.zl.Warn()
}

// Error wrapper around zerolog Error
func (l Logger) Error() *zerolog.Event {
	return l.zl.Error()
}

// Fatal wrapper around zerolog Fatal, exits with status 1
func (l Logger) Fatal() *zerolog.Event {
	return l.zl.Fatal()
}
