// SPDX-License-Identifier: GPL-3.0-or-later

package logger

import (
	"io"

	"github.com/rs/zerolog"
)

var debugLogger DebugLogger

func init() {
	// disabled unless built with the "debug" tag, see enable-debug.go
	zl := zerolog.New(io.Discard).Level(zerolog.Disabled)

	debugLogger = DebugLogger{
		zl: &zl,
	}
}

// DebugLogger traces syscalls and external commands. It is only turned on
// when built with the "debug" tag.
type DebugLogger struct {
	zl *zerolog.Logger
}

// NewDebugLogger returns the shared DebugLogger
func NewDebugLogger() DebugLogger {
	return debugLogger
}

// Debug wrapper around zerolog Debug
func (l DebugLogger) Debug() *zerolog.Event {
	return l.zl.Debug()
}

// Warn wrapper around zerolog Warn
func (l DebugLogger) Warn() *zerolog.Event {
	return l.zl.Warn()
}

// Error wrapper around zerolog Error
func (l DebugLogger) Error() *zerolog.Event {
	return l.zl.Error()
}
