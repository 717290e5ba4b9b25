// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors used by the
// tabpfn client.
//
// Logger embeds zerolog.Logger, so Debug, Info, Warn, Error and the rest of
// the zerolog API are available on *Logger directly. Entries are JSON and
// never go to stdout, which belongs to the program output.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

func init() {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

// NewLogger returns a logger writing to stderr at level. Every entry carries
// the role field, a timestamp and the name of the calling function. An
// unknown or empty level means info.
func NewLogger(role, level string) *Logger {
	return newLogger(os.Stderr, role, parseLevel(level))
}

// NewClientLogger appends entries to the file at path, creating parent
// directories when needed. With an empty path, or when the file cannot be
// opened, it behaves like [NewLogger].
func NewClientLogger(role, path, level string) *Logger {
	if path == "" {
		return NewLogger(role, level)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return NewLogger(role, level)
	}
	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return NewLogger(role, level)
	}

	return newLogger(logFile, role, parseLevel(level))
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

func newLogger(out io.Writer, role string, level zerolog.Level) *Logger {
	return &Logger{zerolog.New(out).
		Level(level).
		With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// Nop returns a logger that discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a logger that inherits the fields of l and adds
// component. The parent is not modified.
func (l *Logger) GetChildLogger(component string) *Logger {
	return &Logger{l.With().Str("component", component).Logger()}
}
