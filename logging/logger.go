// SPDX-License-Identifier: MIT

// Package logging - zap loggers for the quantity core.
//
// Purpose:
//   - Build one root logger from a Config (level, console or JSON, outputs).
//   - Hand the quantity core a named child, so propagation reports read
//     "astrokit.qfloat" in the output.
//
// Contract:
//   - The numeric packages never log above debug; info-level roots stay quiet.
//   - A nil *Logger is usable and behaves as a no-op.
//
// AI-Hints:
//   - Use DevelopmentConfig while chasing NaN or +Inf uncertainties: the
//     degeneracy reports carry the operation and element index.

package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RootName names the root logger; components are children of it.
const RootName = "astrokit"

// ComponentQFloat names the child logger of qfloat and its propagator.
const ComponentQFloat = "qfloat"


// Logger is the application root logger.
type Logger struct {
	*zap.Logger
}

// Config selects level, encoding and sinks.
type Config struct {
	Level       string // zap level name: "debug", "info", "warn", "error"
	Development bool   // console encoding, colour levels, stack traces
	OutputPaths []string
}

// DefaultConfig is info level JSON on stderr.
func DefaultConfig() Config {
	return Config{Level: "info", OutputPaths: []string{"stderr"}}
}

// DevelopmentConfig is debug level console output on stderr, which shows
// the propagator's degeneracy reports.
func DevelopmentConfig() Config {
	return Config{Level: "debug", Development: true, OutputPaths: []string{"stderr"}}
}

// New builds the root logger for cfg. Empty OutputPaths means stderr.
//
// Errors: an unknown level, or a sink zap cannot open.
func New(cfg Config) (*Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	sinks := cfg.OutputPaths
	if len(sinks) == 0 {
		sinks = []string{"stderr"}
	}

	zl, err := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       cfg.Development,
		Encoding:          encoding(cfg.Development),
		EncoderConfig:     encoderConfig(cfg.Development),
		OutputPaths:       sinks,
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: !cfg.Development,
	}.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build: %w", err)
	}

	return &Logger{Logger: zl.Named(RootName)}, nil
}

// NewDefault is New(DefaultConfig()), or a no-op logger if stderr is unusable.
func NewDefault() *Logger { return orNop(New(DefaultConfig())) }

// NewDevelopment is New(DevelopmentConfig()) with the same fallback.
func NewDevelopment() *Logger { return orNop(New(DevelopmentConfig())) }

// NewNop discards everything.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

func orNop(l *Logger, err error) *Logger {
	if err != nil {
		return NewNop()
	}

	return l
}

// Zap returns the root zap logger; nil receivers yield a no-op.
func (l *Logger) Zap() *zap.Logger {
	if l == nil || l.Logger == nil {
		return zap.NewNop()
	}

	return l.Logger
}

// For returns the child logger of a component, e.g. For(ComponentQFloat).
func (l *Logger) For(component string) *zap.Logger {
	return l.Zap().Named(component)
}

// ParseLevel maps a zap level name to its zapcore.Level.
func ParseLevel(level string) (zapcore.Level, error) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("logging: level %q: %w", level, err)
	}

	return l, nil
}

func encoding(development bool) string {
	if development {
		return "console"
	}

	return "json"
}

func encoderConfig(development bool) zapcore.EncoderConfig {
	if development {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return ec
	}

	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "timestamp"
	ec.MessageKey = "message"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder

	return ec
}
