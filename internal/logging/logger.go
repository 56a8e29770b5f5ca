// Package logging builds the process logger and adapts it to the simulation
// engine's logging interface.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a zap logger for the given level and format. Format "console"
// uses the development encoder, "json" the production encoder; empty values
// default to info/console.
func New(level, format string) (*zap.Logger, error) {
	if level == "" {
		level = "info"
	}
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	if format == "" {
		format = "console"
	}
	var config zap.Config
	switch format {
	case "console":
		config = zap.NewDevelopmentConfig()
	case "json":
		config = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)

	return config.Build()
}

// EngineLogger adapts a zap logger to the calculation package's Logger
// interface.
type EngineLogger struct {
	sugar *zap.SugaredLogger
}

// NewEngineLogger wraps l for use by the simulation engine.
func NewEngineLogger(l *zap.Logger) *EngineLogger {
	return &EngineLogger{sugar: l.Sugar()}
}

func (e *EngineLogger) Debugf(format string, args ...any) { e.sugar.Debugf(format, args...) }
func (e *EngineLogger) Infof(format string, args ...any)  { e.sugar.Infof(format, args...) }
func (e *EngineLogger) Warnf(format string, args ...any)  { e.sugar.Warnf(format, args...) }
func (e *EngineLogger) Errorf(format string, args ...any) { e.sugar.Errorf(format, args...) }
