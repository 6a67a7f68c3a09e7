// Package logger provides structured logging built on zap.
package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Logger wraps a zap.Logger so callers can initialize it with a level
// after construction.
type Logger struct {
	// Log is the underlying zap logger, valid after Init.
	Log *zap.Logger
}

// New returns an uninitialized Logger backed by a no-op zap logger.
func New() *Logger {
	return &Logger{Log: zap.NewNop()}
}

// Init builds the production zap logger at the given level
// ("Debug", "Info", "Warn", "Error").
func (l *Logger) Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	log, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	l.Log = log
	return nil
}
