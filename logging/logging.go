// Package logging holds the process-wide zap logger. It defaults to a no-op
// logger so packages and tests can log without any setup.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var root = zap.NewNop()

// Init replaces the root logger. Debug builds a human readable development
// logger, otherwise a production JSON logger at info level is used.
func Init(debug bool) error {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	root = l
	return nil
}

// Named returns a sugared child logger tagged with the component name.
func Named(name string) *zap.SugaredLogger {
	return root.Named(name).Sugar()
}

// Sync flushes buffered log entries.
func Sync() {
	_ = root.Sync()
}
