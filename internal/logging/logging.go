// Package logging constructs the application logger.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns the application logger. Production mode emits JSON at info
// level; debug mode switches to console encoding at debug level so TUI
// development output stays readable.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		return cfg.Build()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	// Logs go to stderr so they never interleave with rendered panels.
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// Sync flushes buffered entries. Safe to call on a nil logger and safe
// to call more than once.
func Sync(log *zap.Logger) {
	if log == nil {
		return
	}
	_ = log.Sync()
}
