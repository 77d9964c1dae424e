// Package logging builds the zap logger used across skillstack.
//
// One-shot CLI commands log to stderr. The TUI owns the terminal, so its
// logger writes to a file instead; anything printed to stderr mid-session
// would corrupt the rendered view.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logging configuration.
type Config struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string

	// Format is "json" or "console".
	Format string

	// File is the sink path; empty writes to stderr.
	File string

	// Fields are constant fields attached to every entry.
	Fields map[string]string
}

// New creates a logger from config. The returned close function flushes and
// releases the sink; call it on shutdown.
func New(cfg Config) (*zap.Logger, func(), error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	sink, closeSink, err := openSink(cfg.File)
	if err != nil {
		return nil, nil, err
	}

	core := zapcore.NewCore(newEncoder(cfg.Format), sink, level)
	logger := zap.New(core)

	if len(cfg.Fields) > 0 {
		fields := make([]zap.Field, 0, len(cfg.Fields))
		for k, v := range cfg.Fields {
			fields = append(fields, zap.String(k, v))
		}
		logger = logger.With(fields...)
	}

	closer := func() {
		_ = logger.Sync()
		closeSink()
	}
	return logger, closer, nil
}

// newEncoder creates a JSON or console encoder with ISO8601 timestamps.
func newEncoder(format string) zapcore.Encoder {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == "console" {
		return zapcore.NewConsoleEncoder(encoderCfg)
	}
	return zapcore.NewJSONEncoder(encoderCfg)
}

// openSink opens the log destination. File sinks get their directory
// created and are opened in append mode.
func openSink(path string) (zapcore.WriteSyncer, func(), error) {
	if path == "" {
		return zapcore.Lock(os.Stderr), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return zapcore.AddSync(f), func() { _ = f.Close() }, nil
}
