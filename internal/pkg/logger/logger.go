package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines the interface for logging messages.
type Logger interface {
	Error(msg string, err error)
	Warn(msg string)
	Info(msg string)
	Debug(msg string)
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// New creates a Logger backed by zap's console encoder at the given level.
// An unknown level falls back to info.
func New(level string) Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		// Build only fails on invalid config; fall back to a no-op logger.
		return Nop()
	}
	return &zapLogger{sugar: l.Sugar()}
}

// Nop returns a Logger that discards everything. Used in tests.
func Nop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func (l *zapLogger) Error(msg string, err error) {
	if err != nil {
		l.sugar.Errorw(msg, "error", err)
		return
	}
	l.sugar.Error(msg)
}

func (l *zapLogger) Warn(msg string) {
	l.sugar.Warn(msg)
}

func (l *zapLogger) Info(msg string) {
	l.sugar.Info(msg)
}

func (l *zapLogger) Debug(msg string) {
	l.sugar.Debug(msg)
}
