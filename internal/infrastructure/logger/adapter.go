// Package logger adapts zap to the application's logging port.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"diplomacy-agent/internal/application/port/output"
)

var _ output.LoggerPort = (*ZapLogger)(nil)

type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// New builds a production logger. Debug widens the level; logFile, when
// set, sends output there instead of stderr.
func New(debug bool, logFile string) (*ZapLogger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if logFile != "" {
		cfg.OutputPaths = []string{logFile}
		cfg.ErrorOutputPaths = []string{logFile}
	}

	log, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return &ZapLogger{sugar: log.Sugar()}, nil
}

// NewNop discards everything, for tests.
func NewNop() *ZapLogger {
	return &ZapLogger{sugar: zap.NewNop().Sugar()}
}

func (l *ZapLogger) Debug(msg string, args ...any) { l.sugar.Debugw(msg, args...) }
func (l *ZapLogger) Info(msg string, args ...any)  { l.sugar.Infow(msg, args...) }
func (l *ZapLogger) Warn(msg string, args ...any)  { l.sugar.Warnw(msg, args...) }
func (l *ZapLogger) Error(msg string, args ...any) { l.sugar.Errorw(msg, args...) }

func (l *ZapLogger) WithField(key string, value any) output.LoggerPort {
	return &ZapLogger{sugar: l.sugar.With(key, value)}
}

func (l *ZapLogger) WithFields(fields map[string]any) output.LoggerPort {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &ZapLogger{sugar: l.sugar.With(args...)}
}

func (l *ZapLogger) Close() error {
	// Sync on stderr fails on some platforms; callers treat it as best
	// effort.
	return l.sugar.Sync()
}
