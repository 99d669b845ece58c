package logging

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerKeyType string

const loggerKey = loggerKeyType("logger")

// New builds the console logger used by the binaries. Entries at warn
// level and above go to stderr, the rest to stdout. The debug level turns
// on the development encoder with caller information.
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return newLogger(lvl, zapcore.Lock(os.Stdout), zapcore.Lock(os.Stderr)), nil
}

func newLogger(lvl zapcore.Level, out, errOut zapcore.WriteSyncer) *zap.Logger {
	devmode := lvl == zapcore.DebugLevel
	encoderConfig := zap.NewProductionEncoderConfig()
	if devmode {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	lowFilter := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= lvl && l < zapcore.WarnLevel
	})
	highFilter := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= lvl && l >= zapcore.WarnLevel
	})
	core := zapcore.NewTee(
		zapcore.NewCore(encoder, out, lowFilter),
		zapcore.NewCore(encoder, errOut, highFilter),
	)
	var opts []zap.Option
	if devmode {
		opts = append(opts, zap.AddCaller())
	}
	return zap.New(core, opts...)
}

// From returns the logger of the current context, if no logger is available, returns the global logger
func From(ctx context.Context) *zap.Logger {
	l, ok := ctx.Value(loggerKey).(*zap.Logger)
	if !ok {
		return zap.L()
	}
	return l
}

func Context(ctx context.Context, logger *zap.Logger) context.Context {
	if logger == nil {
		logger = zap.L()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

func FromWithFields(ctx context.Context, fields ...zapcore.Field) (*zap.Logger, context.Context) {
	logger := From(ctx).With(fields...)
	return logger, Context(ctx, logger)
}
