package logger

import (
	"os"

	"github.com/bangazon/bangazon-api/internal/pkg/config"
	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

func newZapLogger(core zapcore.Core) *zapLogger {
	return &zapLogger{sugar: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()}
}

// NewWithCore wraps an existing zap core, e.g. an observer in tests.
func NewWithCore(core zapcore.Core) Logger {
	return newZapLogger(core)
}

// NewConsoleLogger creates a logger writing to stdout, human readable unless encoding is json.
func NewConsoleLogger(level string, encoding string) Logger {
	return newZapLogger(zapcore.NewCore(newEncoder(encoding, config.LogEncodingConsole), zapcore.Lock(os.Stdout), parseLevel(level)))
}

// NewFileLogger creates a logger writing to a rotated file, JSON lines unless encoding is console.
func NewFileLogger(level string, encoding string, filePath string, maxSize int, maxBackups int, maxAge int, compress bool) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   compress,
	}

	return newZapLogger(zapcore.NewCore(newEncoder(encoding, config.LogEncodingJSON), zapcore.AddSync(writer), parseLevel(level)))
}

func newEncoder(encoding string, fallback string) zapcore.Encoder {
	if encoding == "" {
		encoding = fallback
	}
	if encoding == config.LogEncodingJSON {
		return zapcore.NewJSONEncoder(encoderConfig())
	}
	return zapcore.NewConsoleEncoder(encoderConfig())
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}

// Info logs an informational message.
func (l *zapLogger) Info(args ...interface{}) {
	l.sugar.Info(args...)
}

// Warn logs a warning message.
func (l *zapLogger) Warn(args ...interface{}) {
	l.sugar.Warn(args...)
}

// Error logs an error message.
func (l *zapLogger) Error(args ...interface{}) {
	l.sugar.Error(args...)
}

// Fatal logs a fatal message and exits.
func (l *zapLogger) Fatal(args ...interface{}) {
	l.sugar.Fatal(args...)
}

// Panic logs a panic message and panics.
func (l *zapLogger) Panic(args ...interface{}) {
	l.sugar.Panic(args...)
}

// With returns a child logger carrying the given fields.
func (l *zapLogger) With(keysAndValues ...interface{}) Logger {
	return &zapLogger{sugar: l.sugar.With(keysAndValues...)}
}

// Zap returns the underlying structured logger.
func (l *zapLogger) Zap() *zap.Logger {
	return l.sugar.Desugar()
}
