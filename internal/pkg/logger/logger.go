package logger

import "go.uber.org/zap"

// Logger defines the logging interface
type Logger interface {
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
	// With returns a child logger attaching the given key/value pairs to every entry
	With(keysAndValues ...interface{}) Logger
}

// ZapProvider is implemented by loggers that can expose their zap core,
// e.g. for HTTP access logging middleware.
type ZapProvider interface {
	Zap() *zap.Logger
}

// ZapFrom returns the zap logger behind l, or a no-op logger when l is not zap backed
func ZapFrom(l Logger) *zap.Logger {
	if p, ok := l.(ZapProvider); ok {
		return p.Zap()
	}
	return zap.NewNop()
}
