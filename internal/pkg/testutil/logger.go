package testutil

import (
	"testing"

	"github.com/bangazon/bangazon-api/internal/pkg/config"
	"github.com/bangazon/bangazon-api/internal/pkg/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// SetupTestLogger initializes the process wide console logger and returns it
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	err := logger.InitLogger(&config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	})
	require.NoError(t, err)

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}

// SetupObservedLogger returns a logger whose entries are captured in memory,
// for asserting on what a component logged
func SetupObservedLogger(t *testing.T) (logger.Logger, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.InfoLevel)
	return logger.NewWithCore(core), logs
}
