package config

// Log levels accepted by LoggerSettings.LogLevel; critical maps to error
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Log sinks accepted by LoggerSettings.LogType
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Line encodings accepted by LoggerSettings.Encoding. When unset the console
// sink writes human readable lines and the file sink writes JSON.
const (
	LogEncodingConsole = "console"
	LogEncodingJSON    = "json"
)

// Rotation bounds of the file sink
const (
	MaxLogFileSizeMB  = 100
	MaxLogFileBackups = 10
	MaxLogFileAgeDays = 365
)
