package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// LoggerSettings selects the log sink, its level and encoding; the rotation
// fields apply to the file sink only
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=debug info warning error critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	Encoding   string `mapstructure:"encoding" validate:"omitempty,oneof=console json"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// Validate checks the common fields, then the rotation of a file sink
func (s *LoggerSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}
	if s.LogType != LogTypeFile {
		return nil
	}
	return s.validateRotation()
}

func (s *LoggerSettings) validateRotation() error {
	if s.FilePath == "" {
		return fmt.Errorf("file path is required for file logger")
	}
	if err := inRange("max size (MB)", s.MaxSize, MaxLogFileSizeMB); err != nil {
		return err
	}
	if err := inRange("max backups", s.MaxBackups, MaxLogFileBackups); err != nil {
		return err
	}
	return inRange("max age (days)", s.MaxAge, MaxLogFileAgeDays)
}

func inRange(name string, value, max int) error {
	if value < 1 || value > max {
		return fmt.Errorf("%s must be between 1 and %d, got %d", name, max, value)
	}
	return nil
}
