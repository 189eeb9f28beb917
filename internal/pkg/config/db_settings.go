package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Database type constants
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// DatabaseSettings holds the database connection settings.
// Name is the postgres database to create and connect to; sqlite ignores it.
type DatabaseSettings struct {
	Type         string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	DSN          string `mapstructure:"dsn" validate:"required_if=Type postgres"`
	Name         string `mapstructure:"name" validate:"required_if=Type postgres"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns int    `mapstructure:"max_idle_conns" validate:"gte=0"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}
	return nil
}
