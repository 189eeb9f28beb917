package commands

import (
	"fmt"
	"os"

	"github.com/bangazon/bangazon-api/internal/infrastructure/persistence"
	"github.com/bangazon/bangazon-api/internal/pkg/config"
	"github.com/bangazon/bangazon-api/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// DefaultConfigPath is used when neither --config nor CONFIG_PATH is set
const DefaultConfigPath = "./configs/rest-app.yaml"

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// configPath resolves the config file from the --config flag, then CONFIG_PATH
func configPath(cmd *cobra.Command) string {
	if path, err := cmd.Flags().GetString("config"); err == nil && path != "" {
		return path
	}
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return DefaultConfigPath
}

// openDatabase loads the config and connects to its database
func openDatabase(cmd *cobra.Command) (*gorm.DB, error) {
	restConfig, err := config.InitializeRestConfig(configPath(cmd))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	db, err := persistence.NewDBConnection(restConfig.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	return db, nil
}

func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "Path to the YAML config (defaults to $CONFIG_PATH or "+DefaultConfigPath+")")
}
