package commands

import (
	"fmt"

	"github.com/bangazon/bangazon-api/internal/infrastructure/persistence"
	"github.com/bangazon/bangazon-api/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// MigrateCommandHandler encapsulates logic for schema migration via CLI.
type MigrateCommandHandler struct {
	logger logger.Logger
}

// NewMigrateCommandHandler initializes and returns a MigrateCommandHandler instance
func NewMigrateCommandHandler() (*MigrateCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &MigrateCommandHandler{
		logger: loggerInstance,
	}, nil
}

// MigrateCmd creates or updates the schema of the configured database
func (commandHandler *MigrateCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) error {
	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			commandHandler.logger.Warn("failed to close database: ", err)
		}
	}()

	if err := persistence.Migrate(db); err != nil {
		return err
	}

	commandHandler.logger.Info("Database migrations completed successfully")
	return nil
}

// InitMigrateCommands registers the migrate command with the root command
func InitMigrateCommands(rootCmd *cobra.Command) error {
	handler, err := NewMigrateCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create migrate command handler %w", err)
	}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE:  handler.MigrateCmd,
	}
	addConfigFlag(migrateCmd)
	rootCmd.AddCommand(migrateCmd)

	return nil
}
