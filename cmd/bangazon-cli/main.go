// Package main is the entry point for the bangazon-cli application.
// It registers the database maintenance sub-commands (migrate, seed)
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/bangazon/bangazon-api/cmd/bangazon-cli/internal/commands"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	// A missing .env is fine; the variables may come from the environment
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "bangazon-cli",
		Short: "Database maintenance tool for the Bangazon API",
		Long: `bangazon-cli manages the database behind the Bangazon API.

The database is read from the same YAML config as the REST server
(--config, or the CONFIG_PATH environment variable). Every setting can be
overridden with BANGAZON_* environment variables, e.g. BANGAZON_DATABASE_DSN.`,
		SilenceUsage: true,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitMigrateCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize migrate commands: %w", err)
	}

	if err := commands.InitSeedCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize seed commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
