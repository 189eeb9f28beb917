package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/bangazon/bangazon-api/internal/domain/categories"
	"github.com/bangazon/bangazon-api/internal/domain/customers"
	"github.com/bangazon/bangazon-api/internal/domain/paymenttypes"
	"github.com/bangazon/bangazon-api/internal/infrastructure/persistence"
	"github.com/bangazon/bangazon-api/internal/pkg/apperrors"
	"github.com/bangazon/bangazon-api/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// Default seed data
var (
	DefaultCategories   = []string{"Electronics", "Books", "Toys", "Home & Garden", "Clothing"}
	DefaultPaymentTypes = []string{"Visa", "MasterCard", "American Express", "PayPal"}
	DemoCustomer        = customers.Customer{
		Username:  "demo",
		FirstName: "Demo",
		LastName:  "Customer",
		Email:     "demo@bangazon.local",
		IsActive:  true,
	}
)

// SeedResult counts the rows inserted by Seeder.Seed
type SeedResult struct {
	Categories   int
	PaymentTypes int
	Customers    int
}

// Seeder inserts default rows that do not exist yet
type Seeder struct {
	CategoryRepo    categories.CategoryRepository
	PaymentTypeRepo paymenttypes.PaymentTypeRepository
	CustomerRepo    customers.CustomerRepository
	Logger          logger.Logger
}

// Seed inserts missing categories and payment types by label and the demo customer by username
func (s *Seeder) Seed(ctx context.Context) (*SeedResult, error) {
	result := &SeedResult{}

	for _, label := range DefaultCategories {
		_, err := s.CategoryRepo.GetByLabel(ctx, label)
		if err == nil {
			continue
		}
		if !apperrors.IsNotFound(err) {
			return nil, fmt.Errorf("failed to look up category %q: %w", label, err)
		}
		if err := s.CategoryRepo.Create(ctx, &categories.Category{Label: label}); err != nil {
			return nil, fmt.Errorf("failed to seed category %q: %w", label, err)
		}
		result.Categories++
	}

	for _, label := range DefaultPaymentTypes {
		_, err := s.PaymentTypeRepo.GetByLabel(ctx, label)
		if err == nil {
			continue
		}
		if !apperrors.IsNotFound(err) {
			return nil, fmt.Errorf("failed to look up payment type %q: %w", label, err)
		}
		if err := s.PaymentTypeRepo.Create(ctx, &paymenttypes.PaymentType{Label: label}); err != nil {
			return nil, fmt.Errorf("failed to seed payment type %q: %w", label, err)
		}
		result.PaymentTypes++
	}

	_, err := s.CustomerRepo.GetByUsername(ctx, DemoCustomer.Username)
	switch {
	case err == nil:
	case apperrors.IsNotFound(err):
		customer := DemoCustomer
		customer.DateJoined = time.Now().UTC()
		if err := s.CustomerRepo.Create(ctx, &customer); err != nil {
			return nil, fmt.Errorf("failed to seed customer %q: %w", customer.Username, err)
		}
		result.Customers++
	default:
		return nil, fmt.Errorf("failed to look up customer %q: %w", DemoCustomer.Username, err)
	}

	s.Logger.Info("Seeded ", result.Categories, " categories, ", result.PaymentTypes, " payment types, ", result.Customers, " customers")
	return result, nil
}

// SeedCommandHandler encapsulates logic for seeding default data via CLI.
type SeedCommandHandler struct {
	logger logger.Logger
}

// NewSeedCommandHandler initializes and returns a SeedCommandHandler instance
func NewSeedCommandHandler() (*SeedCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &SeedCommandHandler{
		logger: loggerInstance,
	}, nil
}

// SeedCmd migrates the configured database and inserts the default rows
func (commandHandler *SeedCommandHandler) SeedCmd(cmd *cobra.Command, _ []string) error {
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

	categoryRepo, err := persistence.NewGormCategoryRepository(db, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create category repository: %w", err)
	}
	paymentTypeRepo, err := persistence.NewGormPaymentTypeRepository(db, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create payment type repository: %w", err)
	}
	customerRepo, err := persistence.NewGormCustomerRepository(db, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create customer repository: %w", err)
	}

	seeder := &Seeder{
		CategoryRepo:    categoryRepo,
		PaymentTypeRepo: paymentTypeRepo,
		CustomerRepo:    customerRepo,
		Logger:          commandHandler.logger,
	}
	_, err = seeder.Seed(cmd.Context())
	return err
}

// InitSeedCommands registers the seed command with the root command
func InitSeedCommands(rootCmd *cobra.Command) error {
	handler, err := NewSeedCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create seed command handler %w", err)
	}

	var seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Insert default categories, payment types and a demo customer",
		Long:  "Insert default categories, payment types and a demo customer. Rows that already exist (matched by label or username) are left untouched.",
		RunE:  handler.SeedCmd,
	}
	addConfigFlag(seedCmd)
	rootCmd.AddCommand(seedCmd)

	return nil
}
