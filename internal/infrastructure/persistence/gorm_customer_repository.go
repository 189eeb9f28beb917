package persistence

import (
	"context"
	"fmt"

	"github.com/bangazon/bangazon-api/internal/domain/customers"
	"github.com/bangazon/bangazon-api/internal/infrastructure/persistence/models"
	"github.com/bangazon/bangazon-api/internal/pkg/apperrors"
	"github.com/bangazon/bangazon-api/internal/pkg/logger"

	"gorm.io/gorm"
)

const customerNotFoundMessage = "User matching query does not exist."

type gormCustomerRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCustomerRepository creates a new GORM-based CustomerRepository implementation
func NewGormCustomerRepository(db *gorm.DB, logger logger.Logger) (customers.CustomerRepository, error) {
	return &gormCustomerRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCustomerRepository) Create(ctx context.Context, customer *customers.Customer) error {
	if err := customer.Validate(); err != nil {
		return apperrors.Invalid("%v", err).Wrap(err)
	}

	model := &models.CustomerModel{}
	model.FromDomain(customer)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	customer.ID = model.ID

	r.logger.Info("Created customer with id ", customer.ID)
	return nil
}

func (r *gormCustomerRepository) GetByID(ctx context.Context, customerID uint) (*customers.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).Where("id = ?", customerID).First(&model).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, apperrors.NotFound(customerNotFoundMessage).Wrap(err)
		}
		return nil, fmt.Errorf("failed to fetch customer: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCustomerRepository) GetByUsername(ctx context.Context, username string) (*customers.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&model).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, apperrors.NotFound(customerNotFoundMessage).Wrap(err)
		}
		return nil, fmt.Errorf("failed to fetch customer: %w", err)
	}
	return model.ToDomain(), nil
}
