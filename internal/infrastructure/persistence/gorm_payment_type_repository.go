package persistence

import (
	"context"
	"fmt"

	"github.com/bangazon/bangazon-api/internal/domain/paymenttypes"
	"github.com/bangazon/bangazon-api/internal/infrastructure/persistence/models"
	"github.com/bangazon/bangazon-api/internal/pkg/apperrors"
	"github.com/bangazon/bangazon-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormPaymentTypeRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPaymentTypeRepository creates a new GORM-based PaymentTypeRepository implementation
func NewGormPaymentTypeRepository(db *gorm.DB, logger logger.Logger) (paymenttypes.PaymentTypeRepository, error) {
	return &gormPaymentTypeRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPaymentTypeRepository) Create(ctx context.Context, paymentType *paymenttypes.PaymentType) error {
	if err := paymentType.Validate(); err != nil {
		return apperrors.Invalid("%v", err).Wrap(err)
	}

	model := &models.PaymentTypeModel{}
	model.FromDomain(paymentType)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create payment type: %w", err)
	}
	paymentType.ID = model.ID

	r.logger.Info("Created payment type with id ", paymentType.ID)
	return nil
}

func (r *gormPaymentTypeRepository) List(ctx context.Context) ([]*paymenttypes.PaymentType, error) {
	var modelList []*models.PaymentTypeModel
	if err := r.db.WithContext(ctx).Order("id").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch payment types: %w", err)
	}

	domainList := make([]*paymenttypes.PaymentType, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormPaymentTypeRepository) GetByID(ctx context.Context, paymentTypeID uint) (*paymenttypes.PaymentType, error) {
	var model models.PaymentTypeModel
	if err := r.db.WithContext(ctx).Where("id = ?", paymentTypeID).First(&model).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, apperrors.NotFound(paymenttypes.NotFoundMessage).Wrap(err)
		}
		return nil, fmt.Errorf("failed to fetch payment type: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormPaymentTypeRepository) GetByLabel(ctx context.Context, label string) (*paymenttypes.PaymentType, error) {
	var model models.PaymentTypeModel
	if err := r.db.WithContext(ctx).Where("label = ?", label).First(&model).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, apperrors.NotFound(paymenttypes.NotFoundMessage).Wrap(err)
		}
		return nil, fmt.Errorf("failed to fetch payment type: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormPaymentTypeRepository) UpdateByID(ctx context.Context, paymentType *paymenttypes.PaymentType) error {
	if err := paymentType.Validate(); err != nil {
		return apperrors.Invalid("%v", err).Wrap(err)
	}

	model := &models.PaymentTypeModel{}
	model.FromDomain(paymentType)

	result := r.db.WithContext(ctx).
		Model(&models.PaymentTypeModel{ID: paymentType.ID}).
		Select("label").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update payment type: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound(paymenttypes.NotFoundMessage)
	}

	r.logger.Info("Updated payment type with id ", paymentType.ID)
	return nil
}

func (r *gormPaymentTypeRepository) DeleteByID(ctx context.Context, paymentTypeID uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", paymentTypeID).Delete(&models.PaymentTypeModel{})
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return apperrors.Invalid("payment type with id %d is referenced by existing orders", paymentTypeID).Wrap(result.Error)
		}
		return fmt.Errorf("failed to delete payment type: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound(paymenttypes.NotFoundMessage)
	}

	r.logger.Info("Deleted payment type with id ", paymentTypeID)
	return nil
}
