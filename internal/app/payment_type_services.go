package app

import (
	"context"
	"fmt"

	"github.com/bangazon/bangazon-api/internal/domain/paymenttypes"
	"github.com/bangazon/bangazon-api/internal/pkg/logger"
	"github.com/bangazon/bangazon-api/internal/pkg/metrics"
)

const paymentTypeEntity = "payment_type"

// paymentTypeService implements the PaymentTypeService interface for managing payment types
type paymentTypeService struct {
	paymentTypeRepo paymenttypes.PaymentTypeRepository
	logger          logger.Logger
}

// NewPaymentTypeService creates a new paymentTypeService instance
func NewPaymentTypeService(paymentTypeRepo paymenttypes.PaymentTypeRepository, logger logger.Logger) (paymenttypes.PaymentTypeService, error) {
	return &paymentTypeService{
		paymentTypeRepo: paymentTypeRepo,
		logger:          logger,
	}, nil
}

// List retrieves all payment types.
func (s *paymentTypeService) List(ctx context.Context) ([]*paymenttypes.PaymentType, error) {
	paymentTypeList, err := s.paymentTypeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return paymentTypeList, nil
}

// GetByID retrieves a payment type by its ID.
func (s *paymentTypeService) GetByID(ctx context.Context, paymentTypeID uint) (*paymenttypes.PaymentType, error) {
	paymentType, err := s.paymentTypeRepo.GetByID(ctx, paymentTypeID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return paymentType, nil
}

// Create persists a new payment type.
func (s *paymentTypeService) Create(ctx context.Context, label string) (*paymenttypes.PaymentType, error) {
	paymentType := &paymenttypes.PaymentType{Label: label}
	if err := s.paymentTypeRepo.Create(ctx, paymentType); err != nil {
		return nil, fmt.Errorf("failed to create payment type: %w", err)
	}

	metrics.RecordWrite(paymentTypeEntity, metrics.OperationCreate)
	s.logger.With("payment_type_id", paymentType.ID, "label", paymentType.Label).Info("payment type created")
	return paymentType, nil
}

// UpdateByID looks up a payment type and overwrites its label.
func (s *paymentTypeService) UpdateByID(ctx context.Context, paymentTypeID uint, label string) error {
	paymentType, err := s.GetByID(ctx, paymentTypeID)
	if err != nil {
		return fmt.Errorf("failed to get payment type: %w", err)
	}

	paymentType.Label = label
	if err := s.paymentTypeRepo.UpdateByID(ctx, paymentType); err != nil {
		return fmt.Errorf("failed to update payment type: %w", err)
	}

	metrics.RecordWrite(paymentTypeEntity, metrics.OperationUpdate)
	s.logger.With("payment_type_id", paymentTypeID).Info("payment type updated")
	return nil
}

// DeleteByID looks up a payment type and deletes it.
func (s *paymentTypeService) DeleteByID(ctx context.Context, paymentTypeID uint) error {
	if _, err := s.GetByID(ctx, paymentTypeID); err != nil {
		return fmt.Errorf("failed to get payment type: %w", err)
	}

	if err := s.paymentTypeRepo.DeleteByID(ctx, paymentTypeID); err != nil {
		return fmt.Errorf("failed to delete payment type: %w", err)
	}

	metrics.RecordWrite(paymentTypeEntity, metrics.OperationDelete)
	s.logger.With("payment_type_id", paymentTypeID).Info("payment type deleted")
	return nil
}
