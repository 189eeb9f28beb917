package paymenttypes

import (
	"context"
)

// PaymentTypeService defines methods for managing payment types.
type PaymentTypeService interface {
	// List retrieves all payment types.
	List(ctx context.Context) ([]*PaymentType, error)

	// GetByID retrieves a payment type by its unique ID.
	// It returns a NotFound error when the ID does not resolve.
	GetByID(ctx context.Context, paymentTypeID uint) (*PaymentType, error)

	// Create persists a new payment type with the given label and returns it with its assigned ID.
	Create(ctx context.Context, label string) (*PaymentType, error)

	// UpdateByID overwrites the label of an existing payment type.
	UpdateByID(ctx context.Context, paymentTypeID uint, label string) error

	// DeleteByID deletes an existing payment type.
	DeleteByID(ctx context.Context, paymentTypeID uint) error
}

// PaymentTypeRepository defines the interface for PaymentType-related operations
type PaymentTypeRepository interface {
	Create(ctx context.Context, paymentType *PaymentType) error
	List(ctx context.Context) ([]*PaymentType, error)
	GetByID(ctx context.Context, paymentTypeID uint) (*PaymentType, error)
	GetByLabel(ctx context.Context, label string) (*PaymentType, error)
	UpdateByID(ctx context.Context, paymentType *PaymentType) error
	DeleteByID(ctx context.Context, paymentTypeID uint) error
}
