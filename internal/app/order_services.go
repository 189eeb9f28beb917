package app

import (
	"context"
	"fmt"

	"github.com/bangazon/bangazon-api/internal/domain/customers"
	"github.com/bangazon/bangazon-api/internal/domain/orders"
	"github.com/bangazon/bangazon-api/internal/domain/paymenttypes"
	"github.com/bangazon/bangazon-api/internal/pkg/apperrors"
	"github.com/bangazon/bangazon-api/internal/pkg/logger"
	"github.com/bangazon/bangazon-api/internal/pkg/metrics"
)

const orderEntity = "order"

// orderService implements the OrderService interface for managing orders
type orderService struct {
	orderRepo       orders.OrderRepository
	customerRepo    customers.CustomerRepository
	paymentTypeRepo paymenttypes.PaymentTypeRepository
	logger          logger.Logger
}

// NewOrderService creates a new orderService instance
func NewOrderService(
	orderRepo orders.OrderRepository,
	customerRepo customers.CustomerRepository,
	paymentTypeRepo paymenttypes.PaymentTypeRepository,
	logger logger.Logger,
) (orders.OrderService, error) {
	return &orderService{
		orderRepo:       orderRepo,
		customerRepo:    customerRepo,
		paymentTypeRepo: paymentTypeRepo,
		logger:          logger,
	}, nil
}

// List retrieves all orders matching the query.
func (s *orderService) List(ctx context.Context, query *orders.OrderQuery) ([]*orders.Order, error) {
	orderList, err := s.orderRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return orderList, nil
}

// GetByID retrieves an order by its ID.
func (s *orderService) GetByID(ctx context.Context, orderID uint) (*orders.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return order, nil
}

// Create resolves both references, then persists the order and reloads it with its references.
func (s *orderService) Create(ctx context.Context, fields orders.OrderFields) (*orders.Order, error) {
	if err := s.resolveReferences(ctx, fields); err != nil {
		return nil, err
	}

	order := &orders.Order{}
	fields.Apply(order)
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	metrics.RecordWrite(orderEntity, metrics.OperationCreate)
	s.logger.With(
		"order_id", order.ID,
		"customer_id", order.CustomerID,
		"payment_type_id", order.PaymentTypeID,
	).Info("order created")

	created, err := s.orderRepo.GetByID(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload order: %w", err)
	}
	return created, nil
}

// UpdateByID looks up an order, re-resolves both references and overwrites every field.
func (s *orderService) UpdateByID(ctx context.Context, orderID uint, fields orders.OrderFields) error {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to get order: %w", err)
	}

	if err := s.resolveReferences(ctx, fields); err != nil {
		return err
	}

	fields.Apply(order)
	if err := s.orderRepo.UpdateByID(ctx, order); err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	metrics.RecordWrite(orderEntity, metrics.OperationUpdate)
	s.logger.With("order_id", orderID).Info("order updated")
	return nil
}

// resolveReferences fails with ReferenceNotFound when the customer or payment type does not exist
func (s *orderService) resolveReferences(ctx context.Context, fields orders.OrderFields) error {
	if _, err := s.customerRepo.GetByID(ctx, fields.CustomerID); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.ReferenceNotFound("customer with id %d does not exist", fields.CustomerID).Wrap(err)
		}
		return fmt.Errorf("failed to resolve customer: %w", err)
	}

	if _, err := s.paymentTypeRepo.GetByID(ctx, fields.PaymentTypeID); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.ReferenceNotFound("payment type with id %d does not exist", fields.PaymentTypeID).Wrap(err)
		}
		return fmt.Errorf("failed to resolve payment type: %w", err)
	}

	return nil
}
