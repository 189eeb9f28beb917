//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/bangazon/bangazon-api/internal/domain/categories"
	"github.com/bangazon/bangazon-api/internal/domain/orders"
	"github.com/bangazon/bangazon-api/internal/domain/paymenttypes"

	"github.com/stretchr/testify/mock"
)

// MockCategoryService is a mock implementation of CategoryService
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) List(ctx context.Context) ([]*categories.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*categories.Category), args.Error(1)
}

func (m *MockCategoryService) GetByID(ctx context.Context, categoryID uint) (*categories.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*categories.Category), args.Error(1)
}

// MockPaymentTypeService is a mock implementation of PaymentTypeService
type MockPaymentTypeService struct {
	mock.Mock
}

func (m *MockPaymentTypeService) List(ctx context.Context) ([]*paymenttypes.PaymentType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*paymenttypes.PaymentType), args.Error(1)
}

func (m *MockPaymentTypeService) GetByID(ctx context.Context, paymentTypeID uint) (*paymenttypes.PaymentType, error) {
	args := m.Called(ctx, paymentTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymenttypes.PaymentType), args.Error(1)
}

func (m *MockPaymentTypeService) Create(ctx context.Context, label string) (*paymenttypes.PaymentType, error) {
	args := m.Called(ctx, label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymenttypes.PaymentType), args.Error(1)
}

func (m *MockPaymentTypeService) UpdateByID(ctx context.Context, paymentTypeID uint, label string) error {
	args := m.Called(ctx, paymentTypeID, label)
	return args.Error(0)
}

func (m *MockPaymentTypeService) DeleteByID(ctx context.Context, paymentTypeID uint) error {
	args := m.Called(ctx, paymentTypeID)
	return args.Error(0)
}

// MockOrderService is a mock implementation of OrderService
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) List(ctx context.Context, query *orders.OrderQuery) ([]*orders.Order, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*orders.Order), args.Error(1)
}

func (m *MockOrderService) GetByID(ctx context.Context, orderID uint) (*orders.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

func (m *MockOrderService) Create(ctx context.Context, fields orders.OrderFields) (*orders.Order, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

func (m *MockOrderService) UpdateByID(ctx context.Context, orderID uint, fields orders.OrderFields) error {
	args := m.Called(ctx, orderID, fields)
	return args.Error(0)
}
