//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/bangazon/bangazon-api/internal/domain/categories"
	"github.com/bangazon/bangazon-api/internal/domain/customers"
	"github.com/bangazon/bangazon-api/internal/domain/orders"
	"github.com/bangazon/bangazon-api/internal/domain/paymenttypes"

	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *categories.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*categories.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*categories.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, categoryID uint) (*categories.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*categories.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByLabel(ctx context.Context, label string) (*categories.Category, error) {
	args := m.Called(ctx, label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*categories.Category), args.Error(1)
}

// MockPaymentTypeRepository is a mock implementation of PaymentTypeRepository
type MockPaymentTypeRepository struct {
	mock.Mock
}

func (m *MockPaymentTypeRepository) Create(ctx context.Context, paymentType *paymenttypes.PaymentType) error {
	args := m.Called(ctx, paymentType)
	return args.Error(0)
}

func (m *MockPaymentTypeRepository) List(ctx context.Context) ([]*paymenttypes.PaymentType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*paymenttypes.PaymentType), args.Error(1)
}

func (m *MockPaymentTypeRepository) GetByID(ctx context.Context, paymentTypeID uint) (*paymenttypes.PaymentType, error) {
	args := m.Called(ctx, paymentTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymenttypes.PaymentType), args.Error(1)
}

func (m *MockPaymentTypeRepository) GetByLabel(ctx context.Context, label string) (*paymenttypes.PaymentType, error) {
	args := m.Called(ctx, label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymenttypes.PaymentType), args.Error(1)
}

func (m *MockPaymentTypeRepository) UpdateByID(ctx context.Context, paymentType *paymenttypes.PaymentType) error {
	args := m.Called(ctx, paymentType)
	return args.Error(0)
}

func (m *MockPaymentTypeRepository) DeleteByID(ctx context.Context, paymentTypeID uint) error {
	args := m.Called(ctx, paymentTypeID)
	return args.Error(0)
}

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *customers.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, customerID uint) (*customers.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customers.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByUsername(ctx context.Context, username string) (*customers.Customer, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customers.Customer), args.Error(1)
}

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *orders.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) List(ctx context.Context, query *orders.OrderQuery) ([]*orders.Order, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*orders.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, orderID uint) (*orders.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateByID(ctx context.Context, order *orders.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
