//go:build integration
// +build integration

package persistence

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bangazon/bangazon-api/internal/domain/categories"
	"github.com/bangazon/bangazon-api/internal/domain/customers"
	"github.com/bangazon/bangazon-api/internal/domain/orders"
	"github.com/bangazon/bangazon-api/internal/domain/paymenttypes"
	"github.com/bangazon/bangazon-api/internal/pkg/config"
	"github.com/bangazon/bangazon-api/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Test constants
const (
	TestLabelCreditCard = "Credit Card"
	TestLabelCash       = "Cash"
	TestLabelToys       = "Toys"
	TestTotal           = "42.50"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB              *gorm.DB
	CategoryRepo    categories.CategoryRepository
	PaymentTypeRepo paymenttypes.PaymentTypeRepository
	CustomerRepo    customers.CustomerRepository
	OrderRepo       orders.OrderRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)

	categoryRepo, err := NewGormCategoryRepository(db, logger)
	require.NoError(t, err, "Failed to create category repository")

	paymentTypeRepo, err := NewGormPaymentTypeRepository(db, logger)
	require.NoError(t, err, "Failed to create payment type repository")

	customerRepo, err := NewGormCustomerRepository(db, logger)
	require.NoError(t, err, "Failed to create customer repository")

	orderRepo, err := NewGormOrderRepository(db, logger)
	require.NoError(t, err, "Failed to create order repository")

	return &TestContext{
		DB:              db,
		CategoryRepo:    categoryRepo,
		PaymentTypeRepo: paymentTypeRepo,
		CustomerRepo:    customerRepo,
		OrderRepo:       orderRepo,
	}
}

// CreateTestCustomer persists a customer with a unique username
func CreateTestCustomer(t *testing.T, ctx *TestContext) *customers.Customer {
	t.Helper()

	customer := &customers.Customer{
		Username:   "user_" + uuid.NewString()[:8],
		FirstName:  "Test",
		LastName:   "Customer",
		Email:      "test@example.com",
		IsActive:   true,
		DateJoined: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, ctx.CustomerRepo.Create(context.Background(), customer))
	return customer
}

// CreateTestPaymentType persists a payment type with the given label
func CreateTestPaymentType(t *testing.T, ctx *TestContext, label string) *paymenttypes.PaymentType {
	t.Helper()

	paymentType := &paymenttypes.PaymentType{Label: label}
	require.NoError(t, ctx.PaymentTypeRepo.Create(context.Background(), paymentType))
	return paymentType
}

// NewTestOrder builds an unsaved order for the given references
func NewTestOrder(customerID, paymentTypeID uint, completed bool) *orders.Order {
	return &orders.Order{
		CustomerID:    customerID,
		PaymentTypeID: paymentTypeID,
		Total:         decimal.RequireFromString(TestTotal),
		NeedsShipping: true,
		IsCompleted:   completed,
		DatePlaced:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

// CreateTestOrder persists an order for the given references
func CreateTestOrder(t *testing.T, ctx *TestContext, customerID, paymentTypeID uint, completed bool) *orders.Order {
	t.Helper()

	order := NewTestOrder(customerID, paymentTypeID, completed)
	require.NoError(t, ctx.OrderRepo.Create(context.Background(), order))
	return order
}
