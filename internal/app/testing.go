//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/bangazon/bangazon-api/internal/domain/categories"
	"github.com/bangazon/bangazon-api/internal/domain/orders"
	"github.com/bangazon/bangazon-api/internal/domain/paymenttypes"
	"github.com/bangazon/bangazon-api/internal/infrastructure/persistence"
	"github.com/bangazon/bangazon-api/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	CategoryService    categories.CategoryService
	PaymentTypeService paymenttypes.PaymentTypeService
	OrderService       orders.OrderService

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	categoryService, err := NewCategoryService(dbContext.CategoryRepo, logger)
	require.NoError(t, err, "Failed to create category service")

	paymentTypeService, err := NewPaymentTypeService(dbContext.PaymentTypeRepo, logger)
	require.NoError(t, err, "Failed to create payment type service")

	orderService, err := NewOrderService(dbContext.OrderRepo, dbContext.CustomerRepo, dbContext.PaymentTypeRepo, logger)
	require.NoError(t, err, "Failed to create order service")

	return &TestServices{
		CategoryService:    categoryService,
		PaymentTypeService: paymentTypeService,
		OrderService:       orderService,
		DBContext:          dbContext,
	}
}
