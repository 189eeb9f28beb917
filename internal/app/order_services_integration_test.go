//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/bangazon/bangazon-api/internal/domain/orders"
	"github.com/bangazon/bangazon-api/internal/infrastructure/persistence"
	"github.com/bangazon/bangazon-api/internal/infrastructure/persistence/models"
	"github.com/bangazon/bangazon-api/internal/pkg/apperrors"
	"github.com/bangazon/bangazon-api/internal/pkg/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_CreateAndRetrieve_Success(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	customer := persistence.CreateTestCustomer(t, services.DBContext)
	paymentType := persistence.CreateTestPaymentType(t, services.DBContext, persistence.TestLabelCreditCard)

	fields := orders.OrderFields{
		CustomerID:    customer.ID,
		PaymentTypeID: paymentType.ID,
		Total:         decimal.RequireFromString("120.05"),
		NeedsShipping: true,
		IsCompleted:   true,
		DatePlaced:    time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC),
	}

	created, err := services.OrderService.Create(ctx, fields)
	require.NoError(t, err)
	require.NotNil(t, created.Customer)
	require.NotNil(t, created.PaymentType)

	fetched, err := services.OrderService.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, fields.CustomerID, fetched.CustomerID)
	assert.Equal(t, fields.PaymentTypeID, fetched.PaymentTypeID)
	assert.True(t, fields.Total.Equal(fetched.Total))
	assert.Equal(t, fields.NeedsShipping, fetched.NeedsShipping)
	assert.Equal(t, fields.IsCompleted, fetched.IsCompleted)
	assert.Equal(t, fields.DatePlaced, fetched.DatePlaced)
}

func TestOrderService_Create_UnknownCustomer_PersistsNothing(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	paymentType := persistence.CreateTestPaymentType(t, services.DBContext, persistence.TestLabelCash)

	_, err := services.OrderService.Create(context.Background(), orders.OrderFields{
		CustomerID:    404,
		PaymentTypeID: paymentType.ID,
		Total:         decimal.NewFromInt(1),
		DatePlaced:    time.Now(),
	})
	require.True(t, apperrors.IsReferenceNotFound(err))

	var count int64
	require.NoError(t, services.DBContext.DB.Model(&models.OrderModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestOrderService_UpdateByID_FullReplace(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	customer := persistence.CreateTestCustomer(t, services.DBContext)
	paymentType := persistence.CreateTestPaymentType(t, services.DBContext, persistence.TestLabelCash)
	order := persistence.CreateTestOrder(t, services.DBContext, customer.ID, paymentType.ID, false)

	fields := orders.OrderFields{
		CustomerID:    customer.ID,
		PaymentTypeID: paymentType.ID,
		Total:         decimal.RequireFromString("5.00"),
		NeedsShipping: false,
		IsCompleted:   true,
		DatePlaced:    time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, services.OrderService.UpdateByID(ctx, order.ID, fields))

	completed, err := services.OrderService.List(ctx, orders.NewOrderQuery().ByCompletion(true))
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, order.ID, completed[0].ID)
	assert.False(t, completed[0].NeedsShipping)
}

func TestPaymentTypeService_RoundTrip(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	created, err := services.PaymentTypeService.Create(ctx, persistence.TestLabelCash)
	require.NoError(t, err)

	fetched, err := services.PaymentTypeService.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, persistence.TestLabelCash, fetched.Label)

	require.NoError(t, services.PaymentTypeService.UpdateByID(ctx, created.ID, persistence.TestLabelCreditCard))
	fetched, err = services.PaymentTypeService.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, persistence.TestLabelCreditCard, fetched.Label)

	require.NoError(t, services.PaymentTypeService.DeleteByID(ctx, created.ID))
	_, err = services.PaymentTypeService.GetByID(ctx, created.ID)
	assert.True(t, apperrors.IsNotFound(err))
}
