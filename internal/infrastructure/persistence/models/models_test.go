//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/bangazon/bangazon-api/internal/domain/categories"
	"github.com/bangazon/bangazon-api/internal/domain/customers"
	"github.com/bangazon/bangazon-api/internal/domain/orders"
	"github.com/bangazon/bangazon-api/internal/domain/paymenttypes"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryModel_Conversion(t *testing.T) {
	model := &CategoryModel{ID: 3, Label: "Electronics"}

	category := model.ToDomain()
	assert.Equal(t, &categories.Category{ID: 3, Label: "Electronics"}, category)

	back := &CategoryModel{}
	back.FromDomain(category)
	assert.Equal(t, model, back)
}

func TestPaymentTypeModel_Conversion(t *testing.T) {
	model := &PaymentTypeModel{ID: 9, Label: "Credit Card"}

	paymentType := model.ToDomain()
	assert.Equal(t, &paymenttypes.PaymentType{ID: 9, Label: "Credit Card"}, paymentType)

	back := &PaymentTypeModel{}
	back.FromDomain(paymentType)
	assert.Equal(t, model, back)
}

func TestCustomerModel_Conversion(t *testing.T) {
	joined := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)
	customer := &customers.Customer{
		ID:         5,
		Username:   "meg",
		FirstName:  "Meg",
		LastName:   "Ducharme",
		Email:      "meg@example.com",
		IsActive:   true,
		DateJoined: joined,
	}

	model := &CustomerModel{}
	model.FromDomain(customer)
	assert.Equal(t, "meg", model.Username)
	assert.False(t, model.IsStaff)

	assert.Equal(t, customer, model.ToDomain())
}

func TestOrderModel_ToDomain_WithAssociations(t *testing.T) {
	model := &OrderModel{
		ID:            11,
		CustomerID:    5,
		Customer:      &CustomerModel{ID: 5, Username: "meg"},
		PaymentTypeID: 2,
		PaymentType:   &PaymentTypeModel{ID: 2, Label: "Cash"},
		Total:         decimal.RequireFromString("12.50"),
		NeedsShipping: true,
		IsCompleted:   false,
		DatePlaced:    time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
	}

	order := model.ToDomain()

	assert.Equal(t, uint(11), order.ID)
	require.NotNil(t, order.Customer)
	assert.Equal(t, "meg", order.Customer.Username)
	require.NotNil(t, order.PaymentType)
	assert.Equal(t, "Cash", order.PaymentType.Label)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("12.5")))
	assert.True(t, order.NeedsShipping)
	assert.Equal(t, model.DatePlaced, order.DatePlaced)
}

func TestOrderModel_FromDomain_DropsAssociations(t *testing.T) {
	order := &orders.Order{
		ID:            11,
		CustomerID:    5,
		Customer:      &customers.Customer{ID: 5},
		PaymentTypeID: 2,
		PaymentType:   &paymenttypes.PaymentType{ID: 2},
		Total:         decimal.RequireFromString("99.99"),
		IsCompleted:   true,
		DatePlaced:    time.Date(2024, 2, 29, 15, 0, 0, 0, time.UTC),
	}

	model := &OrderModel{}
	model.FromDomain(order)

	assert.Nil(t, model.Customer)
	assert.Nil(t, model.PaymentType)
	assert.Equal(t, uint(5), model.CustomerID)
	assert.Equal(t, uint(2), model.PaymentTypeID)
	assert.True(t, model.IsCompleted)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), model.DatePlaced)
}

func TestAll_ListsParentsBeforeOrders(t *testing.T) {
	all := All()
	require.Len(t, all, 4)
	_, last := all[len(all)-1].(*OrderModel)
	assert.True(t, last)
}
