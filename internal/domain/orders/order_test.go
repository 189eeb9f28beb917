//go:build unit
// +build unit

package orders

import (
	"testing"
	"time"

	"github.com/bangazon/bangazon-api/internal/domain/customers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_Validate(t *testing.T) {
	placed := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		order     Order
		shouldErr bool
	}{
		{"valid", Order{CustomerID: 1, PaymentTypeID: 2, Total: decimal.RequireFromString("25.50"), DatePlaced: placed}, false},
		{"missing customer", Order{PaymentTypeID: 2, Total: decimal.Zero, DatePlaced: placed}, true},
		{"missing payment type", Order{CustomerID: 1, Total: decimal.Zero, DatePlaced: placed}, true},
		{"missing date", Order{CustomerID: 1, PaymentTypeID: 2, Total: decimal.Zero}, true},
		{"total too precise", Order{CustomerID: 1, PaymentTypeID: 2, Total: decimal.RequireFromString("1.005"), DatePlaced: placed}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.order.Validate()
			if tt.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestOrderFields_Apply(t *testing.T) {
	order := &Order{
		ID:         4,
		CustomerID: 1,
		Customer:   &customers.Customer{ID: 1, Username: "old"},
		Total:      decimal.RequireFromString("10"),
	}

	OrderFields{
		CustomerID:    2,
		PaymentTypeID: 3,
		Total:         decimal.RequireFromString("42.10"),
		NeedsShipping: true,
		IsCompleted:   true,
		DatePlaced:    time.Date(2024, 5, 1, 17, 30, 0, 0, time.FixedZone("X", 3600)),
	}.Apply(order)

	assert.Equal(t, uint(4), order.ID)
	assert.Equal(t, uint(2), order.CustomerID)
	assert.Nil(t, order.Customer)
	assert.Equal(t, uint(3), order.PaymentTypeID)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("42.10")))
	assert.True(t, order.NeedsShipping)
	assert.True(t, order.IsCompleted)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), order.DatePlaced)
}
