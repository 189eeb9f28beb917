//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/bangazon/bangazon-api/internal/domain/orders"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentTypeRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   PaymentTypeRequest
		shouldErr bool
	}{
		{"Valid label", PaymentTypeRequest{Label: "Visa"}, false},
		{"Empty label", PaymentTypeRequest{}, true},
		{"Label too long", PaymentTypeRequest{Label: string(make([]byte, 256))}, true},
		{"Ampersand label", PaymentTypeRequest{Label: "Cash & Check"}, false},
		{"Markup label", PaymentTypeRequest{Label: "<b>Visa</b>"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestOrderRequest_ToFields(t *testing.T) {
	var request OrderRequest
	err := json.Unmarshal([]byte(`{
		"customerId": 3,
		"paymentType": 4,
		"total": "10.50",
		"needsShipping": false,
		"isCompleted": true,
		"datePlaced": "2024-02-29T23:59:59Z"
	}`), &request)
	require.NoError(t, err)
	require.NoError(t, request.Validate())

	fields, err := request.ToFields()
	require.NoError(t, err)
	assert.Equal(t, uint(3), fields.CustomerID)
	assert.Equal(t, uint(4), fields.PaymentTypeID)
	assert.True(t, decimal.RequireFromString("10.5").Equal(fields.Total))
	assert.False(t, fields.NeedsShipping)
	assert.True(t, fields.IsCompleted)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), fields.DatePlaced)
}

func TestOrderRequest_Validate_FalseFlagsArePresent(t *testing.T) {
	var request OrderRequest
	err := json.Unmarshal([]byte(`{"customerId":1,"paymentType":1,"total":0,"needsShipping":false,"isCompleted":false,"datePlaced":"2024-01-01"}`), &request)
	require.NoError(t, err)
	assert.NoError(t, request.Validate())
}

func TestOrderRequest_Validate_MissingFields(t *testing.T) {
	request := OrderRequest{}
	err := request.Validate()
	require.Error(t, err)
	for _, field := range []string{"CustomerID", "PaymentType", "Total", "NeedsShipping", "IsCompleted", "DatePlaced"} {
		assert.Contains(t, err.Error(), "Field: "+field)
	}
}

func TestNewOrderResponse_WithoutReferences(t *testing.T) {
	response := NewOrderResponse(&orders.Order{
		ID:         1,
		Total:      decimal.NewFromInt(7),
		DatePlaced: time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
	})

	assert.Nil(t, response.Customer)
	assert.Nil(t, response.PaymentType)
	assert.Equal(t, json.Number("7.00"), response.Total)
	assert.Equal(t, "2024-05-06", response.DatePlaced)
}
