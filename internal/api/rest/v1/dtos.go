package v1

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/bangazon/bangazon-api/internal/domain/categories"
	"github.com/bangazon/bangazon-api/internal/domain/customers"
	"github.com/bangazon/bangazon-api/internal/domain/orders"
	"github.com/bangazon/bangazon-api/internal/domain/paymenttypes"
	"github.com/bangazon/bangazon-api/internal/pkg/validators"

	"github.com/shopspring/decimal"
)

// ErrorResponse represents an error message
type ErrorResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by the liveness endpoint
type HealthResponse struct {
	Status string `json:"status"`
}

// CategoryResponse represents a category
type CategoryResponse struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
}

// NewCategoryResponse maps a category to its response
func NewCategoryResponse(c *categories.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Label: c.Label}
}

// PaymentTypeResponse represents a payment type
type PaymentTypeResponse struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
}

// NewPaymentTypeResponse maps a payment type to its response
func NewPaymentTypeResponse(p *paymenttypes.PaymentType) PaymentTypeResponse {
	return PaymentTypeResponse{ID: p.ID, Label: p.Label}
}

// CustomerResponse represents the customer nested in an order
type CustomerResponse struct {
	ID         uint      `json:"id"`
	Username   string    `json:"username"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	IsStaff    bool      `json:"is_staff"`
	IsActive   bool      `json:"is_active"`
	DateJoined time.Time `json:"date_joined"`
}

// NewCustomerResponse maps a customer to its response
func NewCustomerResponse(c *customers.Customer) CustomerResponse {
	return CustomerResponse{
		ID:         c.ID,
		Username:   c.Username,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Email:      c.Email,
		IsStaff:    c.IsStaff,
		IsActive:   c.IsActive,
		DateJoined: c.DateJoined,
	}
}

// OrderResponse represents an order with its customer and payment type nested one level deep
type OrderResponse struct {
	ID            uint                 `json:"id"`
	Customer      *CustomerResponse    `json:"customer_id"`
	PaymentType   *PaymentTypeResponse `json:"payment_type"`
	Total         json.Number          `json:"total"`
	NeedsShipping bool                 `json:"needs_shipping"`
	IsCompleted   bool                 `json:"is_completed"`
	DatePlaced    string               `json:"date_placed"`
}

// NewOrderResponse maps an order to its response
func NewOrderResponse(o *orders.Order) OrderResponse {
	response := OrderResponse{
		ID:            o.ID,
		Total:         json.Number(o.Total.StringFixed(validators.MoneyScale)),
		NeedsShipping: o.NeedsShipping,
		IsCompleted:   o.IsCompleted,
		DatePlaced:    o.DatePlaced.Format(orders.DateLayout),
	}
	if o.Customer != nil {
		customer := NewCustomerResponse(o.Customer)
		response.Customer = &customer
	}
	if o.PaymentType != nil {
		paymentType := NewPaymentTypeResponse(o.PaymentType)
		response.PaymentType = &paymentType
	}
	return response
}

// PaymentTypeRequest is the body of payment type create and update
type PaymentTypeRequest struct {
	Label string `json:"label" validate:"required,max=255,nohtml"`
}

// Validate for validating PaymentTypeRequest struct
func (r *PaymentTypeRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// OrderRequest is the body of order create and full update
type OrderRequest struct {
	CustomerID    *uint            `json:"customerId" validate:"required"`
	PaymentType   *uint            `json:"paymentType" validate:"required"`
	Total         *decimal.Decimal `json:"total" validate:"required,money"`
	NeedsShipping *bool            `json:"needsShipping" validate:"required"`
	IsCompleted   *bool            `json:"isCompleted" validate:"required"`
	DatePlaced    string           `json:"datePlaced" validate:"required"`
}

// Validate for validating OrderRequest struct
func (r *OrderRequest) Validate() error {
	if err := validators.ValidateStruct(r); err != nil {
		return err
	}
	if _, err := parseDatePlaced(r.DatePlaced); err != nil {
		return err
	}
	return nil
}

// ToFields converts a validated request into the writable order fields
func (r *OrderRequest) ToFields() (orders.OrderFields, error) {
	datePlaced, err := parseDatePlaced(r.DatePlaced)
	if err != nil {
		return orders.OrderFields{}, err
	}

	return orders.OrderFields{
		CustomerID:    *r.CustomerID,
		PaymentTypeID: *r.PaymentType,
		Total:         *r.Total,
		NeedsShipping: *r.NeedsShipping,
		IsCompleted:   *r.IsCompleted,
		DatePlaced:    orders.TruncateToDate(datePlaced),
	}, nil
}

// parseDatePlaced accepts a calendar date or an RFC 3339 timestamp
func parseDatePlaced(value string) (time.Time, error) {
	if t, err := time.Parse(orders.DateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("datePlaced %q is not a date (YYYY-MM-DD)", value)
}
