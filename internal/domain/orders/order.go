package orders

import (
	"time"

	"github.com/bangazon/bangazon-api/internal/domain/customers"
	"github.com/bangazon/bangazon-api/internal/domain/paymenttypes"
	"github.com/bangazon/bangazon-api/internal/pkg/validators"
	"github.com/shopspring/decimal"
)

// NotFoundMessage is returned when an order id does not resolve
const NotFoundMessage = "Order matching query does not exist."

// DateLayout is the calendar date format of DatePlaced
const DateLayout = "2006-01-02"

// Order entity
type Order struct {
	ID            uint
	CustomerID    uint                      `validate:"required"`
	Customer      *customers.Customer       `validate:"-"`
	PaymentTypeID uint                      `validate:"required"`
	PaymentType   *paymenttypes.PaymentType `validate:"-"`
	Total         decimal.Decimal           `validate:"money"`
	NeedsShipping bool
	IsCompleted   bool
	DatePlaced    time.Time `validate:"required"`
}

// Validate for validating Order struct
func (o *Order) Validate() error {
	return validators.ValidateStruct(o)
}

// OrderFields holds the writable fields of an order, as submitted on create and full update
type OrderFields struct {
	CustomerID    uint
	PaymentTypeID uint
	Total         decimal.Decimal
	NeedsShipping bool
	IsCompleted   bool
	DatePlaced    time.Time
}

// Apply overwrites every writable field of o with f. References are reset
// so they get reloaded from the new IDs.
func (f OrderFields) Apply(o *Order) {
	o.CustomerID = f.CustomerID
	o.Customer = nil
	o.PaymentTypeID = f.PaymentTypeID
	o.PaymentType = nil
	o.Total = f.Total
	o.NeedsShipping = f.NeedsShipping
	o.IsCompleted = f.IsCompleted
	o.DatePlaced = TruncateToDate(f.DatePlaced)
}

// TruncateToDate drops the clock part of t, keeping its calendar date in UTC
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
