package paymenttypes

import (
	"github.com/bangazon/bangazon-api/internal/pkg/validators"
)

// NotFoundMessage is returned when a payment type id does not resolve
const NotFoundMessage = "PaymentType matching query does not exist."

// PaymentType entity
type PaymentType struct {
	ID    uint
	Label string `validate:"required,max=255,nohtml"`
}

// Validate for validating PaymentType struct
func (p *PaymentType) Validate() error {
	return validators.ValidateStruct(p)
}
