// Package customers models the user accounts that place orders. Accounts
// are owned by the user store; this service only looks them up by id.
package customers

import (
	"time"

	"github.com/bangazon/bangazon-api/internal/pkg/validators"
)

// Customer entity
type Customer struct {
	ID         uint
	Username   string `validate:"required,max=150"`
	FirstName  string `validate:"max=150"`
	LastName   string `validate:"max=150"`
	Email      string `validate:"omitempty,email"`
	IsStaff    bool
	IsActive   bool
	DateJoined time.Time `validate:"required"`
}

// Validate for validating Customer struct
func (c *Customer) Validate() error {
	return validators.ValidateStruct(c)
}
