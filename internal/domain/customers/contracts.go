package customers

import (
	"context"
)

// CustomerRepository defines the lookups this service needs from the user store
type CustomerRepository interface {
	Create(ctx context.Context, customer *Customer) error
	GetByID(ctx context.Context, customerID uint) (*Customer, error)
	GetByUsername(ctx context.Context, username string) (*Customer, error)
}
