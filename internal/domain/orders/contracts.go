package orders

import (
	"context"
)

// OrderService defines methods for managing orders.
type OrderService interface {
	// List retrieves all orders matching the query, with customer and payment type loaded.
	List(ctx context.Context, query *OrderQuery) ([]*Order, error)

	// GetByID retrieves an order by its unique ID, with customer and payment type loaded.
	// It returns a NotFound error when the ID does not resolve.
	GetByID(ctx context.Context, orderID uint) (*Order, error)

	// Create resolves the customer and payment type references and persists a new order.
	// It returns a ReferenceNotFound error, without writing, when a reference does not resolve.
	Create(ctx context.Context, fields OrderFields) (*Order, error)

	// UpdateByID overwrites every writable field of an existing order.
	// References are re-resolved before the write.
	UpdateByID(ctx context.Context, orderID uint, fields OrderFields) error
}

// OrderRepository defines the interface for Order-related operations
type OrderRepository interface {
	// Create adds a new Order to the database and sets its ID
	Create(ctx context.Context, order *Order) error
	// List lists Orders matching the query, references preloaded
	List(ctx context.Context, query *OrderQuery) ([]*Order, error)
	// GetByID retrieves an Order by ID, references preloaded
	GetByID(ctx context.Context, orderID uint) (*Order, error)
	// UpdateByID rewrites all columns of an existing Order
	UpdateByID(ctx context.Context, order *Order) error
}
