package categories

import (
	"context"
)

// CategoryService defines methods for reading categories.
type CategoryService interface {
	// List retrieves all categories.
	List(ctx context.Context) ([]*Category, error)

	// GetByID retrieves a category by its unique ID.
	// It returns a NotFound error when the ID does not resolve.
	GetByID(ctx context.Context, categoryID uint) (*Category, error)
}

// CategoryRepository defines the interface for Category-related operations
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	List(ctx context.Context) ([]*Category, error)
	GetByID(ctx context.Context, categoryID uint) (*Category, error)
	GetByLabel(ctx context.Context, label string) (*Category, error)
}
