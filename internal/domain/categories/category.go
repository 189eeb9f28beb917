package categories

import (
	"github.com/bangazon/bangazon-api/internal/pkg/validators"
)

// NotFoundMessage is returned when a category id does not resolve
const NotFoundMessage = "Category matching query does not exist."

// Category entity
type Category struct {
	ID    uint
	Label string `validate:"required,max=255,nohtml"`
}

// Validate for validating Category struct
func (c *Category) Validate() error {
	return validators.ValidateStruct(c)
}
