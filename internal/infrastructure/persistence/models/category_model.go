package models

import (
	"github.com/bangazon/bangazon-api/internal/domain/categories"
)

// CategoryModel is the GORM database model for product categories
type CategoryModel struct {
	ID    uint   `gorm:"primaryKey;autoIncrement"`
	Label string `gorm:"type:varchar(255);not null"`
}

// TableName specifies the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts GORM model to domain entity
func (m *CategoryModel) ToDomain() *categories.Category {
	return &categories.Category{
		ID:    m.ID,
		Label: m.Label,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CategoryModel) FromDomain(c *categories.Category) {
	m.ID = c.ID
	m.Label = c.Label
}
