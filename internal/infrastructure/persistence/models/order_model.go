package models

import (
	"time"

	"github.com/bangazon/bangazon-api/internal/domain/orders"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM database model for orders.
// Customer and PaymentType are only populated when preloaded.
type OrderModel struct {
	ID            uint              `gorm:"primaryKey;autoIncrement"`
	CustomerID    uint              `gorm:"not null;index"`
	Customer      *CustomerModel    `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	PaymentTypeID uint              `gorm:"not null;index"`
	PaymentType   *PaymentTypeModel `gorm:"foreignKey:PaymentTypeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Total         decimal.Decimal   `gorm:"type:decimal(10,2);not null"`
	NeedsShipping bool              `gorm:"not null"`
	IsCompleted   bool              `gorm:"not null;index"`
	DatePlaced    time.Time         `gorm:"type:date;not null"`
}

// TableName specifies the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts GORM model to domain entity
func (m *OrderModel) ToDomain() *orders.Order {
	o := &orders.Order{
		ID:            m.ID,
		CustomerID:    m.CustomerID,
		PaymentTypeID: m.PaymentTypeID,
		Total:         m.Total,
		NeedsShipping: m.NeedsShipping,
		IsCompleted:   m.IsCompleted,
		DatePlaced:    orders.TruncateToDate(m.DatePlaced),
	}
	if m.Customer != nil {
		o.Customer = m.Customer.ToDomain()
	}
	if m.PaymentType != nil {
		o.PaymentType = m.PaymentType.ToDomain()
	}
	return o
}

// FromDomain converts domain entity to GORM model.
// Associations are left nil so saving never upserts the referenced rows.
func (m *OrderModel) FromDomain(o *orders.Order) {
	m.ID = o.ID
	m.CustomerID = o.CustomerID
	m.Customer = nil
	m.PaymentTypeID = o.PaymentTypeID
	m.PaymentType = nil
	m.Total = o.Total
	m.NeedsShipping = o.NeedsShipping
	m.IsCompleted = o.IsCompleted
	m.DatePlaced = orders.TruncateToDate(o.DatePlaced)
}

// All returns every model to migrate, parents first
func All() []interface{} {
	return []interface{}{
		&CategoryModel{},
		&PaymentTypeModel{},
		&CustomerModel{},
		&OrderModel{},
	}
}
