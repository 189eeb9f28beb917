package models

import (
	"github.com/bangazon/bangazon-api/internal/domain/paymenttypes"
)

// PaymentTypeModel is the GORM database model for payment types
type PaymentTypeModel struct {
	ID    uint   `gorm:"primaryKey;autoIncrement"`
	Label string `gorm:"type:varchar(255);not null"`
}

// TableName specifies the table name for GORM
func (PaymentTypeModel) TableName() string {
	return "payment_types"
}

// ToDomain converts GORM model to domain entity
func (m *PaymentTypeModel) ToDomain() *paymenttypes.PaymentType {
	return &paymenttypes.PaymentType{
		ID:    m.ID,
		Label: m.Label,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PaymentTypeModel) FromDomain(p *paymenttypes.PaymentType) {
	m.ID = p.ID
	m.Label = p.Label
}
