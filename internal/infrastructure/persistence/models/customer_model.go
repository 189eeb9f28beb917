package models

import (
	"time"

	"github.com/bangazon/bangazon-api/internal/domain/customers"
)

// CustomerModel is the GORM database model for user accounts
type CustomerModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	Username   string    `gorm:"type:varchar(150);not null;uniqueIndex"`
	FirstName  string    `gorm:"type:varchar(150)"`
	LastName   string    `gorm:"type:varchar(150)"`
	Email      string    `gorm:"type:varchar(254)"`
	IsStaff    bool      `gorm:"not null"`
	IsActive   bool      `gorm:"not null"`
	DateJoined time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (CustomerModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *CustomerModel) ToDomain() *customers.Customer {
	return &customers.Customer{
		ID:         m.ID,
		Username:   m.Username,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Email:      m.Email,
		IsStaff:    m.IsStaff,
		IsActive:   m.IsActive,
		DateJoined: m.DateJoined,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CustomerModel) FromDomain(c *customers.Customer) {
	m.ID = c.ID
	m.Username = c.Username
	m.FirstName = c.FirstName
	m.LastName = c.LastName
	m.Email = c.Email
	m.IsStaff = c.IsStaff
	m.IsActive = c.IsActive
	m.DateJoined = c.DateJoined
}
