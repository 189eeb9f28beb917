// Package models holds the GORM row types of categories, payment types,
// customers and orders. Each model converts to and from its domain entity with
// ToDomain and FromDomain; column names and constraints live here only.
package models
