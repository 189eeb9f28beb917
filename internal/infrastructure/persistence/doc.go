// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer over sqlite or postgres to store categories,
// payment types, customers and orders, translating driver errors into the
// apperrors taxonomy.
package persistence
