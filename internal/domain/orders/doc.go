// Package orders defines the Order entity, the query object used to filter
// orders and the service and repository contracts. An Order references a
// customer and a payment type; both references are resolved before any
// write.
package orders
