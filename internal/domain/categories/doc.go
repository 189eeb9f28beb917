// Package categories defines the Category entity and the contracts for
// reading product categories.
package categories
