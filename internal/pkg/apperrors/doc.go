// Package apperrors defines the error taxonomy shared by the application
// and API layers. Every error carries a Kind that the REST layer maps to an
// HTTP status code, a human readable Message that is safe to return to
// clients and an optional wrapped cause that is only ever logged.
package apperrors
