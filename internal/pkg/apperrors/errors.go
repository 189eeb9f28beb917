package apperrors

import (
	"errors"
	"fmt"
)

// Error kinds
const (
	KindNotFound          = "NotFound"
	KindInvalid           = "Invalid"
	KindReferenceNotFound = "ReferenceNotFound"
	KindInternal          = "Internal"
)

// Error is a classified application error
type Error struct {
	Kind    string
	Message string

	cause error
}

var _ error = (*Error)(nil)

// NotFound creates an error for an entity id that does not resolve
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Invalid creates an error for malformed client input
func Invalid(format string, args ...any) *Error {
	return &Error{Kind: KindInvalid, Message: fmt.Sprintf(format, args...)}
}

// ReferenceNotFound creates an error for a foreign key that does not resolve
func ReferenceNotFound(format string, args ...any) *Error {
	return &Error{Kind: KindReferenceNotFound, Message: fmt.Sprintf(format, args...)}
}

// Error implements error
func (e *Error) Error() string {
	str := fmt.Sprintf("[%s] %s", e.Kind, e.Message)
	if e.cause != nil {
		str += fmt.Sprintf(" (%s)", e.cause)
	}
	return str
}

// Wrap sets the error cause
func (e *Error) Wrap(cause error) *Error {
	e.cause = cause
	return e
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Is reports whether target is an *Error of the same kind
func (e *Error) Is(target error) bool {
	if e == nil {
		return target == nil
	}
	if other, ok := target.(*Error); ok {
		return other.Kind == e.Kind
	}
	return false
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal
func KindOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsNotFound reports whether err is classified as NotFound
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsReferenceNotFound reports whether err is classified as ReferenceNotFound
func IsReferenceNotFound(err error) bool {
	return KindOf(err) == KindReferenceNotFound
}
