// Package services holds the business rules of each entity and reports every
// expected failure as an *Error whose Kind the HTTP layer maps to a status.
package services

import (
	"errors"
)

// Kind classifies a service failure
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindUnauthorized
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	case KindValidation:
		return "VALIDATION_FAILED"
	}
	return "INTERNAL_FAULT"
}

// Error is the failure half of every service result
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of err; errors not raised by a service are internal
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func newError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}
