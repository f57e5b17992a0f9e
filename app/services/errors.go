package services

import (
	"errors"
	"fmt"
)

// ErrorKind labels the deterministic business outcomes the core can return.
// None of them is retryable; the route layer maps them to HTTP status codes.
type ErrorKind string

const (
	KindValidation          ErrorKind = "validation_error"
	KindNotFound            ErrorKind = "not_found"
	KindAlreadyBooked       ErrorKind = "already_booked"
	KindCapacityExceeded    ErrorKind = "capacity_exceeded"
	KindTooEarly            ErrorKind = "too_early"
	KindTooLate             ErrorKind = "too_late"
	KindTooFarAway          ErrorKind = "too_far_away"
	KindFinancialBlocked    ErrorKind = "financial_blocked"
	KindDuplicateAttendance ErrorKind = "duplicate_attendance"
	KindRuleNotFound        ErrorKind = "rule_not_found"
)

// DomainError carries a kind plus a human-readable message; several messages
// embed computed values (minutes remaining, distance in meters) for the app.
type DomainError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *DomainError) Error() string {
	return e.Message
}

// Errf builds a DomainError with a formatted message.
func Errf(kind ErrorKind, format string, args ...interface{}) *DomainError {
	return &DomainError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// AsDomainError unwraps err into a DomainError if it is one.
func AsDomainError(err error) (*DomainError, bool) {
	var derr *DomainError
	if errors.As(err, &derr) {
		return derr, true
	}
	return nil, false
}

// IsKind reports whether err is a DomainError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	if derr, ok := AsDomainError(err); ok {
		return derr.Kind == kind
	}
	return false
}

// HTTPStatus maps the kind to the status code the API answers with.
func (e *DomainError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return 400
	case KindNotFound, KindRuleNotFound:
		return 404
	case KindFinancialBlocked:
		return 403
	case KindAlreadyBooked, KindCapacityExceeded, KindDuplicateAttendance:
		return 409
	case KindTooEarly, KindTooLate, KindTooFarAway:
		return 422
	default:
		return 500
	}
}
