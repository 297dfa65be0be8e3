package domain

import (
	"errors"
	"strings"
)

// Sentinel errors produced by repositories and services. The HTTP layer maps
// each one to a status code in a single place; callers never see driver
// error codes.
var (
	ErrEventNotFound        = errors.New("event not found")
	ErrParticipantNotFound  = errors.New("participant not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrDuplicateEmail       = errors.New("email already in use")
	ErrAlreadyRegistered    = errors.New("participant already registered for this event")
	ErrEventFull            = errors.New("event has reached maximum capacity")
)

// ValidationError reports one or more per-field rule violations.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return strings.Join(e.Fields, "; ")
}

// NewValidationError returns a ValidationError with the given field messages.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}
