package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidToken is returned when a quote acceptance token is missing,
// malformed, expired, or does not match the quote it was presented for. It is
// surfaced distinctly from other failures so callers can show an "expired
// link" message instead of a generic error.
var ErrInvalidToken = errors.New("acceptance link is invalid or has expired")

// ValidationError reports a locally detected invalid input. It blocks the
// operation before any repository or collaborator call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for a field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// PreconditionError reports an action attempted outside its allowed state,
// such as sending a quote that is not a draft. The attempted action has no
// side effects.
type PreconditionError struct {
	Entity string
	Action string
	Status string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("cannot %s %s in status %q", e.Action, e.Entity, e.Status)
}

// CollaboratorError wraps a failure from an external collaborator (pricing
// engine, payment processor, e-signature provider, calendar backend). It is
// recoverable: previously held state stays intact and the action can be
// retried by the caller.
type CollaboratorError struct {
	Service string
	Err     error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Service, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}
