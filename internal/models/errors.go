package models

import (
	"errors"
	"fmt"
)

// Sentinel errors matched with errors.Is
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrInvalidState = errors.New("invalid state")
)

// NotFoundError reports a reference to an unknown catalog entry.
type NotFoundError struct {
	Kind string // "instrument" or "question"
	ID   string
}

// NewNotFoundError creates a NotFoundError for the given kind and id.
func NewNotFoundError(kind, id string) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ValidationError is a user-recoverable input problem, such as advancing
// without answering the current question.
type ValidationError struct {
	Field   string // Question id or input name
	Message string
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// StateError reports an operation invoked in a phase that does not allow it.
type StateError struct {
	Op    string // Operation name, e.g. "answer"
	Phase string // Phase the controller was in
}

// NewStateError creates a StateError.
func NewStateError(op, phase string) *StateError {
	return &StateError{Op: op, Phase: phase}
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s while session is %s", e.Op, e.Phase)
}

func (e *StateError) Unwrap() error {
	return ErrInvalidState
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
