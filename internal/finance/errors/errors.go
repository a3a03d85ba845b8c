package errors

import (
	"errors"
	"fmt"
)

// The ledger distinguishes four request-terminal failure kinds. Handlers map
// them one-to-one onto HTTP statuses; services never swallow or translate them.

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}

// NotFoundError means the referenced id does not exist at all.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

func NewNotFoundError(resource, id string) error {
	return &NotFoundError{Msg: fmt.Sprintf("%s with ID %s not found", resource, id)}
}

func IsNotFoundError(err error) bool {
	var notFoundError *NotFoundError
	return errors.As(err, &notFoundError)
}

// ForbiddenError means the entity exists but belongs to a different user.
// Existence is always checked first, so NotFound wins over Forbidden.
type ForbiddenError struct {
	Msg string
}

func (e *ForbiddenError) Error() string {
	return e.Msg
}

func NewForbiddenError(resource string) error {
	return &ForbiddenError{Msg: fmt.Sprintf("access to this %s is denied", resource)}
}

func IsForbiddenError(err error) bool {
	var forbiddenError *ForbiddenError
	return errors.As(err, &forbiddenError)
}

// ConflictError covers duplicate registration emails and category deletion
// blocked by referencing transactions.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string {
	return e.Msg
}

func NewConflictError(msg string) error {
	return &ConflictError{Msg: msg}
}

func IsConflictError(err error) bool {
	var conflictError *ConflictError
	return errors.As(err, &conflictError)
}

var ErrInvalidTransactionType = NewValidationError("Type must be 'INCOME' or 'EXPENSE'")
