package service

import "errors"

// ErrNotFound covers both a missing record and a record owned by another
// user. The two cases are deliberately indistinguishable so that probing
// ids reveals nothing.
var ErrNotFound = errors.New("record not found")

// ValidationError carries per-field messages for a rejected payload.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// NewValidationError wraps a non-empty field->message map.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
