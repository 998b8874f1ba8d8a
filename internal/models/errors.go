package models

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrNotPaired     = errors.New("member is not paired")
	ErrAlreadyPaired = errors.New("member is already paired")
	ErrInvalidGender = errors.New("invalid gender")
	ErrValidation    = errors.New("validation failed")
	ErrAuthFailure   = errors.New("invalid credentials")
	ErrConflict      = errors.New("resource conflict")
	ErrUnavailable   = errors.New("service unavailable")
)

// FieldError describes one invalid request field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries per-field failures and unwraps to ErrValidation
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	return ErrValidation.Error() + ": " + e.Fields[0].Field + " " + e.Fields[0].Message
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError builds a single-field validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}
