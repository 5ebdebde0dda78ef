package service

import "errors"

var (
	// ErrValidation marks missing, empty or malformed input.
	ErrValidation = errors.New("validation failed")
	// ErrOracleUnavailable marks a lexicon that cannot produce a signal. Callers may retry.
	ErrOracleUnavailable = errors.New("sentiment oracle unavailable")
	// ErrFetch marks a failure to retrieve a remote page.
	ErrFetch = errors.New("fetch failed")
	// ErrNoContent marks a page that was fetched but had no readable text.
	ErrNoContent = errors.New("no text content found")
)

// FieldError is a validation failure on a named input field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *FieldError) Unwrap() error {
	return ErrValidation
}

// Invalid returns a FieldError that matches ErrValidation.
func Invalid(field, message string) error {
	return &FieldError{Field: field, Message: message}
}
