package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral             = errors.New("an error occurred on the server during your request")
	ErrValidation          = errors.New("invalid input")
	ErrNotFound            = errors.New("there is no")
	ErrUnknownDepartment   = errors.New("there is no department named")
	ErrDuplicateSubmission = errors.New("this submission is already being processed")
	ErrUpstreamUnavailable = errors.New("an upstream service is unavailable")
	ErrAuthentication      = errors.New("the password is incorrect")
)

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// Unwrap makes errors.Is(err, ErrValidation) hold for every ValidationError.
func (e ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, format string, args ...any) ValidationError {
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}
