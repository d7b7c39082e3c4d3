package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLoanTerms = errors.New("invalid loan terms")

	ErrUnsupportedConfiguration = errors.New("unsupported configuration")

	ErrInvalidArgument = errors.New("invalid argument")

	ErrInternalServer = errors.New("internal server error")
)

type TermsError struct {
	Field   string
	Message string
	Cause   error
}

func (e *TermsError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid loan terms for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid loan terms: %s", e.Message)
}

func (e *TermsError) Unwrap() error {
	return e.Cause
}

func NewTermsError(field, message string) error {
	return fmt.Errorf("%w: %w", ErrInvalidLoanTerms, &TermsError{Field: field, Message: message})
}

func NewUnsupportedConfigurationError(field, value string) error {
	return fmt.Errorf("%w: %w", ErrUnsupportedConfiguration,
		&TermsError{Field: field, Message: fmt.Sprintf("unrecognized value %q", value)})
}
