package services

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidationError is returned for input the organiser can fix. Handlers show
// Message as plain text with a 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// fromValidator turns the first validator failure into a ValidationError,
// using requiredMsg for missing values.
func fromValidator(err error, requiredMsg string) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return &ValidationError{Field: fe.Field(), Message: requiredMsg}
	case "datetime":
		return invalid(fe.Field(), "must be a date in YYYY-MM-DD form")
	default:
		return invalid(fe.Field(), "is invalid")
	}
}
