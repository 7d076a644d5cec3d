package models

import (
	"fmt"
	"unicode/utf8"
)

// ValidationError is returned by the Validate methods of request payloads.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func required(field, value string) error {
	if value == "" {
		return validationError("%s is required", field)
	}
	return nil
}

func lengthBetween(field, value string, min, max int) error {
	n := utf8.RuneCountInString(value)
	if n < min || n > max {
		if min == 0 {
			return validationError("%s must be at most %d characters", field, max)
		}
		return validationError("%s must be between %d and %d characters", field, min, max)
	}
	return nil
}
