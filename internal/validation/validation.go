// Package validation holds the error returned when user input is missing or
// malformed. Such errors reject the action without touching stored state.
package validation

import (
	"errors"
	"fmt"
)

type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func New(field, message string) *Error {
	return &Error{Field: field, Message: message}
}

func Errorf(field, format string, args ...any) *Error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Is reports whether err, or anything it wraps, is a validation error.
func Is(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}
