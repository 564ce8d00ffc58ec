package services

import (
	"errors"
	"fmt"
)

var (
	ErrAuthFailure = errors.New("invalid credentials")
	ErrForbidden   = errors.New("forbidden operation")
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("invalid input")

	ErrInvalidStatus    = fmt.Errorf("%w: invalid booking status", ErrValidation)
	ErrInvalidReference = fmt.Errorf("%w: service does not exist", ErrValidation)
)

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
