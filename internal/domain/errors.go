package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by gateways when a get/update/delete targets
	// an id that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks input rejected before it reaches a gateway.
	ErrValidation = errors.New("invalid data")
)

// Validationf wraps ErrValidation with field detail.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
