package service

import (
	"errors"
	"fmt"

	"github.com/barelyrics/barelyrics-api/internal/validation"
)

// ErrInvalidCredentials is returned on any authentication failure. It is
// deliberately generic so callers cannot tell which check failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrEmailTaken indicates an admin user with that email already exists
var ErrEmailTaken = errors.New("email already in use")

// ValidationFailed carries the field-level errors of a rejected payload
type ValidationFailed struct {
	Errors []validation.ValidationError
}

func (e *ValidationFailed) Error() string {
	return fmt.Sprintf("validation failed: %d field error(s)", len(e.Errors))
}

// FieldMap returns the field -> message map for response bodies
func (e *ValidationFailed) FieldMap() map[string]string {
	return validation.FieldMap(e.Errors)
}
