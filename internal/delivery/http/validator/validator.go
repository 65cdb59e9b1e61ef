// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "ecclesia/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// EchoValidator wraps a validator.Validate instance for echo.
type EchoValidator struct {
	validate *validator.Validate
}

// New constructs the echo request validator.
func New() *EchoValidator {
	return &EchoValidator{validate: validator.New()}
}

// Validate checks a bound request struct against its `validate` tags.
// Failures map to the wire-level missing-fields error.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
