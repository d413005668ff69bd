// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	validation "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// RequestValidator wraps a validator instance for echo.
type RequestValidator struct {
	validate *validation.Validate
}

// New creates a RequestValidator with struct tag validation enabled.
func New() *RequestValidator {
	return &RequestValidator{validate: validation.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
