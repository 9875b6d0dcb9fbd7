// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	playgroundvalidator "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// RequestValidator validates request payloads using struct tags.
type RequestValidator struct {
	validate *playgroundvalidator.Validate
}

// New creates a RequestValidator ready to be attached to an Echo server.
func New() *RequestValidator {
	return &RequestValidator{
		validate: playgroundvalidator.New(playgroundvalidator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
