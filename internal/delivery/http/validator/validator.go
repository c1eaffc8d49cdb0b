// Package validator binds go-playground/validator as the echo request validator.
package validator

import (
	playground "github.com/go-playground/validator/v10"
)

// RequestValidator implements echo.Validator on top of go-playground/validator.
type RequestValidator struct {
	validate *playground.Validate
}

// New creates the request validator with struct-tag validation enabled.
func New() *RequestValidator {
	return &RequestValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks the bound request DTO against its validate tags.
// The raw validator error is returned; the error handler maps it onto the
// VALIDATION_FAILED envelope without leaking field internals.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
