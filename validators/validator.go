package validators

import "github.com/go-playground/validator/v10"

// RequestValidator adapts go-playground/validator to Echo's Validator
// interface so handlers can call c.Validate on bound request structs.
type RequestValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new RequestValidator
func NewValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks the struct tags on a bound request
func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
