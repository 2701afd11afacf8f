// Package validation binds request data and validates it.
//
// Rules live in `validate` struct tags checked by go-playground/validator;
// failures come back as a 400 *errs.HTTPError with one entry per field.
package validation

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct runs the tag rules on v. Request types call it from Validate.
func Struct(v any) error {
	return validate.Struct(v)
}
