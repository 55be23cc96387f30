package validation

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Struct checks the value against its `validate` tags.
func Struct(v any) error {
	return validate.Struct(v)
}
