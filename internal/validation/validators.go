package validation

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct validates any tagged struct with the shared validator
// instance. Used for parsed commands and audit query parameters.
func Struct(v any) error {
	return validate.Struct(v)
}
