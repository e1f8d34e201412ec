package util

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateDTO runs struct-tag validation on a request body.
func ValidateDTO(dto any) error {
	return validate.Struct(dto)
}
