package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ErrValidation marks payloads rejected before persistence.
var ErrValidation = errors.New("validation failed")

// Validate runs struct-tag validation and wraps the first failure into
// a client-readable message.
func Validate(payload any) error {
	if err := validate.Struct(payload); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("%w: field %s failed on %s", ErrValidation, f.Field(), f.Tag())
		}
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// TrimmedRequired rejects values that are empty after trimming.
// Validator's required tag accepts whitespace-only strings, so fields
// like titles and comment content go through here as well.
func TrimmedRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrValidation, field)
	}
	return nil
}
