package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// HasMissingFields reports whether err contains at least one failed
// "required" rule.
func (cv *CustomValidator) HasMissingFields(err error) bool {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			if e.Tag() == "required" {
				return true
			}
		}
	}
	return false
}

// FormatValidationErrors maps each failed struct field to a readable message.
func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	messages := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				messages[field] = field + " is required"
			case "email":
				messages[field] = field + " must be a valid email address"
			case "oneof":
				messages[field] = field + " must be one of " + e.Param()
			case "min":
				messages[field] = field + " must be at least " + e.Param() + " characters"
			default:
				messages[field] = field + " is invalid"
			}
		}
	}

	return messages
}
