package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"foodshare/apperrors"
)

// Validate is the shared validator instance for request bodies.
var Validate = validator.New()

// ValidateStruct runs struct validation and converts the first violation
// into a ValidationError with a readable message.
func ValidateStruct(s interface{}) error {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}
	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		return apperrors.NewValidation(fieldMessage(fieldErrs[0]))
	}
	return apperrors.NewValidation("Invalid input")
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Please provide %s", field)
	case "email":
		return fmt.Sprintf("Please provide a valid %s", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("Invalid value for %s", field)
	}
}
