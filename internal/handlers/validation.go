package handlers

import (
	"errors"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	"github.com/go-playground/validator/v10"
)

// ParseValidationErrors converts validator errors to user-friendly field errors
func ParseValidationErrors(err error) []models.FieldError {
	var fieldErrors []models.FieldError

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field:   fieldError.Field(),
				Message: getErrorMessage(fieldError),
			})
		}
	}

	return fieldErrors
}

func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "max":
		return fe.Field() + " must not exceed " + fe.Param()
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "uuid":
		return fe.Field() + " must be a valid UUID"
	case "datetime":
		return fe.Field() + " has an invalid date or time format"
	case "url":
		return "Invalid URL format"
	case "len":
		return fe.Field() + " must be exactly " + fe.Param() + " characters"
	default:
		return fe.Field() + " is invalid"
	}
}
