package dto

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// Conservative local@domain.tld shape. No DNS or deliverability check.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("contact_email", validateContactEmail)
}

func GetValidator() *validator.Validate {
	return validate
}

func ValidateEmail(s string) bool {
	return emailRegex.MatchString(s)
}

func validateContactEmail(fl validator.FieldLevel) bool {
	return ValidateEmail(fl.Field().String())
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func FormatValidationErrors(err error) []ValidationError {
	var errors []ValidationError

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			var message string

			switch fieldError.Tag() {
			case "required":
				message = fieldError.Field() + " is required"
			case "email", "contact_email":
				message = "Invalid email format"
			case "min":
				message = fieldError.Field() + " must be at least " + fieldError.Param() + " characters"
			case "max":
				message = fieldError.Field() + " must be at most " + fieldError.Param() + " characters"
			default:
				message = fieldError.Field() + " is invalid"
			}

			errors = append(errors, ValidationError{
				Field:   fieldError.Field(),
				Message: message,
			})
		}
	}

	return errors
}

// FirstValidationError surfaces the first violated rule; the handlers
// fail fast rather than collecting every violation.
func FirstValidationError(err error) string {
	formatted := FormatValidationErrors(err)
	if len(formatted) == 0 {
		return "Invalid request"
	}
	return formatted[0].Message
}
