package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/pawhaven/rescue-api/internal/domain"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("donation_type", validateDonationType)

	return validator
}

func validateDonationType(fl validator.FieldLevel) bool {
	donationType := domain.DonationType(fl.Field().String())

	return donationType == domain.DonationTypeOneTime || donationType == domain.DonationTypeMonthly
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", err.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	case "eq":
		return "must be accepted"
	case "donation_type":
		return "must be either 'onetime' or 'monthly'"
	default:
		return "is invalid"
	}
}
