package dto

import (
	"github.com/SscSPs/payroll_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// ValidationTagName is shared with gin's binding engine so request DTOs and imported
// documents are checked by the same rules.
const ValidationTagName = "binding"

// RegisterValidations adds the payroll-specific tags to v.
// "currency" accepts any supported code, case-insensitively.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseCurrency(fl.Field().String())
		return err == nil
	})
}

// NewValidator returns a validator configured with the payroll tags.
func NewValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName(ValidationTagName)
	if err := RegisterValidations(v); err != nil {
		return nil, err
	}
	return v, nil
}
