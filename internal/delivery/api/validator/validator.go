// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	domainerrors "pushcampaign/internal/domain/errors"
	"pushcampaign/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator validates request structs and reports failures as validation AppErrors
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that names fields by their JSON tag
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{
		validate: v,
	}
}

// Validate implements echo.Validator
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errors.WithStack(err)
	}

	var missing, invalid []string
	for _, fe := range validationErrors {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		} else {
			invalid = append(invalid, fe.Field())
		}
	}

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "Missing required fields: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		parts = append(parts, "Invalid fields: "+strings.Join(invalid, ", "))
	}

	return domainerrors.ErrValidationFailed.WithMessage(strings.Join(parts, "; "))
}
