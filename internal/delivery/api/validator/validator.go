// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"time"

	"masjidcast/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates an echo-compatible validator with the project's custom rules registered.
func New() *echoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// prayer validates a prayer name against the known set
	_ = v.RegisterValidation("prayer", func(fl validator.FieldLevel) bool {
		return entity.PrayerName(fl.Field().String()).IsValid()
	})

	// clock validates an HH:MM local time
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(entity.LocalTimeLayout, fl.Field().String())

		return err == nil
	})

	return &echoValidator{validate: v}
}

// Validate implements echo.Validator.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
