package api

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"prayertimes.app/pkg/validation"
)

// validateTimezone accepts IANA zone names; pair with omitempty to allow ""
func validateTimezone(fl validator.FieldLevel) bool {
	return validation.IsValidTimezone(fl.Field().String())
}

// RegisterValidators installs the custom binding tags used by request structs
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("timezone", validateTimezone)
}
