package validation

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	// Mercosul (ABC1D23), legacy (ABC1234) and legacy with hyphen (ABC-1234).
	platePattern = regexp.MustCompile(`^([A-Z]{3}\d[A-Z]\d{2}|[A-Z]{3}\d{4}|[A-Z]{3}-\d{4})$`)
	yearPattern  = regexp.MustCompile(`^\d{4}$`)
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// validatorInstance configures and returns the shared validator instance.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("placa", func(fl validator.FieldLevel) bool {
			return platePattern.MatchString(strings.ToUpper(fl.Field().String()))
		})

		_ = v.RegisterValidation("ano", func(fl validator.FieldLevel) bool {
			return yearPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("email_loose", func(fl validator.FieldLevel) bool {
			return emailPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}
