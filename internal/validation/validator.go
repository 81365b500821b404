package validation

import (
	"errors"

	"github.com/alexisbeaulieu97/frota/internal/vehicle"
	frotaerrors "github.com/alexisbeaulieu97/frota/pkg/errors"
)

type check struct {
	field   string
	message string
	passes  func() bool
}

// run evaluates checks in order and reports only the first failure.
func run(checks []check) error {
	for _, c := range checks {
		if !c.passes() {
			return frotaerrors.NewValidationError(c.field, c.message, nil)
		}
	}
	return nil
}

// ValidateVehicle checks required fields, then plate format, then year
// format. On success the plate is rewritten to its normalized form, which is
// the value that must be submitted.
func ValidateVehicle(v *vehicle.Vehicle) error {
	err := run([]check{
		{message: MsgRequiredFields, passes: func() bool { return HasRequiredFields(v) }},
		{field: "placa", message: MsgInvalidPlate, passes: func() bool { return ValidatePlate(v.Placa) }},
		{field: "ano", message: MsgInvalidYear, passes: func() bool { return ValidateYear(v.Ano) }},
	})
	if err != nil {
		return err
	}
	v.Placa = NormalizePlate(v.Placa)
	return nil
}

// ValidateCredentials checks required fields, then email format.
func ValidateCredentials(c Credentials) error {
	return run([]check{
		{message: MsgRequiredFields, passes: func() bool { return HasRequiredFields(c) }},
		{field: "email", message: MsgInvalidEmail, passes: func() bool { return ValidateEmail(c.Email) }},
	})
}

// Message extracts the user-facing message from a validation error, or ""
// when err is not one.
func Message(err error) string {
	var vErr *frotaerrors.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message
	}
	return ""
}
