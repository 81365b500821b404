// Package validation implements the client-side field rules applied before
// any vehicle or login form is submitted.
package validation

import (
	"strings"
)

// Messages shown to the user when a check fails.
const (
	MsgRequiredFields = "Preencha todos os campos!"
	MsgInvalidPlate   = "Placa inválida! Use: ABC1D23, ABC1234 ou ABC-1234"
	MsgInvalidYear    = "Ano inválido! ex: 2025"
	MsgInvalidEmail   = "E-mail inválido!"
)

// Credentials is the login form. Only its format is checked; nothing is sent
// to a server.
type Credentials struct {
	Email string `validate:"required"`
	Senha string `validate:"required"`
}

// NormalizePlate returns the canonical upper-case plate.
func NormalizePlate(input string) string {
	return strings.ToUpper(input)
}

// ValidatePlate reports whether input, once upper-cased, is ABC1D23, ABC1234
// or ABC-1234.
func ValidatePlate(input string) bool {
	return validatorInstance().Var(input, "placa") == nil
}

// ValidateYear reports whether input is exactly four ASCII digits. No calendar
// bounds are applied.
func ValidateYear(input string) bool {
	return validatorInstance().Var(input, "ano") == nil
}

// ValidateEmail reports whether input looks like nonspace@nonspace.nonspace.
func ValidateEmail(input string) bool {
	return validatorInstance().Var(input, "email_loose") == nil
}

// HasRequiredFields reports whether every required field of form (a
// vehicle.Vehicle or Credentials, by value or pointer) is non-empty.
// Whitespace-only values count as filled.
func HasRequiredFields(form any) bool {
	return validatorInstance().Struct(form) == nil
}
