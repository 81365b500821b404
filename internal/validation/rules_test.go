package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/frota/internal/vehicle"
	frotaerrors "github.com/alexisbeaulieu97/frota/pkg/errors"
)

func TestValidatePlate(t *testing.T) {
	t.Parallel()

	valid := []string{"ABC1D23", "ABC1234", "ABC-1234", "abc1d23", "abc1234", "aBc-9876"}
	for _, plate := range valid {
		assert.True(t, ValidatePlate(plate), plate)
	}

	invalid := []string{
		"",
		"AB1234",
		"ABCD123",
		"ABC12345",
		"ABC 1234",
		" ABC1234",
		"ABC1234 ",
		"ABC-1D23",
		"ABC_1234",
		"1BC1234",
		"ABC1DD3",
		"ÁBC1234",
		"ABC1234\n",
	}
	for _, plate := range invalid {
		assert.False(t, ValidatePlate(plate), "%q", plate)
	}
}

func TestNormalizePlate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ABC1D23", NormalizePlate("abc1d23"))
	assert.Equal(t, "ABC-1234", NormalizePlate("Abc-1234"))
}

func TestValidateYear(t *testing.T) {
	t.Parallel()

	for _, year := range []string{"0000", "2023", "9999", "1886"} {
		assert.True(t, ValidateYear(year), year)
	}
	for _, year := range []string{"", "202", "20234", "-202", "+2023", "20 3", "2O23", "２０２３", "2023\n"} {
		assert.False(t, ValidateYear(year), "%q", year)
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidateEmail("a@b.c"))
	assert.True(t, ValidateEmail("joao.silva@empresa.com.br"))
	assert.True(t, ValidateEmail("a@@b..c"))

	for _, email := range []string{"a@b", "ab.c", "", "a b@c.d", "@b.c", "a@.c", "a@b."} {
		assert.False(t, ValidateEmail(email), "%q", email)
	}
}

func TestHasRequiredFields(t *testing.T) {
	t.Parallel()

	full := vehicle.Vehicle{Placa: "ABC1234", Marca: "Fiat", Modelo: "Uno", Ano: "2010", Cor: "Azul"}
	assert.True(t, HasRequiredFields(full))
	assert.True(t, HasRequiredFields(&full))

	missing := full
	missing.Cor = ""
	assert.False(t, HasRequiredFields(missing))

	whitespace := full
	whitespace.Modelo = "   "
	assert.True(t, HasRequiredFields(whitespace), "whitespace-only values count as filled")

	assert.False(t, HasRequiredFields(Credentials{Email: "a@b.c"}))
	assert.True(t, HasRequiredFields(Credentials{Email: "a@b.c", Senha: " "}))
}

func TestValidateVehicleOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		form    vehicle.Vehicle
		field   string
		message string
	}{
		{
			name:    "required fields before plate and year",
			form:    vehicle.Vehicle{Placa: "", Marca: "Fiat", Modelo: "Uno", Ano: "20x3", Cor: "Azul"},
			message: MsgRequiredFields,
		},
		{
			name:    "plate before year",
			form:    vehicle.Vehicle{Placa: "bad", Marca: "Fiat", Modelo: "Uno", Ano: "20x3", Cor: "Azul"},
			field:   "placa",
			message: MsgInvalidPlate,
		},
		{
			name:    "year last",
			form:    vehicle.Vehicle{Placa: "abc1234", Marca: "Fiat", Modelo: "Uno", Ano: "23", Cor: "Azul"},
			field:   "ano",
			message: MsgInvalidYear,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			form := tt.form
			err := ValidateVehicle(&form)
			require.Error(t, err)

			var vErr *frotaerrors.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
			assert.Equal(t, tt.message, vErr.Message)
			assert.Equal(t, tt.message, Message(err))
			assert.Equal(t, tt.form.Placa, form.Placa, "plate untouched on failure")
		})
	}
}

func TestValidateVehicleNormalizesPlate(t *testing.T) {
	t.Parallel()

	form := vehicle.Vehicle{Placa: "abc1d23", Marca: "Fiat", Modelo: "Uno", Ano: "2023", Cor: "Azul"}
	require.NoError(t, ValidateVehicle(&form))
	assert.Equal(t, "ABC1D23", form.Placa)
}

func TestValidateCredentials(t *testing.T) {
	t.Parallel()

	assert.Equal(t, MsgRequiredFields, Message(ValidateCredentials(Credentials{Email: "", Senha: "x"})))
	assert.Equal(t, MsgRequiredFields, Message(ValidateCredentials(Credentials{Email: "bad", Senha: ""})))
	assert.Equal(t, MsgInvalidEmail, Message(ValidateCredentials(Credentials{Email: "bad", Senha: "x"})))
	assert.NoError(t, ValidateCredentials(Credentials{Email: "a@b.c", Senha: "x"}))
	assert.Empty(t, Message(nil))
}
