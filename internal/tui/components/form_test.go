package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/frota/internal/theme"
	"github.com/alexisbeaulieu97/frota/internal/vehicle"
)

func typeInto(f *VehicleForm, text string) {
	for _, r := range text {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestVehicleFormUppercasesPlate(t *testing.T) {
	f := NewVehicleForm()
	require.Equal(t, FieldPlaca, f.Focused())

	typeInto(&f, "abc-1234")
	assert.Equal(t, "ABC-1234", f.Value(FieldPlaca))
}

func TestVehicleFormOnlyUppercasesPlate(t *testing.T) {
	f := NewVehicleForm()
	f.Next()
	f.Next()
	require.Equal(t, FieldModelo, f.Focused())

	typeInto(&f, "onix plus")
	assert.Equal(t, "onix plus", f.Value(FieldModelo))
}

func TestFormFocusWraps(t *testing.T) {
	f := NewVehicleForm()
	f.Prev()
	assert.Equal(t, FieldCor, f.Focused())
	f.Next()
	assert.Equal(t, FieldPlaca, f.Focused())
}

func TestCycleBrand(t *testing.T) {
	f := NewVehicleForm()

	f.CycleBrand()
	assert.Equal(t, vehicle.Brands[0], f.Value(FieldMarca))
	f.CycleBrand()
	assert.Equal(t, vehicle.Brands[1], f.Value(FieldMarca))

	f.SetValue(FieldMarca, "volkswagen")
	f.CycleBrand()
	assert.Equal(t, vehicle.Brands[0], f.Value(FieldMarca), "wraps after the last brand")

	f.SetValue(FieldMarca, "Lada")
	f.CycleBrand()
	assert.Equal(t, vehicle.Brands[0], f.Value(FieldMarca))
}

func TestVehicleFormRoundTrip(t *testing.T) {
	v := vehicle.Vehicle{ID: "7", Placa: "ABC1D23", Marca: "Fiat", Modelo: "Uno", Ano: "2010", Cor: "Azul"}

	f := NewVehicleForm()
	f.SetVehicle(v)
	assert.Equal(t, v.Fields(), f.Vehicle())
}

func TestLoginFormMasksPassword(t *testing.T) {
	f := NewLoginForm()
	for _, r := range "a@b.c" {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	f.Next()
	for _, r := range "segredo" {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	creds := f.Credentials()
	assert.Equal(t, "a@b.c", creds.Email)
	assert.Equal(t, "segredo", creds.Senha)
	assert.NotContains(t, f.View(NewStyles(theme.Light)), "segredo")
}

func TestVehicleListRendersWindow(t *testing.T) {
	s := NewStyles(theme.Dark)
	vs := []vehicle.Vehicle{
		{ID: "3", Marca: "Fiat", Modelo: "Uno", Placa: "AAA1111"},
		{ID: "2", Marca: "Ford", Modelo: "Ka", Placa: "BBB2222"},
		{ID: "1", Marca: "Jeep", Modelo: "Renegade", Placa: "CCC3333"},
	}

	out := VehicleList(s, vs, 2, 5, 60)
	assert.Contains(t, out, "Renegade")
	assert.NotContains(t, out, "Uno")
	assert.Contains(t, out, "3 de 3")

	assert.Contains(t, VehicleList(s, nil, 0, 20, 60), "Nenhum veículo encontrado.")
}

func TestPaletteFor(t *testing.T) {
	assert.Equal(t, lightPalette, PaletteFor(theme.Light))
	assert.Equal(t, darkPalette, PaletteFor(theme.Dark))
	assert.Equal(t, theme.Dark, NewStyles(theme.Dark).Theme)
}
