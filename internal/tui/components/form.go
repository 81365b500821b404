package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/frota/internal/validation"
	"github.com/alexisbeaulieu97/frota/internal/vehicle"
)

// Field is one labelled text input of a form.
type Field struct {
	Key   string
	Label string
	Input textinput.Model
}

// Form is an ordered set of fields with a single focused input.
type Form struct {
	fields []Field
	focus  int
}

func newField(key, label, placeholder string, limit int) Field {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Cursor.SetMode(cursor.CursorStatic)
	return Field{Key: key, Label: label, Input: in}
}

func newForm(fields ...Field) Form {
	f := Form{fields: fields}
	f.fields[0].Input.Focus()
	return f
}

// Focused returns the key of the focused field.
func (f Form) Focused() string {
	return f.fields[f.focus].Key
}

// Next moves focus to the following field, wrapping at the end.
func (f *Form) Next() tea.Cmd {
	return f.move(1)
}

// Prev moves focus to the previous field, wrapping at the start.
func (f *Form) Prev() tea.Cmd {
	return f.move(-1)
}

func (f *Form) move(delta int) tea.Cmd {
	f.fields[f.focus].Input.Blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	return f.fields[f.focus].Input.Focus()
}

// Update forwards msg to the focused input.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].Input, cmd = f.fields[f.focus].Input.Update(msg)
	return cmd
}

// Value returns the current text of the field named key.
func (f Form) Value(key string) string {
	for _, field := range f.fields {
		if field.Key == key {
			return field.Input.Value()
		}
	}
	return ""
}

// SetValue replaces the text of the field named key.
func (f *Form) SetValue(key, value string) {
	for i := range f.fields {
		if f.fields[i].Key == key {
			f.fields[i].Input.SetValue(value)
			return
		}
	}
}

// View renders the fields one per line with the focused label highlighted.
func (f Form) View(s Styles) string {
	var b strings.Builder
	for i, field := range f.fields {
		label := s.Label.Render(field.Label)
		if i == f.focus {
			label = s.Label.Foreground(s.Palette.Accent).Render("› " + field.Label)
		}
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, label, field.Input.View()))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Vehicle field keys.
const (
	FieldPlaca  = "placa"
	FieldMarca  = "marca"
	FieldModelo = "modelo"
	FieldAno    = "ano"
	FieldCor    = "cor"
)

// VehicleForm edits the five vehicle fields. The plate is upper-cased as it is
// typed.
type VehicleForm struct {
	Form
}

// NewVehicleForm builds an empty vehicle form focused on the plate.
func NewVehicleForm() VehicleForm {
	return VehicleForm{Form: newForm(
		newField(FieldPlaca, "Placa", "ABC1D23", 8),
		newField(FieldMarca, "Marca", "ctrl+b para escolher", 32),
		newField(FieldModelo, "Modelo", "Onix", 48),
		newField(FieldAno, "Ano", "2025", 4),
		newField(FieldCor, "Cor", "Prata", 24),
	)}
}

// Update forwards msg to the focused input and keeps the plate upper-case.
func (f *VehicleForm) Update(msg tea.Msg) tea.Cmd {
	cmd := f.Form.Update(msg)
	if f.Focused() == FieldPlaca {
		plate := f.Value(FieldPlaca)
		if upper := validation.NormalizePlate(plate); upper != plate {
			f.SetValue(FieldPlaca, upper)
		}
	}
	return cmd
}

// CycleBrand replaces the brand with the next catalogue entry.
func (f *VehicleForm) CycleBrand() {
	current := vehicle.CanonicalBrand(strings.TrimSpace(f.Value(FieldMarca)))
	next := vehicle.Brands[0]
	for i, brand := range vehicle.Brands {
		if brand == current {
			next = vehicle.Brands[(i+1)%len(vehicle.Brands)]
			break
		}
	}
	f.SetValue(FieldMarca, next)
}

// Vehicle returns the form contents as a record without id.
func (f VehicleForm) Vehicle() vehicle.Vehicle {
	return vehicle.Vehicle{
		Placa:  f.Value(FieldPlaca),
		Marca:  f.Value(FieldMarca),
		Modelo: f.Value(FieldModelo),
		Ano:    f.Value(FieldAno),
		Cor:    f.Value(FieldCor),
	}
}

// SetVehicle fills the form from v.
func (f *VehicleForm) SetVehicle(v vehicle.Vehicle) {
	f.SetValue(FieldPlaca, v.Placa)
	f.SetValue(FieldMarca, v.Marca)
	f.SetValue(FieldModelo, v.Modelo)
	f.SetValue(FieldAno, v.Ano)
	f.SetValue(FieldCor, v.Cor)
}

// Login field keys.
const (
	FieldEmail = "email"
	FieldSenha = "senha"
)

// LoginForm collects e-mail and password. The password is masked.
type LoginForm struct {
	Form
}

// NewLoginForm builds an empty login form focused on the e-mail.
func NewLoginForm() LoginForm {
	senha := newField(FieldSenha, "Senha", "••••••", 64)
	senha.Input.EchoMode = textinput.EchoPassword
	senha.Input.EchoCharacter = '•'
	return LoginForm{Form: newForm(
		newField(FieldEmail, "E-mail", "voce@empresa.com", 128),
		senha,
	)}
}

// Credentials returns the typed credentials.
func (f LoginForm) Credentials() validation.Credentials {
	return validation.Credentials{
		Email: f.Value(FieldEmail),
		Senha: f.Value(FieldSenha),
	}
}
