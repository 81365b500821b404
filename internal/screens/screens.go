// Package screens holds the controllers behind each screen: they run the
// validation rules before any submission, call the vehicle API and decide
// which screen comes next. Rendering lives in internal/tui and cmd/frota.
package screens

import (
	"errors"

	"github.com/alexisbeaulieu97/frota/internal/validation"
	frotaerrors "github.com/alexisbeaulieu97/frota/pkg/errors"
)

// Screen identifies a navigation target.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenList
	ScreenCreate
	ScreenEdit
)

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenList:
		return "list"
	case ScreenCreate:
		return "create"
	case ScreenEdit:
		return "edit"
	default:
		return "unknown"
	}
}

// Messages shown after API calls.
const (
	MsgCreated       = "Veículo cadastrado!"
	MsgUpdated       = "Veículo atualizado"
	MsgDeleted       = "Veículo excluído!"
	MsgCreateFailed  = "Erro ao cadastrar"
	MsgSaveFailed    = "Falha ao salvar"
	MsgLoadFailed    = "Erro ao carregar dados"
	MsgDeleteFailed  = "Não foi possível excluir o veículo"
	MsgMissingID     = "ID do veículo não encontrado"
	MsgConfirmDelete = "Deseja mesmo excluir?"
)

// ErrMissingID is returned when an edit is requested without a vehicle ID.
var ErrMissingID = errors.New("vehicle id is required")

// Outcome is the result of a controller action.
type Outcome struct {
	Next    Screen
	Message string
	Err     error
}

// OK reports whether the action succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// IsValidation reports whether the action was rejected locally.
func (o Outcome) IsValidation() bool {
	var vErr *frotaerrors.ValidationError
	return errors.As(o.Err, &vErr)
}

// failure builds an Outcome for err, preferring the validation message when
// err was raised by the local rules.
func failure(next Screen, err error, fallback string) Outcome {
	msg := validation.Message(err)
	if msg == "" {
		msg = fallback
	}
	return Outcome{Next: next, Message: msg, Err: err}
}
