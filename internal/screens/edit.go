package screens

import (
	"context"

	"github.com/alexisbeaulieu97/frota/internal/api"
	"github.com/alexisbeaulieu97/frota/internal/logger"
	"github.com/alexisbeaulieu97/frota/internal/validation"
	"github.com/alexisbeaulieu97/frota/internal/vehicle"
)

// Edit loads, updates and deletes persisted vehicles. A failed load sends the
// user back to the list; failed writes keep them on the edit screen so they
// can retry. Every call names its target id; the controller keeps no record of
// which vehicle is open.
type Edit struct {
	api    api.VehicleAPI
	logger *logger.Logger
}

// NewEdit creates an Edit controller.
func NewEdit(client api.VehicleAPI, log *logger.Logger) *Edit {
	return &Edit{api: client, logger: log.With("screen", ScreenEdit.String())}
}

// Load fetches the record that populates the form.
func (e *Edit) Load(ctx context.Context, id vehicle.ID) (vehicle.Vehicle, Outcome) {
	if id.IsZero() {
		return vehicle.Vehicle{}, Outcome{Next: ScreenList, Message: MsgMissingID, Err: ErrMissingID}
	}

	record, err := e.api.Get(ctx, id)
	if err != nil {
		e.logger.Error(ctx, "failed to load vehicle", "error", err, "id", id.String())
		return vehicle.Vehicle{}, Outcome{Next: ScreenList, Message: MsgLoadFailed, Err: err}
	}

	return record, Outcome{Next: ScreenEdit}
}

// Save validates the form and replaces the record stored under id.
func (e *Edit) Save(ctx context.Context, id vehicle.ID, form vehicle.Vehicle) (vehicle.Vehicle, Outcome) {
	if id.IsZero() {
		return form, Outcome{Next: ScreenList, Message: MsgMissingID, Err: ErrMissingID}
	}
	if err := validation.ValidateVehicle(&form); err != nil {
		return form, failure(ScreenEdit, err, "")
	}

	updated, err := e.api.Update(ctx, id, form)
	if err != nil {
		e.logger.Error(ctx, "failed to update vehicle", "error", err, "id", id.String())
		return form, failure(ScreenEdit, err, MsgSaveFailed)
	}

	e.logger.Info(ctx, "vehicle updated", "id", id.String())
	return updated, Outcome{Next: ScreenList, Message: MsgUpdated}
}

// Delete removes the record stored under id. Confirmation is the caller's
// concern.
func (e *Edit) Delete(ctx context.Context, id vehicle.ID) Outcome {
	if id.IsZero() {
		return Outcome{Next: ScreenList, Message: MsgMissingID, Err: ErrMissingID}
	}

	if err := e.api.Delete(ctx, id); err != nil {
		e.logger.Error(ctx, "failed to delete vehicle", "error", err, "id", id.String())
		return Outcome{Next: ScreenEdit, Message: MsgDeleteFailed, Err: err}
	}

	e.logger.Info(ctx, "vehicle deleted", "id", id.String())
	return Outcome{Next: ScreenList, Message: MsgDeleted}
}
