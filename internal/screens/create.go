package screens

import (
	"context"

	"github.com/alexisbeaulieu97/frota/internal/api"
	"github.com/alexisbeaulieu97/frota/internal/logger"
	"github.com/alexisbeaulieu97/frota/internal/validation"
	"github.com/alexisbeaulieu97/frota/internal/vehicle"
)

// Create submits new vehicles.
type Create struct {
	api    api.VehicleAPI
	logger *logger.Logger
}

// NewCreate creates a Create controller.
func NewCreate(client api.VehicleAPI, log *logger.Logger) *Create {
	return &Create{api: client, logger: log.With("screen", ScreenCreate.String())}
}

// Submit validates the draft, normalizes its plate and posts it. The returned
// vehicle carries the server-assigned ID on success.
func (c *Create) Submit(ctx context.Context, draft vehicle.Vehicle) (vehicle.Vehicle, Outcome) {
	draft.ID = ""
	if err := validation.ValidateVehicle(&draft); err != nil {
		return draft, failure(ScreenCreate, err, "")
	}

	created, err := c.api.Create(ctx, draft)
	if err != nil {
		c.logger.Error(ctx, "failed to create vehicle", "error", err, "placa", draft.Placa)
		return draft, failure(ScreenCreate, err, MsgCreateFailed)
	}

	c.logger.Info(ctx, "vehicle created", "id", created.ID.String(), "placa", created.Placa)
	return created, Outcome{Next: ScreenList, Message: MsgCreated}
}
