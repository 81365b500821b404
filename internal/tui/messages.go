package tui

import (
	"github.com/alexisbeaulieu97/frota/internal/screens"
	"github.com/alexisbeaulieu97/frota/internal/vehicle"
)

// vehiclesLoadedMsg carries one list fetch.
type vehiclesLoadedMsg struct {
	vehicles []vehicle.Vehicle
	err      error
}

// vehicleLoadedMsg carries the record opened on the edit screen.
type vehicleLoadedMsg struct {
	id      vehicle.ID
	vehicle vehicle.Vehicle
	outcome screens.Outcome
}

// savedMsg reports a create or update submission.
type savedMsg struct {
	vehicle vehicle.Vehicle
	outcome screens.Outcome
}

// deletedMsg reports a delete submission.
type deletedMsg struct {
	outcome screens.Outcome
}

// notice is the banner shown under the header.
type notice struct {
	text    string
	failure bool
}
