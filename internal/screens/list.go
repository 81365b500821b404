package screens

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/frota/internal/api"
	"github.com/alexisbeaulieu97/frota/internal/logger"
	"github.com/alexisbeaulieu97/frota/internal/vehicle"
)

// List owns the vehicle list shown by the listing screen. The list is
// replaced wholesale by every applied response. Overlapping refreshes are not
// coalesced: whichever response is applied last wins, regardless of which
// request was sent first. Responses that arrive while the screen is blurred
// are dropped.
type List struct {
	api    api.VehicleAPI
	logger *logger.Logger

	mu       sync.RWMutex
	active   bool
	vehicles []vehicle.Vehicle
}

// NewList creates a List controller.
func NewList(client api.VehicleAPI, log *logger.Logger) *List {
	return &List{api: client, logger: log.With("screen", ScreenList.String())}
}

// Focus marks the screen visible and refetches, as the navigation layer does
// every time the list is shown.
func (l *List) Focus(ctx context.Context) error {
	l.Activate()
	return l.Refresh(ctx)
}

// Activate marks the screen visible without fetching. Event-loop callers pair
// it with an asynchronous Fetch and Apply.
func (l *List) Activate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.active = true
}

// Blur marks the screen hidden. In-flight requests are not aborted.
func (l *List) Blur() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.active = false
}

// Active reports whether the screen is visible.
func (l *List) Active() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.active
}

// Refresh fetches and applies the list.
func (l *List) Refresh(ctx context.Context) error {
	vehicles, err := l.Fetch(ctx)
	l.Apply(ctx, vehicles, err)
	return err
}

// Fetch performs the request without touching screen state.
func (l *List) Fetch(ctx context.Context) ([]vehicle.Vehicle, error) {
	return l.api.List(ctx)
}

// Apply installs a fetched list, newest first. Records without an id are
// dropped. A failed fetch leaves the current list untouched. It reports
// whether the state changed.
func (l *List) Apply(ctx context.Context, vehicles []vehicle.Vehicle, err error) bool {
	if err != nil {
		l.logger.Error(ctx, "failed to load vehicles", "error", err)
		return false
	}

	next := make([]vehicle.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if !v.IsDraft() {
			next = append(next, v)
		}
	}
	vehicle.SortNewestFirst(next)

	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.active {
		l.logger.Debug(ctx, "discarding late response", "count", len(next))
		return false
	}
	l.vehicles = next
	return true
}

// Vehicles returns a copy of the current list.
func (l *List) Vehicles() []vehicle.Vehicle {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]vehicle.Vehicle, len(l.vehicles))
	copy(out, l.vehicles)
	return out
}

// Visible returns the current list filtered by the search term.
func (l *List) Visible(term string) []vehicle.Vehicle {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return vehicle.Filter(l.vehicles, term)
}
