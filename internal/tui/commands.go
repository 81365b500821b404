package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/frota/internal/screens"
	"github.com/alexisbeaulieu97/frota/internal/vehicle"
)

// fetchCmd loads the vehicle list. Applying the result is left to Update so
// a response that arrives after the list lost focus is dropped there.
func fetchCmd(ctx context.Context, list *screens.List) tea.Cmd {
	return func() tea.Msg {
		vehicles, err := list.Fetch(ctx)
		return vehiclesLoadedMsg{vehicles: vehicles, err: err}
	}
}

func loadCmd(ctx context.Context, edit *screens.Edit, id vehicle.ID) tea.Cmd {
	return func() tea.Msg {
		record, outcome := edit.Load(ctx, id)
		return vehicleLoadedMsg{id: id, vehicle: record, outcome: outcome}
	}
}

func createCmd(ctx context.Context, create *screens.Create, draft vehicle.Vehicle) tea.Cmd {
	return func() tea.Msg {
		record, outcome := create.Submit(ctx, draft)
		return savedMsg{vehicle: record, outcome: outcome}
	}
}

func saveCmd(ctx context.Context, edit *screens.Edit, id vehicle.ID, form vehicle.Vehicle) tea.Cmd {
	return func() tea.Msg {
		record, outcome := edit.Save(ctx, id, form)
		return savedMsg{vehicle: record, outcome: outcome}
	}
}

func deleteCmd(ctx context.Context, edit *screens.Edit, id vehicle.ID) tea.Cmd {
	return func() tea.Msg {
		return deletedMsg{outcome: edit.Delete(ctx, id)}
	}
}
