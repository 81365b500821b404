package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/frota/internal/screens"
	"github.com/alexisbeaulieu97/frota/internal/tui/components"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case vehiclesLoadedMsg:
		if m.screen == screens.ScreenList {
			m.busy = false
		}
		if msg.err != nil {
			m.list.Apply(m.ctx, nil, msg.err)
			if m.screen == screens.ScreenList {
				m.notice = notice{text: screens.MsgLoadFailed, failure: true}
			}
			return m, nil
		}
		if m.list.Apply(m.ctx, msg.vehicles, nil) {
			m.clampCursor()
		}
		return m, nil

	case vehicleLoadedMsg:
		if m.screen != screens.ScreenEdit || msg.id != m.editing {
			return m, nil
		}
		if !msg.outcome.OK() {
			cmd := m.settle(msg.outcome)
			return m, cmd
		}
		m.busy = false
		m.vehicleForm.SetVehicle(msg.vehicle)
		return m, nil

	case savedMsg:
		cmd := m.settle(msg.outcome)
		return m, cmd

	case deletedMsg:
		cmd := m.settle(msg.outcome)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress handles global keys, then dispatches on the screen.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+t":
		if m.theme != nil {
			m.theme.Toggle()
		}
		return m, nil
	}

	if m.confirmDelete {
		return m.handleConfirmKeys(msg)
	}

	switch m.screen {
	case screens.ScreenLogin:
		return m.handleLoginKeys(msg)
	case screens.ScreenList:
		return m.handleListKeys(msg)
	default:
		return m.handleFormKeys(msg)
	}
}

func (m Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "tab", "down":
		cmd := m.loginForm.Next()
		return m, cmd
	case "shift+tab", "up":
		cmd := m.loginForm.Prev()
		return m, cmd
	case "enter":
		if m.loginForm.Focused() != components.FieldSenha {
			cmd := m.loginForm.Next()
			return m, cmd
		}
		outcome := m.login.Submit(m.ctx, m.loginForm.Credentials())
		if !outcome.OK() {
			m.notice = notice{text: outcome.Message, failure: true}
			return m, nil
		}
		m.notice = notice{}
		cmd := m.navigate(outcome.Next, "")
		return m, cmd
	}
	cmd := m.loginForm.Update(msg)
	return m, cmd
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "esc", "enter", "up", "down":
			m.searching = false
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.cursor = 0
		return m, cmd
	}

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if n := len(m.visible()); n > 0 {
			m.cursor = (m.cursor - 1 + n) % n
		}
		return m, nil
	case "down", "j":
		if n := len(m.visible()); n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
		return m, nil
	case "/":
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd
	case "x":
		m.search.SetValue("")
		m.cursor = 0
		return m, nil
	case "n", "ctrl+n":
		m.notice = notice{}
		cmd := m.navigate(screens.ScreenCreate, "")
		return m, cmd
	case "r", "ctrl+r":
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, fetchCmd(m.ctx, m.list)
	case "enter":
		selected, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.notice = notice{}
		cmd := m.navigate(screens.ScreenEdit, selected.ID)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.notice = notice{}
		cmd := m.navigate(screens.ScreenList, "")
		return m, cmd
	case "tab", "down":
		cmd := m.vehicleForm.Next()
		return m, cmd
	case "shift+tab", "up":
		cmd := m.vehicleForm.Prev()
		return m, cmd
	case "ctrl+b":
		m.vehicleForm.CycleBrand()
		return m, nil
	case "ctrl+d":
		if m.screen == screens.ScreenEdit && !m.busy {
			m.confirmDelete = true
		}
		return m, nil
	case "enter":
		if m.vehicleForm.Focused() != components.FieldCor {
			cmd := m.vehicleForm.Next()
			return m, cmd
		}
		return m.submit()
	case "ctrl+s":
		return m.submit()
	}
	if m.busy {
		return m, nil
	}
	cmd := m.vehicleForm.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.busy = true
	m.notice = notice{}
	form := m.vehicleForm.Vehicle()
	if m.screen == screens.ScreenCreate {
		return m, createCmd(m.ctx, m.create, form)
	}
	return m, saveCmd(m.ctx, m.edit, m.editing, form)
}

func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s", "S", "y", "Y":
		m.confirmDelete = false
		m.busy = true
		return m, deleteCmd(m.ctx, m.edit, m.editing)
	case "n", "N", "esc":
		m.confirmDelete = false
	}
	return m, nil
}
