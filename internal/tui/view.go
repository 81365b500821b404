package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/frota/internal/screens"
	"github.com/alexisbeaulieu97/frota/internal/tui/components"
)

var screenTitles = map[screens.Screen]string{
	screens.ScreenLogin:  "Entrar",
	screens.ScreenList:   "Veículos",
	screens.ScreenCreate: "Novo veículo",
	screens.ScreenEdit:   "Editar veículo",
}

var screenHelp = map[screens.Screen]string{
	screens.ScreenLogin:  "tab próximo • enter entrar • ctrl+t tema • esc sair",
	screens.ScreenList:   "↑/↓ navegar • enter editar • / buscar • x limpar busca • n novo • r recarregar • ctrl+t tema • q sair",
	screens.ScreenCreate: "tab próximo • ctrl+b marca • ctrl+s salvar • ctrl+t tema • esc voltar",
	screens.ScreenEdit:   "tab próximo • ctrl+b marca • ctrl+s salvar • ctrl+d excluir • ctrl+t tema • esc voltar",
}

// View renders the current state of the model.
func (m Model) View() string {
	s := m.look.get()

	sections := []string{m.renderHeader(s)}
	if m.notice.text != "" {
		style := s.Success
		if m.notice.failure {
			style = s.Error
		}
		sections = append(sections, style.Render(m.notice.text))
	}

	if m.confirmDelete {
		sections = append(sections, m.renderConfirm(s))
	} else {
		sections = append(sections, m.renderBody(s))
	}
	sections = append(sections, s.Help.Render(screenHelp[m.screen]))

	return s.Screen.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderHeader(s components.Styles) string {
	indicator := "☀ claro"
	if s.Theme.IsDark() {
		indicator = "☾ escuro"
	}
	title := s.Title.Render("Frota • " + screenTitles[m.screen])
	if m.busy {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, " ", m.spinner.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "   ", s.Muted.Render(indicator))
}

func (m Model) renderBody(s components.Styles) string {
	switch m.screen {
	case screens.ScreenLogin:
		return m.loginForm.View(s)
	case screens.ScreenList:
		return m.renderList(s)
	default:
		return m.vehicleForm.View(s)
	}
}

func (m Model) renderList(s components.Styles) string {
	search := m.search.View()
	if !m.searching && m.search.Value() == "" {
		search = s.Muted.Render("/ para buscar")
	}

	// header, notice, search and help take roughly ten rows
	height := m.height - 10
	cards := components.VehicleList(s, m.visible(), m.cursor, height, m.width)
	return lipgloss.JoinVertical(lipgloss.Left, search, "", cards)
}

func (m Model) renderConfirm(s components.Styles) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.UnsetMarginBottom().Render(screens.MsgConfirmDelete),
		"",
		strings.Join([]string{
			s.Error.Render("[s] Excluir"),
			s.Muted.Render("[n] Cancelar"),
		}, "    "),
	)
	return s.Modal.Render(body)
}
