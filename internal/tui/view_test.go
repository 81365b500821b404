package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/frota/internal/screens"
)

func TestViewLoginScreen(t *testing.T) {
	f := newFixture(t)
	m := NewModel(f.opts)
	defer m.Close()

	view := m.View()
	assert.Contains(t, view, "Frota • Entrar")
	assert.Contains(t, view, "E-mail")
	assert.Contains(t, view, "Senha")
	assert.Contains(t, view, "☀ claro")
}

func TestViewListShowsCardsAndNotice(t *testing.T) {
	f := newFixture(t, fleet()...)
	m := login(t, NewModel(f.opts))
	defer m.Close()

	m.notice = notice{text: screens.MsgCreated}
	view := m.View()
	assert.Contains(t, view, "Veículos")
	assert.Contains(t, view, "Volkswagen Gol")
	assert.Contains(t, view, "GHI-5678")
	assert.Contains(t, view, screens.MsgCreated)
	assert.Contains(t, view, "🚗")
}

func TestViewListEmptyState(t *testing.T) {
	f := newFixture(t)
	m := login(t, NewModel(f.opts))
	defer m.Close()

	assert.Contains(t, m.View(), "Nenhum veículo encontrado.")
}

func TestViewShowsDeleteConfirmation(t *testing.T) {
	f := newFixture(t, fleet()...)
	m := login(t, NewModel(f.opts))
	defer m.Close()

	m = step(t, m, key("enter"))
	require.Equal(t, screens.ScreenEdit, m.Screen())
	m = step(t, m, key("ctrl+d"))

	view := m.View()
	assert.Contains(t, view, screens.MsgConfirmDelete)
	assert.Contains(t, view, "Excluir")
}

func TestViewFollowsThemeToggle(t *testing.T) {
	f := newFixture(t)
	m := NewModel(f.opts)
	defer m.Close()

	m = step(t, m, key("ctrl+t"))
	assert.Contains(t, m.View(), "☾ escuro")
}
