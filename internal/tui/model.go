package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/frota/internal/logger"
	"github.com/alexisbeaulieu97/frota/internal/screens"
	"github.com/alexisbeaulieu97/frota/internal/theme"
	"github.com/alexisbeaulieu97/frota/internal/tui/components"
	"github.com/alexisbeaulieu97/frota/internal/vehicle"
)

// Options wires the screen controllers into the program.
type Options struct {
	Context context.Context
	Theme   *theme.Store
	Logger  *logger.Logger

	Login  *screens.Login
	List   *screens.List
	Create *screens.Create
	Edit   *screens.Edit

	// SkipLogin opens the list directly.
	SkipLogin bool
}

// Model is the bubbletea state of the fleet client.
type Model struct {
	ctx    context.Context
	logger *logger.Logger

	theme       *theme.Store
	look        *look
	unsubscribe func()

	login  *screens.Login
	list   *screens.List
	create *screens.Create
	edit   *screens.Edit

	screen      screens.Screen
	loginForm   components.LoginForm
	vehicleForm components.VehicleForm
	search      textinput.Model
	searching   bool
	cursor      int
	editing     vehicle.ID

	notice        notice
	confirmDelete bool
	busy          bool
	spinner       spinner.Model

	width  int
	height int
}

// NewModel builds the program state. The model follows the theme store
// until Close is called.
func NewModel(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	current := theme.Light
	if opts.Theme != nil {
		current = opts.Theme.Current()
	}
	l := newLook(current)
	unsubscribe := func() {}
	if opts.Theme != nil {
		unsubscribe = opts.Theme.Subscribe(l.apply)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	search := textinput.New()
	search.Prompt = "🔍 "
	search.Placeholder = "Buscar por marca, modelo, placa, cor ou ano"
	search.Cursor.SetMode(cursor.CursorStatic)

	m := Model{
		ctx:         ctx,
		logger:      opts.Logger,
		theme:       opts.Theme,
		look:        l,
		unsubscribe: unsubscribe,
		login:       opts.Login,
		list:        opts.List,
		create:      opts.Create,
		edit:        opts.Edit,
		screen:      screens.ScreenLogin,
		loginForm:   components.NewLoginForm(),
		vehicleForm: components.NewVehicleForm(),
		search:      search,
		spinner:     s,
		width:       80,
		height:      24,
	}
	if opts.SkipLogin {
		m.screen = screens.ScreenList
		m.list.Activate()
		m.busy = true
	}
	return m
}

// Init starts the spinner and, when the list is the first screen, its fetch.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.screen == screens.ScreenList {
		cmds = append(cmds, fetchCmd(m.ctx, m.list))
	}
	return tea.Batch(cmds...)
}

// Close detaches the model from the theme store.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Screen returns the screen on display.
func (m Model) Screen() screens.Screen {
	return m.screen
}

// visible returns the list filtered by the search term.
func (m Model) visible() []vehicle.Vehicle {
	return m.list.Visible(m.search.Value())
}

func (m Model) selected() (vehicle.Vehicle, bool) {
	visible := m.visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return vehicle.Vehicle{}, false
	}
	return visible[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// navigate switches screens. Leaving the list blurs it so a fetch still in
// flight is discarded; entering it starts a fresh fetch.
func (m *Model) navigate(next screens.Screen, id vehicle.ID) tea.Cmd {
	if m.screen == screens.ScreenList && next != screens.ScreenList {
		m.list.Blur()
		m.search.Blur()
		m.searching = false
	}
	m.screen = next
	m.confirmDelete = false

	switch next {
	case screens.ScreenList:
		m.list.Activate()
		m.busy = true
		return fetchCmd(m.ctx, m.list)
	case screens.ScreenCreate:
		m.vehicleForm = components.NewVehicleForm()
		m.busy = false
		return nil
	case screens.ScreenEdit:
		m.vehicleForm = components.NewVehicleForm()
		m.editing = id
		m.busy = true
		return loadCmd(m.ctx, m.edit, id)
	default:
		m.loginForm = components.NewLoginForm()
		m.busy = false
		return nil
	}
}

// settle shows the outcome and moves to the screen it names.
func (m *Model) settle(o screens.Outcome) tea.Cmd {
	m.busy = false
	if o.Message != "" {
		m.notice = notice{text: o.Message, failure: !o.OK()}
	}
	if o.Next == m.screen {
		return nil
	}
	return m.navigate(o.Next, "")
}
