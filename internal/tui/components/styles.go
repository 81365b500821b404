package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/frota/internal/theme"
)

// Palette holds the semantic colours of one theme.
type Palette struct {
	Background    lipgloss.Color
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	Card          lipgloss.Color
	Accent        lipgloss.Color
	Danger        lipgloss.Color
	Success       lipgloss.Color
}

var (
	lightPalette = Palette{
		Background:    lipgloss.Color("#FFFFFF"),
		TextPrimary:   lipgloss.Color("#000000"),
		TextSecondary: lipgloss.Color("#333333"),
		Card:          lipgloss.Color("#F0F0F0"),
		Accent:        lipgloss.Color("#007AFF"),
		Danger:        lipgloss.Color("#DC3545"),
		Success:       lipgloss.Color("#28A745"),
	}

	darkPalette = Palette{
		Background:    lipgloss.Color("#0D0D0D"),
		TextPrimary:   lipgloss.Color("#FFFFFF"),
		TextSecondary: lipgloss.Color("#CCCCCC"),
		Card:          lipgloss.Color("#1A1A1A"),
		Accent:        lipgloss.Color("#B3B3B3"),
		Danger:        lipgloss.Color("#DC3545"),
		Success:       lipgloss.Color("#28A745"),
	}
)

// PaletteFor returns the palette of t.
func PaletteFor(t theme.Theme) Palette {
	if t.IsDark() {
		return darkPalette
	}
	return lightPalette
}

// Styles are the lipgloss styles every screen renders with.
type Styles struct {
	Theme   theme.Theme
	Palette Palette

	Screen       lipgloss.Style
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	Label        lipgloss.Style
	Muted        lipgloss.Style
	Help         lipgloss.Style
	Error        lipgloss.Style
	Success      lipgloss.Style
	Modal        lipgloss.Style
}

// NewStyles builds the styles for t.
func NewStyles(t theme.Theme) Styles {
	p := PaletteFor(t)

	return Styles{
		Theme:   t,
		Palette: p,

		Screen: lipgloss.NewStyle().
			Background(p.Background).
			Foreground(p.TextPrimary).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.TextPrimary).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(p.TextSecondary),

		Card: lipgloss.NewStyle().
			Background(p.Card).
			Foreground(p.TextPrimary).
			Padding(0, 2).
			MarginBottom(1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Card),

		SelectedCard: lipgloss.NewStyle().
			Background(p.Card).
			Foreground(p.TextPrimary).
			Padding(0, 2).
			MarginBottom(1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent),

		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.TextSecondary),

		Muted: lipgloss.NewStyle().
			Foreground(p.TextSecondary),

		Help: lipgloss.NewStyle().
			Foreground(p.TextSecondary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(p.Card).
			PaddingTop(1).
			MarginTop(1),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Danger),

		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Success),

		Modal: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Danger).
			Padding(1, 3).
			Align(lipgloss.Center),
	}
}
