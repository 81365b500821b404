package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/frota/internal/vehicle"
)

var icons = map[string]string{
	vehicle.DefaultIcon: "🚗",
}

// Icon returns the terminal glyph for a brand.
func Icon(brand string) string {
	if glyph, ok := icons[vehicle.BrandIcon(brand)]; ok {
		return glyph
	}
	return "•"
}

// VehicleCard renders one vehicle of the list.
func VehicleCard(s Styles, v vehicle.Vehicle, selected bool, width int) string {
	title := fmt.Sprintf("%s  %s %s", Icon(v.Marca), v.Marca, v.Modelo)
	details := fmt.Sprintf("Placa: %s   Ano: %s   Cor: %s", v.Placa, v.Ano, v.Cor)

	style := s.Card
	if selected {
		style = s.SelectedCard
	}
	if width > 8 {
		style = style.Width(width - 8)
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.Title.UnsetMarginBottom().Render(strings.TrimSpace(title)),
		s.Muted.Render(details),
	))
}

// VehicleList renders the visible window of cards around cursor.
func VehicleList(s Styles, vehicles []vehicle.Vehicle, cursor, height, width int) string {
	if len(vehicles) == 0 {
		return s.Muted.Render("Nenhum veículo encontrado.")
	}

	// a card takes five rows with its border and margin
	perPage := height / 5
	if perPage < 1 {
		perPage = 1
	}
	start := 0
	if cursor >= perPage {
		start = cursor - perPage + 1
	}
	end := start + perPage
	if end > len(vehicles) {
		end = len(vehicles)
	}

	cards := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		cards = append(cards, VehicleCard(s, vehicles[i], i == cursor, width))
	}
	if end < len(vehicles) || start > 0 {
		cards = append(cards, s.Muted.Render(fmt.Sprintf("%d de %d", cursor+1, len(vehicles))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}
