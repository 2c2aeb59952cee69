package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderFilterBar renders the station clock with chips for the active
// destination search and auto-advance.
func (m Model) renderFilterBar() string {
	clock := styleHeader.Render("Station time ") + styleTime.Render(m.station.Clock().String())

	search := "All upcoming"
	if m.searchQuery != "" {
		search = "Destination: " + m.searchQuery
	}

	chips := []string{
		clock,
		m.renderChip(search, m.searchQuery != ""),
		m.renderChip("Auto-advance", m.autoAdvance),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, joinWithSpace(chips)...)
}

// renderChip renders a single chip, highlighted when active.
func (m Model) renderChip(label string, active bool) string {
	if active {
		return styleChipActive.Render("[" + label + "]")
	}
	return styleMuted.Render(" " + label + " ")
}

func joinWithSpace(parts []string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, p)
	}
	return out
}
