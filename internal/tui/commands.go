package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// autoAdvanceTick returns a tea.Cmd that sends a tick for chain id after interval.
func autoAdvanceTick(id int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return autoAdvanceTickMsg{id: id, at: t}
	})
}
