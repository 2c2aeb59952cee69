package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mobil-koeln/dispatch-cli/internal/models"
	"github.com/mobil-koeln/dispatch-cli/internal/output"
)

// View renders the entire TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Layout: header + filter bar + board panel + selection + input + status
	header := renderHeader()
	filterBar := m.renderFilterBar()
	selected := m.renderSelected()
	inputLine := m.renderInputLine()
	statusLine := m.renderStatusLine()
	statusBar := m.renderStatusBar()

	fixed := lipgloss.Height(header) + lipgloss.Height(filterBar) + lipgloss.Height(selected) +
		lipgloss.Height(inputLine) + lipgloss.Height(statusLine) + lipgloss.Height(statusBar)
	panelHeight := m.height - fixed
	if panelHeight < 3 {
		panelHeight = 3
	}

	panelWidth := m.width - 2 // subtract border
	if panelWidth < 20 {
		panelWidth = 20
	}

	board := m.renderBoard(panelWidth, panelHeight-2)
	board = stylePanel.
		Width(panelWidth).
		Height(panelHeight - 2).
		Render(board)

	return lipgloss.JoinVertical(lipgloss.Left, header, filterBar, board, selected, inputLine, statusLine, statusBar)
}

// renderHeader renders the brand name.
func renderHeader() string {
	return styleLogo.Render("DISPATCH") + styleMuted.Render("  train departures")
}

// renderBoard renders the title row and the visible departure rows.
func (m Model) renderBoard(width, height int) string {
	titleWidth := 11 + 1 + m.opts.Board.LineWidth + 1 + m.opts.Board.DestinationWidth + 1
	title := styleHeader.Render("   " + padRight("AVGANGER Departures", titleWidth) + "SPOR Track")

	rows := m.rows()
	if len(rows) == 0 {
		if m.searchQuery != "" {
			return title + "\n" + styleMuted.Render(fmt.Sprintf(" No train departure found with destination %s.", m.searchQuery))
		}
		return title + "\n" + styleMuted.Render(" No departures found")
	}

	selectedNumber := models.InvalidTrainNumber
	if dep, ok := m.station.Selected(); ok {
		selectedNumber = dep.TrainNumber()
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")

	maxVisible := height - 1 // account for title
	if maxVisible < 1 {
		maxVisible = 1
	}
	start, end := visibleRange(m.cursor, len(rows), maxVisible)

	for i := start; i < end; i++ {
		dep := rows[i]
		line := m.renderDepartureLine(dep, i == m.cursor, dep.TrainNumber() == selectedNumber)
		b.WriteString(truncateStyled(line, width))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderDepartureLine renders a single departure in the board column layout.
func (m Model) renderDepartureLine(dep *models.TrainDeparture, cursor, selected bool) string {
	var timeStr string
	if dep.IsDelayed() {
		timeStr = styleDelayed.Render(dep.DepartureTime().String()) + " " + styleTime.Render(dep.EffectiveTime().String())
	} else {
		timeStr = styleTime.Render(dep.DepartureTime().String()) + "      "
	}

	lineStr := styleLine.Render(padRight(dep.Line(), m.opts.Board.LineWidth))
	destStr := padRight(dep.Destination(), m.opts.Board.DestinationWidth)

	trackStr := styleMuted.Render(output.TrackTBA)
	if track, ok := dep.Track(); ok {
		trackStr = styleTrack.Render(padRight(strconv.Itoa(track), 3))
	}

	entry := fmt.Sprintf("%s %s %s %s   %s",
		timeStr,
		lineStr,
		destStr,
		trackStr,
		styleMuted.Render(strconv.Itoa(dep.TrainNumber())),
	)

	marker := " "
	if selected {
		marker = styleSelected.Render("*")
	}
	if cursor {
		return styleCursor.Render(">") + marker + " " + entry
	}
	return " " + marker + " " + entry
}

// renderSelected renders the selected departure below the board.
func (m Model) renderSelected() string {
	label := styleSelected.Render("Selected: ")
	dep, ok := m.station.Selected()
	if !ok {
		return label + styleMuted.Render("No train departure selected.")
	}

	plain := output.DefaultBoardOptions()
	plain.LineWidth = m.opts.Board.LineWidth
	plain.DestinationWidth = m.opts.Board.DestinationWidth
	details := strings.TrimRight(output.DescribeDeparture(dep, plain), "\n")

	if dep.IsDelayed() {
		details += "  " + styleDelay.Render("+"+dep.Delay().String())
	}
	return label + details
}

// renderInputLine renders the prompt and text input while typing.
func (m Model) renderInputLine() string {
	if !m.typing() {
		return ""
	}
	return styleHeader.Render(m.inputPrompt()) + m.input.View()
}

func (m Model) inputPrompt() string {
	switch m.mode {
	case modeTrack:
		return fmt.Sprintf("Track (1-%d): ", m.opts.MaxTrack)
	case modeDelay:
		return "Delay (HH:MM): "
	case modeTime:
		return "New station time (HH:MM): "
	case modeSearch:
		return "Destination: "
	case modeAdd:
		return m.addPrompt()
	}
	return ""
}

// renderStatusLine renders the last status or error message.
func (m Model) renderStatusLine() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return styleError.Render(m.status)
	}
	return styleSuccess.Render(m.status)
}

// renderStatusBar renders context-aware keyboard hints at the bottom.
func (m Model) renderStatusBar() string {
	var hints string
	switch m.mode {
	case modeBoard:
		hints = "j/k:navigate  Enter:select  t:track  d:delay  a:add  x:remove  +:time  /:search  Space:auto  q:quit"
	case modeConfirmRemove:
		hints = "y:remove  any other key:keep"
	default:
		hints = "Enter:confirm  Esc:cancel  Ctrl+C:quit"
	}

	return styleStatusBar.Width(m.width).Render(" " + hints)
}

// visibleRange calculates the start and end indices for a scrollable list.
func visibleRange(cursor, total, maxVisible int) (int, int) {
	if total <= maxVisible {
		return 0, total
	}

	start := cursor - maxVisible/2
	if start < 0 {
		start = 0
	}
	end := start + maxVisible
	if end > total {
		end = total
		start = end - maxVisible
		if start < 0 {
			start = 0
		}
	}
	return start, end
}

// padRight left-aligns s in width runes, cutting it with "~" if longer.
func padRight(s string, width int) string {
	s = truncate(s, width)
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// truncate truncates a string to the given width in runes.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "~"
}

// truncateStyled cuts a styled line to width visible cells.
func truncateStyled(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
