package tui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mobil-koeln/dispatch-cli/internal/config"
	"github.com/mobil-koeln/dispatch-cli/internal/models"
)

// addStep is the field the add form is asking for
type addStep int

const (
	addNumber addStep = iota
	addTime
	addLine
	addDestination
	addTrack
)

// addForm collects a new departure one field at a time
type addForm struct {
	step        addStep
	trainNumber int
	// pendingOverride is an existing train number entered once; entering
	// it again confirms the override
	pendingOverride int
	departure       models.Clock
	line            string
	destination     string
}

func (m Model) addPrompt() string {
	switch m.form.step {
	case addNumber:
		return "Train number: "
	case addTime:
		return "Departure (HH:MM): "
	case addLine:
		return fmt.Sprintf("Line (max %d): ", m.opts.Board.LineWidth)
	case addDestination:
		return fmt.Sprintf("Destination (max %d): ", m.opts.Board.DestinationWidth)
	case addTrack:
		return fmt.Sprintf("Track (1-%d, empty for unset): ", m.opts.MaxTrack)
	}
	return ""
}

func (m Model) startAdd() (tea.Model, tea.Cmd) {
	m.form = addForm{pendingOverride: models.InvalidTrainNumber}
	m.setStatus("Add train departure. Esc cancels.")
	return m.beginInput(modeAdd, "")
}

// submitAdd validates the current field and moves to the next one. The
// departure is stored once the last field is accepted.
func (m Model) submitAdd(value string) (tea.Model, tea.Cmd) {
	value = strings.TrimSpace(value)

	switch m.form.step {
	case addNumber:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			m.setError("Train number must be a positive number.")
			return m, nil
		}
		if m.station.Has(n) && m.form.pendingOverride != n {
			m.form.pendingOverride = n
			m.setError(fmt.Sprintf("Train number %d already exists. Enter it again to override.", n))
			m.input.SetValue("")
			return m, nil
		}
		m.form.trainNumber = n

	case addTime:
		c, err := config.ParseClock(value)
		if err != nil {
			m.setError("Enter the departure time as HH:MM.")
			return m, nil
		}
		m.form.departure = c

	case addLine:
		if !validText(value, m.opts.Board.LineWidth) {
			m.setError(fmt.Sprintf("Line must be 1 to %d characters.", m.opts.Board.LineWidth))
			return m, nil
		}
		m.form.line = value

	case addDestination:
		if !validText(value, m.opts.Board.DestinationWidth) {
			m.setError(fmt.Sprintf("Destination must be 1 to %d characters.", m.opts.Board.DestinationWidth))
			return m, nil
		}
		m.form.destination = value

	case addTrack:
		track := models.NoTrack
		if value != "" && value != "-1" {
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 || n > m.opts.MaxTrack {
				m.setError(fmt.Sprintf("Track must be between 1 and %d.", m.opts.MaxTrack))
				return m, nil
			}
			track = n
		}
		return m.finishAdd(track)
	}

	m.form.step++
	m.input.SetValue("")
	m.setStatus("")
	return m, nil
}

func (m Model) finishAdd(track int) (tea.Model, tea.Cmd) {
	f := m.form
	m.station.Add(models.NewTrainDeparture(
		f.departure.Hour(), f.departure.Minute(), f.line, f.destination, track, f.trainNumber,
	))
	m.endInput()
	m.clampCursor()
	m.setStatus(fmt.Sprintf("Train departure for %s with train number %d successfully added.", f.destination, f.trainNumber))
	return m, nil
}

// validText reports whether s is non-empty and at most maxLen runes.
func validText(s string, maxLen int) bool {
	return s != "" && utf8.RuneCountInString(s) <= maxLen
}
