package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mobil-koeln/dispatch-cli/internal/config"
	"github.com/mobil-koeln/dispatch-cli/internal/logger"
	"github.com/mobil-koeln/dispatch-cli/internal/models"
	"github.com/mobil-koeln/dispatch-cli/internal/station"
)

// Update handles all messages and key events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case autoAdvanceTickMsg:
		return m.handleAutoAdvanceTick(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Pass remaining messages to textinput while typing
	if m.typing() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// typing reports whether key presses go to the text input.
func (m Model) typing() bool {
	return m.mode != modeBoard && m.mode != modeConfirmRemove
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	switch m.mode {
	case modeBoard:
		return m.handleBoardKeys(msg)
	case modeConfirmRemove:
		return m.handleConfirmKeys(msg)
	}
	return m.handleInputKeys(msg)
}

func (m Model) handleBoardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.rows())-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "enter":
		rows := m.rows()
		if len(rows) == 0 {
			return m, nil
		}
		m.clampCursor()
		number := rows[m.cursor].TrainNumber()
		if err := m.station.Select(number); err != nil {
			m.setError(err.Error())
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Train %d selected.", number))
		return m, nil

	case "t":
		if !m.requireSelection() {
			return m, nil
		}
		return m.beginInput(modeTrack, "")

	case "d":
		if !m.requireSelection() {
			return m, nil
		}
		return m.beginInput(modeDelay, "")

	case "x":
		if !m.requireSelection() {
			return m, nil
		}
		dep, _ := m.station.Selected()
		m.mode = modeConfirmRemove
		m.setStatus(fmt.Sprintf("Remove train %d to %s? (y/n)", dep.TrainNumber(), dep.Destination()))
		return m, nil

	case "a":
		return m.startAdd()

	case "+":
		return m.beginInput(modeTime, "")

	case "/":
		return m.beginInput(modeSearch, m.searchQuery)

	case "esc":
		if m.searchQuery != "" {
			m.searchQuery = ""
			m.clampCursor()
			m.setStatus("Search cleared.")
		}
		return m, nil

	case " ", "space":
		m.autoAdvance = !m.autoAdvance
		m.tickID++
		if m.autoAdvance {
			m.setStatus("Auto-advance on.")
			return m, autoAdvanceTick(m.tickID, m.opts.AutoAdvanceInterval)
		}
		m.setStatus("Auto-advance off.")
		return m, nil
	}

	return m, nil
}

func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = modeBoard

	switch msg.String() {
	case "y", "Y":
		if err := m.station.RemoveSelected(); err != nil {
			m.setError(describeError(err))
			return m, nil
		}
		m.clampCursor()
		m.setStatus("Train departure successfully removed.")
		return m, nil
	}

	m.setStatus("Not removing train departure.")
	return m, nil
}

func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		cancelled := m.mode
		m.endInput()
		if cancelled == modeAdd {
			m.setStatus("Exiting procedure to add train departure.")
		} else {
			m.setStatus("")
		}
		return m, nil

	case "enter":
		value := m.input.Value()
		switch m.mode {
		case modeTrack:
			return m.submitTrack(value)
		case modeDelay:
			return m.submitDelay(value)
		case modeTime:
			return m.submitTime(value)
		case modeSearch:
			return m.submitSearch(value)
		case modeAdd:
			return m.submitAdd(value)
		}
		return m, nil
	}

	// Forward to textinput
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// beginInput switches to mode with the text input focused and holding value.
func (m Model) beginInput(mode inputMode, value string) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.input.SetValue(value)
	m.input.CursorEnd()
	cmd := m.input.Focus()
	return m, cmd
}

// endInput returns to board navigation.
func (m *Model) endInput() {
	m.mode = modeBoard
	m.input.Blur()
	m.input.SetValue("")
}

// requireSelection reports whether a departure is selected and shows an
// error in the status line when none is.
func (m *Model) requireSelection() bool {
	if _, ok := m.station.Selected(); ok {
		return true
	}
	m.setError("No train departure selected. Press enter on a row to select it.")
	return false
}

// selectedOrReset returns the selected departure. The selection can vanish
// while typing when auto-advance evicts it.
func (m *Model) selectedOrReset() (*models.TrainDeparture, bool) {
	dep, ok := m.station.Selected()
	if !ok {
		m.endInput()
		m.setError(describeError(station.ErrNoSelection))
	}
	return dep, ok
}

func (m Model) submitTrack(value string) (tea.Model, tea.Cmd) {
	track, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || track < 1 || track > m.opts.MaxTrack {
		m.setError(fmt.Sprintf("Track must be between 1 and %d.", m.opts.MaxTrack))
		return m, nil
	}
	dep, ok := m.selectedOrReset()
	if !ok {
		return m, nil
	}

	dep.SetTrack(track)
	m.endInput()
	m.setStatus(fmt.Sprintf("Track %d assigned to train %d.", track, dep.TrainNumber()))
	return m, nil
}

func (m Model) submitDelay(value string) (tea.Model, tea.Cmd) {
	delay, err := config.ParseClock(value)
	if err != nil {
		m.setError("Enter the delay as HH:MM.")
		return m, nil
	}
	dep, ok := m.selectedOrReset()
	if !ok {
		return m, nil
	}

	dep.SetDelay(delay.Hour(), delay.Minute())
	m.endInput()
	m.clampCursor()
	m.setStatus(fmt.Sprintf("Train %d now departs %s.", dep.TrainNumber(), dep.EffectiveTime()))
	return m, nil
}

func (m Model) submitTime(value string) (tea.Model, tea.Cmd) {
	next, err := config.ParseClock(value)
	if err != nil {
		m.setError("Enter the new station time as HH:MM.")
		return m, nil
	}

	evicted, err := m.station.AdvanceTime(next.Hour(), next.Minute())
	if err != nil {
		m.setError(describeError(err))
		return m, nil
	}

	m.endInput()
	m.clampCursor()
	m.setStatus(advanceStatus(m.station.Clock(), len(evicted)))
	return m, nil
}

func (m Model) submitSearch(value string) (tea.Model, tea.Cmd) {
	m.searchQuery = strings.TrimSpace(value)
	m.endInput()
	m.cursor = 0
	if m.searchQuery == "" {
		m.setStatus("Search cleared.")
	} else {
		m.setStatus(fmt.Sprintf("%d departure(s) to %q.", len(m.rows()), m.searchQuery))
	}
	return m, nil
}

func (m Model) handleAutoAdvanceTick(msg autoAdvanceTickMsg) (tea.Model, tea.Cmd) {
	if !m.autoAdvance || msg.id != m.tickID {
		return m, nil
	}

	next := m.station.Clock().Combine(models.NewClock(0, 1))
	evicted, err := m.station.AdvanceTime(next.Hour(), next.Minute())
	if err != nil {
		// Midnight wraps to 00:00, which is never later
		m.autoAdvance = false
		m.setError("Auto-advance stopped at the end of the day.")
		logger.Infof("auto-advance stopped at %s", m.station.Clock())
		return m, nil
	}

	m.clampCursor()
	if len(evicted) > 0 {
		m.setStatus(advanceStatus(m.station.Clock(), len(evicted)))
	}
	return m, autoAdvanceTick(m.tickID, m.opts.AutoAdvanceInterval)
}

func advanceStatus(clock models.Clock, evicted int) string {
	if evicted == 0 {
		return fmt.Sprintf("Time changed successfully to %s.", clock)
	}
	return fmt.Sprintf("Time changed successfully to %s. %d departure(s) have left the station.", clock, evicted)
}

// describeError turns station errors into operator-facing text.
func describeError(err error) string {
	switch {
	case errors.Is(err, station.ErrTimeNotLater):
		return "Time must be later than current time."
	case errors.Is(err, station.ErrNoSelection):
		return "No train departure selected."
	case errors.Is(err, station.ErrDepartureNotFound):
		return "Train departure not found."
	}
	return err.Error()
}
