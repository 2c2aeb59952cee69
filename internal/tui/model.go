package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mobil-koeln/dispatch-cli/internal/models"
	"github.com/mobil-koeln/dispatch-cli/internal/output"
	"github.com/mobil-koeln/dispatch-cli/internal/station"
)

// inputMode decides what key presses do
type inputMode int

const (
	modeBoard inputMode = iota
	modeTrack
	modeDelay
	modeTime
	modeSearch
	modeAdd
	modeConfirmRemove
)

const defaultAutoAdvanceInterval = 2 * time.Second

// Options configures the TUI
type Options struct {
	// Board supplies the line and destination length limits
	Board    output.BoardOptions
	MaxTrack int
	// AutoAdvanceInterval is the real time between simulated minutes
	AutoAdvanceInterval time.Duration
}

// Model is the root Bubble Tea model for the TUI.
type Model struct {
	station *station.Station
	opts    Options
	width   int
	height  int

	mode  inputMode
	input textinput.Model
	form  addForm

	cursor int

	// Destination filter, empty shows the time-filtered board
	searchQuery string

	autoAdvance bool
	// tickID identifies the live auto-advance tick chain
	tickID int

	status    string
	statusErr bool
}

// New creates a new TUI model driving st.
func New(st *station.Station, opts Options) Model {
	defaults := output.DefaultBoardOptions()
	if opts.Board.LineWidth <= 0 {
		opts.Board.LineWidth = defaults.LineWidth
	}
	if opts.Board.DestinationWidth <= 0 {
		opts.Board.DestinationWidth = defaults.DestinationWidth
	}
	if opts.MaxTrack <= 0 {
		opts.MaxTrack = output.DefaultMaxTrack
	}
	if opts.AutoAdvanceInterval <= 0 {
		opts.AutoAdvanceInterval = defaultAutoAdvanceInterval
	}

	ti := textinput.New()
	ti.CharLimit = 32
	ti.Width = 20

	return Model{
		station: st,
		opts:    opts,
		input:   ti,
		mode:    modeBoard,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// rows returns the departures currently listed on the board.
func (m Model) rows() []*models.TrainDeparture {
	if m.searchQuery != "" {
		return m.station.SearchDestination(m.searchQuery)
	}
	return m.station.Upcoming()
}

// clampCursor keeps the cursor inside the row list after it changed.
func (m *Model) clampCursor() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// setStatus shows an informational message in the status line.
func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

// setError shows an error message in the status line.
func (m *Model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}
