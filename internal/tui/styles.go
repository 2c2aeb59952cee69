package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors matching the output/colors.go scheme
var (
	colorCyan    = lipgloss.Color("6")  // Cyan - lines
	colorYellow  = lipgloss.Color("3")  // Yellow - delays
	colorRed     = lipgloss.Color("1")  // Red - scheduled time of delayed trains, errors
	colorGreen   = lipgloss.Color("2")  // Green - selection, success
	colorMagenta = lipgloss.Color("5")  // Magenta - tracks
	colorWhite   = lipgloss.Color("15") // White - times, text
	colorGray    = lipgloss.Color("8")  // Gray - muted text
)

// Text styles
var (
	styleTime    = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleDelayed = lipgloss.NewStyle().Foreground(colorRed).Strikethrough(true)
	styleDelay   = lipgloss.NewStyle().Foreground(colorYellow)
	styleLine    = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	styleTrack   = lipgloss.NewStyle().Foreground(colorMagenta)
	styleMuted   = lipgloss.NewStyle().Foreground(colorGray)
	styleHeader  = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
)

// Board panel border
var stylePanel = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorCyan)

// Row under the cursor
var styleCursor = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)

// Selected departure marker and header
var styleSelected = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)

// Active chip in the toolbar, reverse-video style
var styleChipActive = lipgloss.NewStyle().
	Foreground(lipgloss.Color("0")).
	Background(colorCyan).
	Bold(true)

// Status bar at the bottom
var styleStatusBar = lipgloss.NewStyle().
	Foreground(colorGray).
	Background(lipgloss.Color("0"))

// Status messages
var (
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
)

// Logo/brand style
var styleLogo = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
