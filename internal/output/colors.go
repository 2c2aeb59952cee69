package output

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/mobil-koeln/dispatch-cli/internal/models"
)

// ColorMode represents the color output mode
type ColorMode int

const (
	// ColorAuto enables colors if output is a TTY
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on
	ColorAlways
	// ColorNever disables colors
	ColorNever
)

// Colors holds the color functions for different output types
type Colors struct {
	Time     func(format string, a ...interface{}) string
	Delayed  func(format string, a ...interface{}) string
	Delay    func(format string, a ...interface{}) string
	Line     func(format string, a ...interface{}) string
	Track    func(format string, a ...interface{}) string
	Dest     func(format string, a ...interface{}) string
	Header   func(format string, a ...interface{}) string
	Muted    func(format string, a ...interface{}) string
	Selected func(format string, a ...interface{}) string
	Success  func(format string, a ...interface{}) string
	Error    func(format string, a ...interface{}) string
	Emphasis func(format string, a ...interface{}) string
}

// NewColors creates a new Colors instance based on the color mode
func NewColors(mode ColorMode) *Colors {
	useColors := false
	switch mode {
	case ColorAlways:
		useColors = true
		color.NoColor = false // Force colors on
	case ColorNever:
		useColors = false
	case ColorAuto:
		useColors = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	if !useColors {
		noColor := func(format string, a ...interface{}) string {
			if len(a) == 0 {
				return format
			}
			return fmt.Sprintf(format, a...)
		}
		return &Colors{
			Time:     noColor,
			Delayed:  noColor,
			Delay:    noColor,
			Line:     noColor,
			Track:    noColor,
			Dest:     noColor,
			Header:   noColor,
			Muted:    noColor,
			Selected: noColor,
			Success:  noColor,
			Error:    noColor,
			Emphasis: noColor,
		}
	}

	return &Colors{
		Time:     color.New(color.FgHiWhite).SprintfFunc(),
		Delayed:  color.New(color.FgHiRed, color.CrossedOut).SprintfFunc(),
		Delay:    color.New(color.FgYellow).SprintfFunc(),
		Line:     color.New(color.FgCyan, color.Bold).SprintfFunc(),
		Track:    color.New(color.FgMagenta).SprintfFunc(),
		Dest:     color.New(color.FgHiWhite).SprintfFunc(),
		Header:   color.New(color.FgHiWhite, color.Bold).SprintfFunc(),
		Muted:    color.New(color.FgHiBlack).SprintfFunc(),
		Selected: color.New(color.FgGreen).SprintfFunc(),
		Success:  color.New(color.FgHiGreen).SprintfFunc(),
		Error:    color.New(color.FgRed).SprintfFunc(),
		Emphasis: color.New(color.FgRed, color.Underline).SprintfFunc(),
	}
}

// FormatDelay formats a delay as "+HH:MM", or an empty string when there is none
func (c *Colors) FormatDelay(delay models.Clock) string {
	if delay.IsZero() {
		return ""
	}
	return c.Delay("+%s", delay)
}

// ParseColorMode parses a color mode string
func ParseColorMode(s string) ColorMode {
	switch s {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}
