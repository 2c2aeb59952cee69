package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mobil-koeln/dispatch-cli/internal/models"
)

const (
	boardTitle = "AVGANGER Departures"
	trackTitle = "SPOR Track"

	// Track column fits a two-digit track or "TBA"
	trackWidth = 3

	// Gap between the track column and the train number
	numberGap = "          "

	// Shown instead of a track number when none is assigned
	TrackTBA = "TBA"
)

// DefaultMaxTrack is the highest track number operators may assign unless configured otherwise
const DefaultMaxTrack = 68

// BoardOptions configures board output
type BoardOptions struct {
	Colors           *Colors
	LineWidth        int
	DestinationWidth int
}

// DefaultBoardOptions returns uncolored options with the standard column widths
func DefaultBoardOptions() BoardOptions {
	return BoardOptions{
		Colors:           NewColors(ColorNever),
		LineWidth:        5,
		DestinationWidth: 16,
	}
}

func (o BoardOptions) colors() *Colors {
	if o.Colors == nil {
		return NewColors(ColorNever)
	}
	return o.Colors
}

// FormatDeparture renders dep as one board row with a trailing newline.
// Departures missing a line, destination or track render as an empty
// string and so never appear on the board.
func FormatDeparture(dep *models.TrainDeparture, opts BoardOptions) string {
	if dep == nil || !dep.IsValid() {
		return ""
	}
	return DescribeDeparture(dep, opts)
}

// DescribeDeparture renders dep in the board row layout regardless of
// validity. An unassigned track is shown as TBA.
func DescribeDeparture(dep *models.TrainDeparture, opts BoardOptions) string {
	if dep == nil {
		return ""
	}
	c := opts.colors()

	var b strings.Builder

	// Time column is always 11 wide: "HH:MM" plus either padding or the effective time
	scheduled := dep.DepartureTime().String()
	if dep.IsDelayed() {
		b.WriteString(c.Delayed("%s", scheduled))
		b.WriteString(" ")
		b.WriteString(c.Time("%s", dep.EffectiveTime()))
	} else {
		b.WriteString(c.Time("%s", scheduled))
		b.WriteString("      ")
	}

	b.WriteString(" ")
	b.WriteString(c.Line("%s", pad(dep.Line(), opts.LineWidth)))
	b.WriteString(" ")
	b.WriteString(c.Dest("%s", pad(dep.Destination(), opts.DestinationWidth)))
	b.WriteString(" ")

	if track, ok := dep.Track(); ok {
		b.WriteString(c.Track("%s", pad(fmt.Sprint(track), trackWidth)))
	} else {
		b.WriteString(c.Muted("%s", TrackTBA))
	}

	b.WriteString(numberGap)
	b.WriteString(c.Muted("%d", dep.TrainNumber()))
	b.WriteString("\n")

	return b.String()
}

// RenderHeader writes the board title line with the station clock
func RenderHeader(w io.Writer, clock models.Clock, opts BoardOptions) {
	c := opts.colors()

	// Align "SPOR Track" with the track column
	titleWidth := 11 + 1 + opts.LineWidth + 1 + opts.DestinationWidth + 1
	_, _ = fmt.Fprintf(w, "%s%s   %s\n",
		c.Header("%s", pad(boardTitle, titleWidth)),
		c.Header("%s", trackTitle),
		c.Time("%s", clock),
	)
}

// RenderBoard writes the header followed by one row per valid departure.
// Callers pass departures already sorted and filtered.
func RenderBoard(w io.Writer, clock models.Clock, departures []*models.TrainDeparture, opts BoardOptions) {
	RenderHeader(w, clock, opts)
	RenderDepartures(w, departures, opts)
}

// RenderDepartures writes one row per valid departure, or a notice when
// none would be shown.
func RenderDepartures(w io.Writer, departures []*models.TrainDeparture, opts BoardOptions) {
	shown := 0
	for _, dep := range departures {
		row := FormatDeparture(dep, opts)
		if row == "" {
			continue
		}
		_, _ = fmt.Fprint(w, row)
		shown++
	}

	if shown == 0 {
		_, _ = fmt.Fprintln(w, opts.colors().Muted("No departures found."))
	}
}

// pad left-aligns s in a field of width runes, cutting it if longer.
func pad(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}
