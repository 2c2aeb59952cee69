// Package menu runs the numbered text menu an operator uses to manage the
// departures of one station.
package menu

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/mobil-koeln/dispatch-cli/internal/logger"
	"github.com/mobil-koeln/dispatch-cli/internal/models"
	"github.com/mobil-koeln/dispatch-cli/internal/output"
	"github.com/mobil-koeln/dispatch-cli/internal/prompt"
	"github.com/mobil-koeln/dispatch-cli/internal/station"
)

// Options configures the menu
type Options struct {
	Board    output.BoardOptions
	MaxTrack int
	// ClearScreen clears the terminal between screens
	ClearScreen bool
}

// Menu drives a station from line-oriented input
type Menu struct {
	station *station.Station
	prompt  *prompt.Prompter
	out     io.Writer
	colors  *output.Colors
	opts    Options
}

// New creates a menu reading from in and writing to out
func New(st *station.Station, in io.Reader, out io.Writer, opts Options) *Menu {
	colors := opts.Board.Colors
	if colors == nil {
		colors = output.NewColors(output.ColorNever)
		opts.Board.Colors = colors
	}
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
	return &Menu{
		station: st,
		prompt:  prompt.New(in, out, colors),
		out:     out,
		colors:  colors,
		opts:    opts,
	}
}

// Run shows the menu until the operator exits or input ends. End of input
// is a normal exit.
func (m *Menu) Run() error {
	m.clear()
	for {
		m.renderMainMenu()

		choice, err := m.prompt.Int(textEnterChoice, ChoiceView, ChoiceHelp)
		if err != nil {
			return m.stop(err)
		}
		if choice == ChoiceExit {
			m.println(m.colors.Header(textExit))
			return nil
		}

		logger.Debugf("menu choice %d", choice)
		if err := m.handle(choice); err != nil {
			return m.stop(err)
		}

		if err := m.prompt.WaitForEnter(); err != nil {
			return m.stop(err)
		}
		m.clear()
	}
}

func (m *Menu) stop(err error) error {
	if errors.Is(err, prompt.ErrInputClosed) {
		m.println("")
		m.println(m.colors.Header(textExit))
		return nil
	}
	return err
}

func (m *Menu) handle(choice int) error {
	switch choice {
	case ChoiceView:
		m.viewDepartures()
		return nil
	case ChoiceAdd:
		return m.addDeparture()
	case ChoiceRemove:
		return m.removeSelected()
	case ChoiceAssignTrack:
		return m.assignTrack()
	case ChoiceAssignDelay:
		return m.assignDelay()
	case ChoiceSelect:
		return m.selectByNumber()
	case ChoiceSearch:
		return m.searchByDestination()
	case ChoiceChangeTime:
		return m.changeTime()
	case ChoiceHelp:
		m.help()
		return nil
	}
	return fmt.Errorf("unknown menu choice %d", choice)
}

func (m *Menu) renderMainMenu() {
	m.println(m.colors.Header(textSelectedHeader))
	if dep, ok := m.station.Selected(); ok {
		m.print(m.colors.Selected("%s", m.describe(dep)))
	} else {
		m.println(textNoSelection)
	}
	m.println("")

	m.println(m.colors.Header(textTitle))
	m.println("")
	for _, opt := range menuOptions {
		m.println(fmt.Sprintf("%d. %s", opt.choice, opt.label))
	}
}

func (m *Menu) viewDepartures() {
	m.println("")
	output.RenderBoard(m.out, m.station.Clock(), m.station.Upcoming(), m.opts.Board)
	m.println("")
}

func (m *Menu) addDeparture() error {
	m.println(m.colors.Header(textAddTitle))

	trainNumber, ok, err := m.askTrainNumber()
	if err != nil || !ok {
		return err
	}

	hour, err := m.prompt.Int(textEnterDepHour, 0, 23)
	if err != nil {
		return err
	}
	minute, err := m.prompt.Int(textEnterDepMinute, 0, 59)
	if err != nil {
		return err
	}
	line, err := m.prompt.String(textEnterLine, m.opts.Board.LineWidth)
	if err != nil {
		return err
	}
	destination, err := m.prompt.String(textEnterDest, m.opts.Board.DestinationWidth)
	if err != nil {
		return err
	}
	track, err := m.prompt.Int(textEnterTrackUnset, models.NoTrack, m.opts.MaxTrack)
	if err != nil {
		return err
	}

	m.station.Add(models.NewTrainDeparture(hour, minute, line, destination, track, trainNumber))
	m.println(m.colors.Success(textAddedFormat, destination, trainNumber))
	return nil
}

// askTrainNumber asks for a train number, confirming before an existing
// departure is overridden. ok is false when the operator cancels.
func (m *Menu) askTrainNumber() (trainNumber int, ok bool, err error) {
	for {
		trainNumber, err = m.prompt.Int(textEnterNumber, 1, math.MaxInt32)
		if err != nil {
			return 0, false, err
		}
		if !m.station.Has(trainNumber) {
			return trainNumber, true, nil
		}

		m.println(m.colors.Error(textOverride))
		answer, err := m.prompt.String(textEnterChoice, prompt.Unlimited)
		if err != nil {
			return 0, false, err
		}
		switch answer {
		case "y", "Y":
			return trainNumber, true, nil
		case "-1":
			m.println(textCancelAdd)
			return 0, false, nil
		default:
			m.println(m.colors.Error(textTryAgain))
		}
	}
}

// selected returns the selected departure or reports that there is none.
func (m *Menu) selected() (*models.TrainDeparture, bool) {
	dep, ok := m.station.Selected()
	if !ok {
		m.println(m.colors.Error(textNoSelection))
	}
	return dep, ok
}

func (m *Menu) removeSelected() error {
	dep, ok := m.selected()
	if !ok {
		return nil
	}

	m.println(m.colors.Header(textRemoveTitle))
	m.print(m.describe(dep))

	confirmed, err := m.prompt.Confirm(textConfirmRemove)
	if err != nil {
		return err
	}
	if !confirmed {
		m.println(textNotRemoved)
		return nil
	}

	if err := m.station.RemoveSelected(); err != nil {
		return fmt.Errorf("remove selected departure: %w", err)
	}
	m.println(m.colors.Success(textRemoved))
	return nil
}

func (m *Menu) assignTrack() error {
	dep, ok := m.selected()
	if !ok {
		return nil
	}

	m.println(m.colors.Header(textTrackTitle))
	m.print(m.describe(dep))

	track, err := m.prompt.Int(textEnterTrack, 1, m.opts.MaxTrack)
	if err != nil {
		return err
	}
	dep.SetTrack(track)
	m.println(m.colors.Success(textTrackAssigned))
	return nil
}

func (m *Menu) assignDelay() error {
	dep, ok := m.selected()
	if !ok {
		return nil
	}

	m.println(m.colors.Header(textDelayTitle))
	m.print(m.describe(dep))

	hour, err := m.prompt.Int(textEnterHour, 0, 23)
	if err != nil {
		return err
	}
	minute, err := m.prompt.Int(textEnterMinute, 0, 59)
	if err != nil {
		return err
	}
	dep.SetDelay(hour, minute)
	m.println(m.colors.Success(textDelayAssigned))
	return nil
}

func (m *Menu) selectByNumber() error {
	m.println(m.colors.Header(textSelectTitle))

	trainNumber, err := m.prompt.Int(textEnterNumber, 1, math.MaxInt32)
	if err != nil {
		return err
	}

	if err := m.station.Select(trainNumber); err != nil {
		if errors.Is(err, station.ErrDepartureNotFound) {
			m.println(m.colors.Error(textNotFoundFormat, trainNumber))
			return nil
		}
		return err
	}

	dep, _ := m.station.Selected()
	m.println(m.colors.Success(textSelected))
	m.print(m.describe(dep))
	return nil
}

func (m *Menu) searchByDestination() error {
	m.println(m.colors.Header(textSearchTitle))

	query, err := m.prompt.String(textEnterDest, m.opts.Board.DestinationWidth)
	if err != nil {
		return err
	}

	matches := m.station.SearchDestination(query)
	if len(matches) == 0 {
		m.println(m.colors.Error(textNoneFoundFormat, query))
		return nil
	}

	m.println(m.colors.Success(textFound))
	for _, dep := range matches {
		m.print(m.describe(dep))
	}
	return nil
}

func (m *Menu) changeTime() error {
	m.println(m.colors.Header(textChangeTimeTitle))

	hour, err := m.prompt.Int(textEnterHour, 0, 23)
	if err != nil {
		return err
	}
	minute, err := m.prompt.Int(textEnterMinute, 0, 59)
	if err != nil {
		return err
	}

	evicted, err := m.station.AdvanceTime(hour, minute)
	if err != nil {
		if errors.Is(err, station.ErrTimeNotLater) {
			m.println(m.colors.Error(textTimeNotLater))
			return nil
		}
		return err
	}

	m.println(m.colors.Success(textTimeChangedFormat, m.station.Clock()))
	if len(evicted) > 0 {
		m.println(m.colors.Muted(textDepartedFormat, len(evicted)))
	}
	return nil
}

func (m *Menu) help() {
	m.clear()
	m.println(m.colors.Header(textHelpTitle))
	for _, line := range helpAbilities {
		m.println(line)
	}
	m.println("")
	m.println(m.colors.Header(textHelpModifyTitle))
	m.println(textHelpModifyLeadIn + m.colors.Emphasis(textHelpModifyEmphasis) + textHelpModifyRemainder)
	for _, line := range helpModifyLines {
		m.println(line)
	}
	m.println("")
}

func (m *Menu) describe(dep *models.TrainDeparture) string {
	return output.DescribeDeparture(dep, m.opts.Board)
}

func (m *Menu) clear() {
	if m.opts.ClearScreen {
		output.ClearScreen(m.out)
	}
}

func (m *Menu) print(s string) {
	_, _ = fmt.Fprint(m.out, s)
}

func (m *Menu) println(s string) {
	_, _ = fmt.Fprintln(m.out, s)
}
