package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/mobil-koeln/dispatch-cli/internal/config"
	"github.com/mobil-koeln/dispatch-cli/internal/logger"
	"github.com/mobil-koeln/dispatch-cli/internal/menu"
	"github.com/mobil-koeln/dispatch-cli/internal/models"
	"github.com/mobil-koeln/dispatch-cli/internal/output"
	"github.com/mobil-koeln/dispatch-cli/internal/station"
	"github.com/mobil-koeln/dispatch-cli/internal/tui"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dispatch",
	Short: "Keep the departure board of a train station",
	Long: `dispatch keeps the departure board of a single train station.

An operator adds departures, assigns tracks and delays, searches by
destination and moves the station clock forward. Departures whose
departure time has passed leave the board.

Features:
  - Numbered text menu (the default)
  - Full-screen board with auto-advancing clock
  - One-shot board output as text or JSON

Quick Start:
  1. Start the menu:             dispatch
  2. Launch the TUI:             dispatch tui
  3. Print the board at 22:00:   dispatch board --time 22:00
  4. Search as JSON:             dispatch board --destination gjø --json`,
	Version:           config.Version,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Close()
	},
	RunE: runMenu,
}

// Global flags. Empty values leave the DISPATCH_* environment in effect.
var (
	flagColor    string
	flagLogLevel string
	flagLogFile  string
	flagTime     string
	flagNoSeed   bool
)

// Board flags
var (
	flagDestination string
	flagAll         bool
	flagJSON        bool
)

// cfg is the configuration after environment and flags are applied
var cfg config.Config

func init() {
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(boardCmd)

	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "", "Color output: auto, always, never (default from DISPATCH_COLOR, else auto)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (rotated)")
	rootCmd.PersistentFlags().StringVarP(&flagTime, "time", "t", "", "Start the station clock at this time (HH:MM)")
	rootCmd.PersistentFlags().BoolVar(&flagNoSeed, "no-seed", false, "Start with an empty station")

	boardCmd.Flags().StringVarP(&flagDestination, "destination", "d", "", "Only departures whose destination contains this text")
	boardCmd.Flags().BoolVarP(&flagAll, "all", "a", false, "Include departures missing a line, destination or track")
	boardCmd.Flags().BoolVar(&flagJSON, "json", false, "Output as JSON")
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the numbered text menu",
	Long: `Run the numbered text menu. This is what dispatch does without a
subcommand.

The menu reads one answer per line. Closing standard input exits.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive full-screen board",
	Long: `Launch an interactive full-screen departure board.

Keyboard:
  j/k or arrows  Navigate departures
  Enter          Select departure
  t / d          Assign track / delay to the selection
  a              Add departure
  x              Remove selection
  +              Move the station clock
  /              Search by destination (Esc clears)
  Space          Toggle auto-advance
  q              Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print the departure board",
	Long: `Print the departure board once and exit.

Departures missing a line, destination or track are left out of the
text board unless --all is given. JSON output lists every matching
departure.

Examples:
  dispatch board                      # Upcoming departures
  dispatch board --time 23:30         # Board at 23:30
  dispatch board --all                # Include incomplete departures
  dispatch board --destination ham    # Search by destination
  dispatch board --json               # Machine-readable output`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

// setup loads configuration, applies flags and starts logging.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := applyFlags(&loaded); err != nil {
		return err
	}
	cfg = loaded

	logger.SetLevel(cfg.LogLevel)
	if err := logger.Init(cfg.LogFile); err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	logger.Debugf("starting %s %s", cmd.Name(), config.Version)
	return nil
}

// applyFlags overrides configuration with the flags that were given.
func applyFlags(c *config.Config) error {
	if flagColor != "" {
		c.Color = flagColor
	}
	if flagLogLevel != "" {
		c.LogLevel = flagLogLevel
	}
	if flagLogFile != "" {
		c.LogFile = flagLogFile
	}
	if flagNoSeed {
		c.Seed = false
	}
	if flagTime != "" {
		start, err := config.ParseClock(flagTime)
		if err != nil {
			return fmt.Errorf("invalid --time: %w", err)
		}
		c.StartTime = start
	}
	return nil
}

// newStation builds the station described by c. Seeded departures before
// the start time leave as soon as the clock is moved.
func newStation(c config.Config) (*station.Station, error) {
	st := station.New()
	if c.Seed {
		st.Seed()
	}
	if !c.StartTime.IsZero() {
		evicted, err := st.AdvanceTime(c.StartTime.Hour(), c.StartTime.Minute())
		if err != nil {
			return nil, fmt.Errorf("failed to set station time: %w", err)
		}
		logger.Debugf("station clock set to %s, %d departure(s) left", st.Clock(), len(evicted))
	}
	return st, nil
}

// boardOptions returns board layout and colors for c.
func boardOptions(c config.Config) output.BoardOptions {
	return output.BoardOptions{
		Colors:           output.NewColors(output.ParseColorMode(c.Color)),
		LineWidth:        c.LineWidth,
		DestinationWidth: c.DestinationWidth,
	}
}

func runMenu(cmd *cobra.Command, args []string) error {
	st, err := newStation(cfg)
	if err != nil {
		return err
	}

	// Ctrl+C ends the menu even while it waits for a line
	sigChan := output.SetupSignalHandler()
	defer output.StopSignalHandler(sigChan)
	done := make(chan struct{})
	defer close(done)
	go exitOnInterrupt(sigChan, done, func() {
		logger.Infof("interrupted")
		_ = logger.Close()
		fmt.Println()
		os.Exit(130)
	})

	m := menu.New(st, os.Stdin, os.Stdout, menu.Options{
		Board:       boardOptions(cfg),
		MaxTrack:    cfg.MaxTrack,
		ClearScreen: isatty.IsTerminal(os.Stdout.Fd()),
	})
	return m.Run()
}

// exitOnInterrupt calls onInterrupt if a signal arrives before done is closed.
func exitOnInterrupt(sigChan <-chan os.Signal, done <-chan struct{}, onInterrupt func()) {
	select {
	case <-sigChan:
		onInterrupt()
	case <-done:
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	st, err := newStation(cfg)
	if err != nil {
		return err
	}

	model := tui.New(st, tui.Options{
		Board:    boardOptions(cfg),
		MaxTrack: cfg.MaxTrack,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runBoard(cmd *cobra.Command, args []string) error {
	st, err := newStation(cfg)
	if err != nil {
		return err
	}

	deps := st.Upcoming()
	if flagDestination != "" {
		deps = st.SearchDestination(flagDestination)
	}
	w := cmd.OutOrStdout()

	if flagJSON {
		return printPrettyJSON(w, boardJSON{StationTime: st.Clock(), Departures: deps})
	}

	opts := boardOptions(cfg)
	if !flagAll {
		output.RenderBoard(w, st.Clock(), deps, opts)
		return nil
	}

	// Incomplete departures are listed too, with TBA for a missing track
	output.RenderHeader(w, st.Clock(), opts)
	if len(deps) == 0 {
		_, _ = fmt.Fprintln(w, opts.Colors.Muted("No departures found."))
	}
	for _, dep := range deps {
		_, _ = fmt.Fprint(w, output.DescribeDeparture(dep, opts))
	}
	return nil
}

// boardJSON is the JSON document printed by the board command
type boardJSON struct {
	StationTime models.Clock             `json:"stationTime"`
	Departures  []*models.TrainDeparture `json:"departures"`
}

// printPrettyJSON outputs data as indented JSON
func printPrettyJSON(w io.Writer, data interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
