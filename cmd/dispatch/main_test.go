package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/mobil-koeln/dispatch-cli/internal/config"
	"github.com/mobil-koeln/dispatch-cli/internal/testutil"
)

// resetFlags clears flag variables left over from earlier executions.
func resetFlags() {
	flagColor, flagLogLevel, flagLogFile, flagTime = "", "", "", ""
	flagNoSeed = false
	flagDestination, flagAll, flagJSON = "", false, false
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DISPATCH_LOG_FILE", "")
	t.Setenv("DISPATCH_START_TIME", "")
	t.Setenv("DISPATCH_SEED", "")
	resetFlags()
	t.Cleanup(resetFlags)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestApplyFlags(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)

	flagColor = "always"
	flagLogLevel = "debug"
	flagNoSeed = true
	flagTime = "22:15"

	c := config.Default()
	testutil.AssertNil(t, applyFlags(&c))

	testutil.AssertEqual(t, c.Color, "always")
	testutil.AssertEqual(t, c.LogLevel, "debug")
	testutil.AssertFalse(t, c.Seed)
	testutil.AssertClock(t, c.StartTime, "22:15")
}

func TestApplyFlags_KeepsConfigWhenUnset(t *testing.T) {
	resetFlags()

	c := config.Default()
	c.Color = "never"
	testutil.AssertNil(t, applyFlags(&c))

	testutil.AssertEqual(t, c.Color, "never")
	testutil.AssertTrue(t, c.Seed)
	testutil.AssertTrue(t, c.StartTime.IsZero())
}

func TestApplyFlags_InvalidTime(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)

	flagTime = "25:00"
	c := config.Default()
	err := applyFlags(&c)

	testutil.AssertError(t, err)
	testutil.AssertContains(t, err.Error(), "--time")
}

func TestNewStation(t *testing.T) {
	st, err := newStation(config.Default())
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, st.Len(), 3)
	testutil.AssertClock(t, st.Clock(), "00:00")
}

func TestNewStation_StartTimeEvictsSeeds(t *testing.T) {
	c := config.Default()
	start, err := config.ParseClock("04:20")
	testutil.AssertNil(t, err)
	c.StartTime = start

	st, err := newStation(c)
	testutil.AssertNil(t, err)
	testutil.AssertClock(t, st.Clock(), "04:20")
	testutil.AssertFalse(t, st.Has(47))
	testutil.AssertEqual(t, st.Len(), 2)
}

func TestNewStation_NoSeed(t *testing.T) {
	c := config.Default()
	c.Seed = false

	st, err := newStation(c)
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, st.Len(), 0)
}

func TestBoardCommand(t *testing.T) {
	out, err := execute(t, "board", "--color", "never")
	testutil.AssertNil(t, err)

	testutil.AssertContains(t, out, "AVGANGER Departures")
	testutil.AssertContains(t, out, "00:00")

	// Hamar 03:59 comes first, Gjøvik 23:57 last
	hamar := strings.Index(out, "Hamar")
	lillehammer := strings.Index(out, "Lillehammer")
	gjovik := strings.Index(out, "Gjøvik")
	testutil.AssertTrue(t, hamar > 0)
	testutil.AssertTrue(t, hamar < lillehammer)
	testutil.AssertTrue(t, lillehammer < gjovik)
}

func TestBoardCommand_Time(t *testing.T) {
	out, err := execute(t, "board", "--color", "never", "--time", "23:30")
	testutil.AssertNil(t, err)

	testutil.AssertContains(t, out, "23:30")
	testutil.AssertContains(t, out, "Gjøvik")
	testutil.AssertNotContains(t, out, "Lillehammer")
	testutil.AssertNotContains(t, out, "Hamar")
}

func TestBoardCommand_Destination(t *testing.T) {
	out, err := execute(t, "board", "--color", "never", "--destination", "HAM")
	testutil.AssertNil(t, err)

	testutil.AssertContains(t, out, "Hamar")
	testutil.AssertContains(t, out, "Lillehammer")
	testutil.AssertNotContains(t, out, "Gjøvik")
}

func TestBoardCommand_NoSeed(t *testing.T) {
	out, err := execute(t, "board", "--color", "never", "--no-seed")
	testutil.AssertNil(t, err)

	testutil.AssertContains(t, out, "No departures found.")
}

func TestBoardCommand_JSON(t *testing.T) {
	out, err := execute(t, "board", "--json", "--time", "23:00")
	testutil.AssertNil(t, err)

	var doc struct {
		StationTime string `json:"stationTime"`
		Departures  []struct {
			TrainNumber   int    `json:"trainNumber"`
			Destination   string `json:"destination"`
			EffectiveTime string `json:"effectiveTime"`
			Track         *int   `json:"track"`
		} `json:"departures"`
	}
	testutil.AssertNil(t, json.Unmarshal([]byte(out), &doc))

	testutil.AssertEqual(t, doc.StationTime, "23:00")
	testutil.AssertLen(t, doc.Departures, 2)
	testutil.AssertEqual(t, doc.Departures[0].TrainNumber, 60)
	testutil.AssertEqual(t, doc.Departures[0].EffectiveTime, "23:18")
	testutil.AssertTrue(t, doc.Departures[0].Track != nil)
	testutil.AssertEqual(t, *doc.Departures[0].Track, 2)
	testutil.AssertEqual(t, doc.Departures[1].Destination, "Gjøvik")
}

func TestBoardCommand_JSONNoMatches(t *testing.T) {
	out, err := execute(t, "board", "--json", "--destination", "zzz")
	testutil.AssertNil(t, err)

	testutil.AssertContains(t, out, `"departures": []`)
	testutil.AssertNotContains(t, out, "null")
}

func TestBoardCommand_InvalidTime(t *testing.T) {
	_, err := execute(t, "board", "--time", "noon")

	testutil.AssertError(t, err)
}

func TestExitOnInterrupt_ReturnsWhenDone(t *testing.T) {
	sigChan := make(chan os.Signal, 1)
	done := make(chan struct{})
	returned := make(chan struct{})
	called := false

	go func() {
		exitOnInterrupt(sigChan, done, func() { called = true })
		close(returned)
	}()
	close(done)

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("watcher did not return after done was closed")
	}
	testutil.AssertFalse(t, called)
}

func TestExitOnInterrupt_Signal(t *testing.T) {
	sigChan := make(chan os.Signal, 1)
	sigChan <- os.Interrupt
	called := false

	exitOnInterrupt(sigChan, make(chan struct{}), func() { called = true })

	testutil.AssertTrue(t, called)
}
