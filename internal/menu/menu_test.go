package menu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mobil-koeln/dispatch-cli/internal/models"
	"github.com/mobil-koeln/dispatch-cli/internal/output"
	"github.com/mobil-koeln/dispatch-cli/internal/station"
	"github.com/mobil-koeln/dispatch-cli/internal/testutil"
)

// newTestStation returns a station at 04:20 with Oslo #50 and Gjøvik #55.
func newTestStation(t *testing.T) *station.Station {
	t.Helper()
	st := station.New()
	clock := testutil.SampleStationTime
	_, err := st.AdvanceTime(clock.Hour(), clock.Minute())
	testutil.AssertNil(t, err)
	for _, dep := range testutil.SampleDepartures() {
		st.Add(dep)
	}
	return st
}

// runMenu feeds the given lines to a menu and returns everything it wrote.
func runMenu(t *testing.T, st *station.Station, lines ...string) string {
	t.Helper()
	input := strings.Join(lines, "\n")
	if len(lines) > 0 {
		input += "\n"
	}

	var out bytes.Buffer
	m := New(st, strings.NewReader(input), &out, Options{})
	testutil.AssertNil(t, m.Run())
	return out.String()
}

func TestNew_DefaultMaxTrack(t *testing.T) {
	m := New(newTestStation(t), strings.NewReader(""), &bytes.Buffer{}, Options{})

	testutil.AssertEqual(t, m.opts.MaxTrack, output.DefaultMaxTrack)
}

func TestRun_Exit(t *testing.T) {
	out := runMenu(t, newTestStation(t), "9")

	testutil.AssertContains(t, out, "Train Dispatch System")
	testutil.AssertContains(t, out, "10. Help")
	testutil.AssertContains(t, out, "No train departure selected.")
	testutil.AssertContains(t, out, "Exiting application.")
}

func TestRun_EndOfInputExits(t *testing.T) {
	out := runMenu(t, newTestStation(t))

	testutil.AssertContains(t, out, "Exiting application.")
}

func TestRun_InvalidChoice(t *testing.T) {
	out := runMenu(t, newTestStation(t), "0", "11", "x", "9")

	testutil.AssertContains(t, out, "Please enter a number between 1 and 10.")
	testutil.AssertContains(t, out, "Exiting application.")
}

func TestRun_ClearScreen(t *testing.T) {
	var out bytes.Buffer
	m := New(newTestStation(t), strings.NewReader("9\n"), &out, Options{ClearScreen: true})

	testutil.AssertNil(t, m.Run())
	testutil.AssertContains(t, out.String(), "\033[2J")
}

func TestView(t *testing.T) {
	out := runMenu(t, newTestStation(t), "1", "", "9")

	testutil.AssertContains(t, out, "AVGANGER Departures")
	testutil.AssertContains(t, out, "04:20")
	testutil.AssertContains(t, out, "Oslo")
	testutil.AssertContains(t, out, "Gjøvik")
	testutil.AssertContains(t, out, "Press enter to continue...")
}

func TestView_HidesPastDepartures(t *testing.T) {
	st := newTestStation(t)
	st.Add(models.NewTrainDeparture(3, 0, "H3", "Hamar", 1, 47))

	out := runMenu(t, st, "1", "", "9")

	testutil.AssertNotContains(t, out, "Hamar")
}

func TestAdd(t *testing.T) {
	st := newTestStation(t)

	out := runMenu(t, st, "2", "60", "6", "30", "R10", "Hamar", "-1", "", "9")

	testutil.AssertContains(t, out, "Train departure for Hamar with train number 60 successfully added.")
	dep, ok := st.Get(60)
	testutil.AssertTrue(t, ok)
	testutil.AssertClock(t, dep.DepartureTime(), "06:30")
	testutil.AssertEqual(t, dep.Line(), "R10")
	_, hasTrack := dep.Track()
	testutil.AssertFalse(t, hasTrack)
}

func TestAdd_RejectsLongLine(t *testing.T) {
	st := newTestStation(t)

	out := runMenu(t, st, "2", "60", "6", "30", "REGIONAL", "R10", "Hamar", "2", "", "9")

	testutil.AssertContains(t, out, "maximum length of 5")
	dep, ok := st.Get(60)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, dep.Line(), "R10")
}

func TestAdd_Override(t *testing.T) {
	st := newTestStation(t)

	out := runMenu(t, st, "2", "50", "y", "6", "0", "L9", "Bergen", "3", "", "9")

	testutil.AssertContains(t, out, "Train number already exists.")
	dep, _ := st.Get(50)
	testutil.AssertEqual(t, dep.Destination(), "Bergen")
	testutil.AssertEqual(t, st.Len(), 2)
}

func TestAdd_Cancel(t *testing.T) {
	st := newTestStation(t)

	out := runMenu(t, st, "2", "50", "-1", "", "9")

	testutil.AssertContains(t, out, "Exiting procedure to add train departure.")
	dep, _ := st.Get(50)
	testutil.AssertEqual(t, dep.Destination(), "Oslo")
}

func TestAdd_RetryAfterDeclinedOverride(t *testing.T) {
	st := newTestStation(t)

	out := runMenu(t, st, "2", "50", "n", "61", "7", "0", "L1", "Hamar", "2", "", "9")

	testutil.AssertContains(t, out, "Please try again.")
	testutil.AssertTrue(t, st.Has(61))
	dep, _ := st.Get(50)
	testutil.AssertEqual(t, dep.Destination(), "Oslo")
}

func TestSelectAssignTrackAndDelay(t *testing.T) {
	st := newTestStation(t)

	out := runMenu(t, st,
		"6", "50", "",
		"4", "9", "",
		"5", "0", "20", "",
		"9",
	)

	testutil.AssertContains(t, out, "Train successfully selected.")
	testutil.AssertContains(t, out, "Track successfully assigned to train departure.")
	testutil.AssertContains(t, out, "Delay successfully assigned to train departure.")

	dep, _ := st.Get(50)
	track, _ := dep.Track()
	testutil.AssertEqual(t, track, 9)
	testutil.AssertClock(t, dep.Delay(), "00:20")
	testutil.AssertClock(t, dep.EffectiveTime(), "05:24")

	// The header shows the selection with both times once delayed
	testutil.AssertContains(t, out, "05:04 05:24 L3")
}

func TestSelect_Missing(t *testing.T) {
	out := runMenu(t, newTestStation(t), "6", "999", "", "9")

	testutil.AssertContains(t, out, "No train departure with number 999 found.")
}

func TestSelected_ShowsTBA(t *testing.T) {
	st := newTestStation(t)
	st.Add(testutil.UnassignedDeparture())

	out := runMenu(t, st, "6", "61", "", "9")

	testutil.AssertContains(t, out, "TBA")
}

func TestModifyWithoutSelection(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"remove", []string{"3", "", "9"}},
		{"track", []string{"4", "", "9"}},
		{"delay", []string{"5", "", "9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestStation(t)
			out := runMenu(t, st, tt.lines...)

			testutil.AssertContains(t, out, textSearchFirst)
			testutil.AssertEqual(t, st.Len(), 2)
		})
	}
}

func TestRemove(t *testing.T) {
	st := newTestStation(t)

	out := runMenu(t, st, "6", "50", "", "3", "y", "", "9")

	testutil.AssertContains(t, out, "Do you want to remove this train departure? (Y/n)")
	testutil.AssertContains(t, out, "Train departure successfully removed.")
	testutil.AssertFalse(t, st.Has(50))
	_, ok := st.Selected()
	testutil.AssertFalse(t, ok)
}

func TestRemove_Declined(t *testing.T) {
	st := newTestStation(t)

	out := runMenu(t, st, "6", "50", "", "3", "n", "", "9")

	testutil.AssertContains(t, out, "Not removing train departure.")
	testutil.AssertTrue(t, st.Has(50))
}

func TestSearch(t *testing.T) {
	out := runMenu(t, newTestStation(t), "7", "os", "", "9")

	testutil.AssertContains(t, out, "Train departure found:")
	testutil.AssertContains(t, out, "Oslo")
}

func TestSearch_NoMatch(t *testing.T) {
	out := runMenu(t, newTestStation(t), "7", "Bergen", "", "9")

	testutil.AssertContains(t, out, "No train departure found with destination Bergen.")
}

func TestChangeTime(t *testing.T) {
	st := newTestStation(t)

	out := runMenu(t, st, "8", "5", "10", "", "9")

	testutil.AssertContains(t, out, "Time changed successfully to 05:10")
	testutil.AssertContains(t, out, "1 departure(s) have left the station.")
	testutil.AssertClock(t, st.Clock(), "05:10")
	testutil.AssertFalse(t, st.Has(50))
	testutil.AssertTrue(t, st.Has(55))
}

func TestChangeTime_NotLater(t *testing.T) {
	st := newTestStation(t)

	out := runMenu(t, st, "8", "4", "0", "", "9")

	testutil.AssertContains(t, out, "Time must be later than current time.")
	testutil.AssertClock(t, st.Clock(), "04:20")
	testutil.AssertEqual(t, st.Len(), 2)
}

func TestHelp(t *testing.T) {
	out := runMenu(t, newTestStation(t), "10", "", "9")

	testutil.AssertContains(t, out, "In this program, you can:")
	testutil.AssertContains(t, out, "How to modify a train departure:")
	testutil.AssertContains(t, out, "you must first select it.")
}

func TestScenario(t *testing.T) {
	st := station.New()
	st.Seed()

	out := runMenu(t, st,
		"2", "50", "5", "4", "L3", "Oslo", "4", "",
		"8", "4", "20", "",
		"1", "",
		"9",
	)

	// Hamar 03:59 left when the clock moved to 04:20
	testutil.AssertContains(t, out, "1 departure(s) have left the station.")
	testutil.AssertFalse(t, st.Has(47))
	testutil.AssertEqual(t, st.Len(), 3)

	board := out[strings.LastIndex(out, "AVGANGER"):]
	testutil.AssertTrue(t, strings.Index(board, "Oslo") < strings.Index(board, "Lillehammer"))
	testutil.AssertTrue(t, strings.Index(board, "Lillehammer") < strings.Index(board, "Gjøvik"))
}
