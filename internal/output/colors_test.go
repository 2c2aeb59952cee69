package output

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/mobil-koeln/dispatch-cli/internal/models"
	"github.com/mobil-koeln/dispatch-cli/internal/testutil"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input string
		want  ColorMode
	}{
		{"always", ColorAlways},
		{"never", ColorNever},
		{"auto", ColorAuto},
		{"", ColorAuto},        // default
		{"invalid", ColorAuto}, // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseColorMode(tt.input)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestNewColors_NeverMode(t *testing.T) {
	oldNoColor := color.NoColor
	defer func() { color.NoColor = oldNoColor }()
	color.NoColor = true

	c := NewColors(ColorNever)

	testutil.AssertEqual(t, c.Time("05:04"), "05:04")
	testutil.AssertEqual(t, c.Delayed("04:30"), "04:30")
	testutil.AssertEqual(t, c.Delay("+00:20"), "+00:20")
	testutil.AssertEqual(t, c.Line("L3"), "L3")
	testutil.AssertEqual(t, c.Track("4"), "4")
	testutil.AssertEqual(t, c.Dest("Gjøvik"), "Gjøvik")
	testutil.AssertEqual(t, c.Header("AVGANGER"), "AVGANGER")
	testutil.AssertEqual(t, c.Muted("#50"), "#50")
	testutil.AssertEqual(t, c.Selected("selected"), "selected")
	testutil.AssertEqual(t, c.Success("done"), "done")
	testutil.AssertEqual(t, c.Error("failed"), "failed")
	testutil.AssertEqual(t, c.Emphasis("must"), "must")
}

func TestNewColors_AlwaysMode(t *testing.T) {
	oldNoColor := color.NoColor
	defer func() { color.NoColor = oldNoColor }()

	c := NewColors(ColorAlways)

	result := c.Time("05:04")
	testutil.AssertContains(t, result, "\033[")
	testutil.AssertContains(t, result, "05:04")

	result = c.Line("L3")
	testutil.AssertContains(t, result, "\033[")
	testutil.AssertContains(t, result, "L3")
}

func TestNewColors_DelayedIsStruckThrough(t *testing.T) {
	oldNoColor := color.NoColor
	defer func() { color.NoColor = oldNoColor }()

	c := NewColors(ColorAlways)

	// SGR 9 is crossed-out
	result := c.Delayed("04:30")
	testutil.AssertContains(t, result, ";9m")
	testutil.AssertEqual(t, stripANSI(result), "04:30")
}

func TestFormatDelay(t *testing.T) {
	oldNoColor := color.NoColor
	defer func() { color.NoColor = oldNoColor }()
	color.NoColor = true

	c := NewColors(ColorNever)

	tests := []struct {
		name  string
		delay models.Clock
		want  string
	}{
		{"no delay", models.NewClock(0, 0), ""},
		{"minutes", models.NewClock(0, 20), "+00:20"},
		{"hours", models.NewClock(2, 5), "+02:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, c.FormatDelay(tt.delay), tt.want)
		})
	}
}

func TestColors_Sprintf(t *testing.T) {
	oldNoColor := color.NoColor
	defer func() { color.NoColor = oldNoColor }()
	color.NoColor = true

	c := NewColors(ColorNever)

	testutil.AssertEqual(t, c.Time("%02d:%02d", 5, 4), "05:04")
	testutil.AssertEqual(t, c.Line("%-5s|", "L3"), "L3   |")
	testutil.AssertEqual(t, c.Track("%d", 4), "4")
}

// stripANSI removes SGR escape sequences.
func stripANSI(s string) string {
	var result strings.Builder
	inEscape := false

	for _, r := range s {
		if r == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}

	return result.String()
}
