package tui

import "time"

// autoAdvanceTickMsg moves the station clock one minute while auto-advance is on.
// Ticks from an earlier on/off cycle carry a stale id and are dropped.
type autoAdvanceTickMsg struct {
	id int
	at time.Time
}
