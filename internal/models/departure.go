package models

import "encoding/json"

// Sentinels for unset integer fields.
const (
	// NoTrack marks a departure whose track has not been announced yet
	NoTrack = -1
	// InvalidTrainNumber marks a departure without a usable train number
	InvalidTrainNumber = -1
)

// TrainDeparture is one scheduled departure from the station together with
// its operational state (track and delay).
type TrainDeparture struct {
	departureTime Clock
	delay         Clock
	line          string
	destination   string
	track         int
	trainNumber   int
}

// NewTrainDeparture creates a departure scheduled at hour:minute.
// The delay starts at 00:00. Non-positive track or train numbers are stored
// as NoTrack and InvalidTrainNumber.
func NewTrainDeparture(hour, minute int, line, destination string, track, trainNumber int) *TrainDeparture {
	d := &TrainDeparture{
		departureTime: NewClock(hour, minute),
		line:          line,
		destination:   destination,
		trainNumber:   InvalidTrainNumber,
	}
	d.SetTrack(track)
	if trainNumber > 0 {
		d.trainNumber = trainNumber
	}
	return d
}

// DepartureTime returns the scheduled departure time.
func (d *TrainDeparture) DepartureTime() Clock {
	return d.departureTime
}

// Delay returns the current delay.
func (d *TrainDeparture) Delay() Clock {
	return d.delay
}

// IsDelayed reports whether a non-zero delay is set.
func (d *TrainDeparture) IsDelayed() bool {
	return !d.delay.IsZero()
}

// EffectiveTime returns the scheduled time combined with the delay.
func (d *TrainDeparture) EffectiveTime() Clock {
	return d.departureTime.Combine(d.delay)
}

func (d *TrainDeparture) Line() string {
	return d.line
}

func (d *TrainDeparture) Destination() string {
	return d.destination
}

// Track returns the assigned track and whether one is assigned.
func (d *TrainDeparture) Track() (int, bool) {
	return d.track, d.track != NoTrack
}

func (d *TrainDeparture) TrainNumber() int {
	return d.trainNumber
}

// SetTrack assigns a track. Values <= 0 unassign it.
func (d *TrainDeparture) SetTrack(track int) {
	if track <= 0 {
		d.track = NoTrack
		return
	}
	d.track = track
}

// SetDelay replaces the delay. A negative component resets the whole
// delay to 00:00; otherwise the values are normalized like any Clock.
func (d *TrainDeparture) SetDelay(hour, minute int) {
	if hour < 0 || minute < 0 {
		d.delay = Clock{}
		return
	}
	d.delay = NewClock(hour, minute)
}

// IsValid reports whether the departure has everything a board row needs:
// a line, a destination and an assigned track.
func (d *TrainDeparture) IsValid() bool {
	return d.line != "" && d.destination != "" && d.track != NoTrack
}

// Compare orders departures by effective time. Departures leaving in the
// same minute compare equal whatever their other fields.
func (d *TrainDeparture) Compare(other *TrainDeparture) int {
	return d.EffectiveTime().Compare(other.EffectiveTime())
}

// departureJSON is the structured view of a departure for JSON output
type departureJSON struct {
	TrainNumber   int    `json:"trainNumber"`
	Line          string `json:"line"`
	Destination   string `json:"destination"`
	DepartureTime Clock  `json:"departureTime"`
	Delay         Clock  `json:"delay"`
	EffectiveTime Clock  `json:"effectiveTime"`
	Track         *int   `json:"track"`
}

// MarshalJSON encodes the departure with the track as null when unassigned.
func (d *TrainDeparture) MarshalJSON() ([]byte, error) {
	out := departureJSON{
		TrainNumber:   d.trainNumber,
		Line:          d.line,
		Destination:   d.destination,
		DepartureTime: d.departureTime,
		Delay:         d.delay,
		EffectiveTime: d.EffectiveTime(),
	}
	if track, ok := d.Track(); ok {
		out.Track = &track
	}
	return json.Marshal(out)
}
