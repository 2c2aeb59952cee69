package models

import "fmt"

const (
	hoursPerDay    = 24
	minutesPerHour = 60
)

// Clock is a 24-hour wall-clock time. The zero value is 00:00.
//
// A Clock is always normalized: minute overflow is folded into the hour and
// the hour wraps at midnight. Negative components are clamped to zero before
// folding, so NewClock(-1, 30) is 00:30.
type Clock struct {
	hour   int
	minute int
}

// NewClock creates a normalized Clock from raw hour and minute values.
func NewClock(hour, minute int) Clock {
	var c Clock
	c.SetTime(hour, minute)
	return c
}

// SetTime normalizes hour and minute and stores them in place.
func (c *Clock) SetTime(hour, minute int) {
	if hour < 0 {
		hour = 0
	}
	if minute < 0 {
		minute = 0
	}

	hour += minute / minutesPerHour
	c.minute = minute % minutesPerHour
	c.hour = hour % hoursPerDay
}

// Hour returns the hour in [0,23].
func (c Clock) Hour() int {
	return c.hour
}

// Minute returns the minute in [0,59].
func (c Clock) Minute() int {
	return c.minute
}

// Minutes returns the number of minutes since midnight.
func (c Clock) Minutes() int {
	return c.hour*minutesPerHour + c.minute
}

// IsZero reports whether the clock reads 00:00.
func (c Clock) IsZero() bool {
	return c.hour == 0 && c.minute == 0
}

// Combine returns the normalized sum of both clocks. Neither operand is modified.
func (c Clock) Combine(other Clock) Clock {
	return NewClock(c.hour+other.hour, c.minute+other.minute)
}

// Compare orders clocks by hour, then minute. It returns -1, 0 or 1.
func (c Clock) Compare(other Clock) int {
	switch {
	case c.hour < other.hour:
		return -1
	case c.hour > other.hour:
		return 1
	case c.minute < other.minute:
		return -1
	case c.minute > other.minute:
		return 1
	}
	return 0
}

// Before reports whether c is strictly earlier than other.
func (c Clock) Before(other Clock) bool {
	return c.Compare(other) < 0
}

// After reports whether c is strictly later than other.
func (c Clock) After(other Clock) bool {
	return c.Compare(other) > 0
}

// String formats the clock as zero-padded HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.hour, c.minute)
}

// MarshalText implements encoding.TextMarshaler so clocks encode as "HH:MM".
func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
