package station

import "errors"

var (
	// ErrDepartureNotFound indicates no departure has the requested train number.
	ErrDepartureNotFound = errors.New("train departure not found")

	// ErrNoSelection indicates an operation needs a selected departure but none is.
	ErrNoSelection = errors.New("no train departure selected")

	// ErrTimeNotLater indicates a station time that does not move the clock forward.
	ErrTimeNotLater = errors.New("time must be later than current station time")
)
