// Package station keeps the departures of one station and the simulated
// station clock they are filtered against.
//
// A Station is not safe for concurrent use. Callers sharing one across
// goroutines must guard it with their own mutex.
package station

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/mobil-koeln/dispatch-cli/internal/logger"
	"github.com/mobil-koeln/dispatch-cli/internal/models"
)

// noSelection is the selection key when nothing is selected
const noSelection = models.InvalidTrainNumber

// Station owns all departures keyed by train number and the station clock.
type Station struct {
	departures map[int]*models.TrainDeparture
	clock      models.Clock
	// selected is a key into departures, re-resolved on every access
	selected int
}

// New creates an empty station with the clock at 00:00.
func New() *Station {
	return &Station{
		departures: make(map[int]*models.TrainDeparture),
		selected:   noSelection,
	}
}

// Add stores dep under its train number, replacing any departure with the
// same number. Nil departures and departures without a valid train number
// are ignored.
func (s *Station) Add(dep *models.TrainDeparture) {
	if dep == nil {
		return
	}
	number := dep.TrainNumber()
	if number == models.InvalidTrainNumber {
		logger.Warnf("ignoring departure to %q without train number", dep.Destination())
		return
	}

	if _, exists := s.departures[number]; exists {
		logger.Debugf("replacing departure %d", number)
	} else {
		logger.Debugf("adding departure %d to %s at %s", number, dep.Destination(), dep.DepartureTime())
	}
	s.departures[number] = dep
}

// Remove deletes the departure with the given train number and clears the
// selection if it pointed at it.
func (s *Station) Remove(trainNumber int) error {
	if _, ok := s.departures[trainNumber]; !ok {
		return fmt.Errorf("remove %d: %w", trainNumber, ErrDepartureNotFound)
	}
	delete(s.departures, trainNumber)
	if s.selected == trainNumber {
		s.selected = noSelection
	}
	logger.Infof("removed departure %d", trainNumber)
	return nil
}

// RemoveSelected deletes the currently selected departure.
func (s *Station) RemoveSelected() error {
	dep, ok := s.Selected()
	if !ok {
		return ErrNoSelection
	}
	return s.Remove(dep.TrainNumber())
}

// Get returns the departure with the given train number.
func (s *Station) Get(trainNumber int) (*models.TrainDeparture, bool) {
	dep, ok := s.departures[trainNumber]
	return dep, ok
}

// Has reports whether a departure with the given train number exists.
func (s *Station) Has(trainNumber int) bool {
	_, ok := s.departures[trainNumber]
	return ok
}

// Len returns the number of stored departures.
func (s *Station) Len() int {
	return len(s.departures)
}

// Select focuses the departure with the given train number. The current
// selection is kept when no such departure exists.
func (s *Station) Select(trainNumber int) error {
	if !s.Has(trainNumber) {
		return fmt.Errorf("select %d: %w", trainNumber, ErrDepartureNotFound)
	}
	s.selected = trainNumber
	logger.Debugf("selected departure %d", trainNumber)
	return nil
}

// Selected returns the selected departure, if any.
func (s *Station) Selected() (*models.TrainDeparture, bool) {
	if s.selected == noSelection {
		return nil, false
	}
	dep, ok := s.departures[s.selected]
	if !ok {
		s.selected = noSelection
	}
	return dep, ok
}

// Clock returns the current station time.
func (s *Station) Clock() models.Clock {
	return s.clock
}

// Sorted returns all departures ordered by effective departure time.
// Departures leaving in the same minute are ordered by train number.
func (s *Station) Sorted() []*models.TrainDeparture {
	deps := make([]*models.TrainDeparture, 0, len(s.departures))
	for _, dep := range s.departures {
		deps = append(deps, dep)
	}
	slices.SortFunc(deps, func(a, b *models.TrainDeparture) int {
		if c := a.Compare(b); c != 0 {
			return c
		}
		return cmp.Compare(a.TrainNumber(), b.TrainNumber())
	})
	return deps
}

// Upcoming returns the sorted departures whose effective time is not
// earlier than the station clock.
func (s *Station) Upcoming() []*models.TrainDeparture {
	sorted := s.Sorted()
	upcoming := make([]*models.TrainDeparture, 0, len(sorted))
	for _, dep := range sorted {
		if !dep.EffectiveTime().Before(s.clock) {
			upcoming = append(upcoming, dep)
		}
	}
	return upcoming
}

// SearchDestination returns the sorted departures whose destination
// contains query, ignoring case.
func (s *Station) SearchDestination(query string) []*models.TrainDeparture {
	needle := strings.ToLower(query)
	matches := make([]*models.TrainDeparture, 0)
	for _, dep := range s.Sorted() {
		if strings.Contains(strings.ToLower(dep.Destination()), needle) {
			matches = append(matches, dep)
		}
	}
	return matches
}

// AdvanceTime moves the station clock forward to hour:minute and evicts
// every departure whose effective time is now in the past. Evicted
// departures are gone for good; they are returned sorted so callers can
// report them.
//
// The clock only moves forward: a time that is not strictly later than the
// current one returns ErrTimeNotLater and changes nothing.
func (s *Station) AdvanceTime(hour, minute int) ([]*models.TrainDeparture, error) {
	next := models.NewClock(hour, minute)
	if !next.After(s.clock) {
		logger.Warnf("rejected station time %s (current %s)", next, s.clock)
		return nil, fmt.Errorf("advance to %s: %w", next, ErrTimeNotLater)
	}
	s.clock = next

	var evicted []*models.TrainDeparture
	for _, dep := range s.Sorted() {
		if !dep.EffectiveTime().Before(next) {
			continue
		}
		delete(s.departures, dep.TrainNumber())
		if s.selected == dep.TrainNumber() {
			s.selected = noSelection
		}
		evicted = append(evicted, dep)
	}

	logger.Infof("station clock advanced to %s, %d departure(s) left", next, len(evicted))
	return evicted, nil
}
