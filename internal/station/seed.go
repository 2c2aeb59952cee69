package station

import "github.com/mobil-koeln/dispatch-cli/internal/models"

// SeedDepartures returns the filler departures a fresh station starts with,
// so the board is not empty on first launch.
func SeedDepartures() []*models.TrainDeparture {
	return []*models.TrainDeparture{
		models.NewTrainDeparture(23, 18, "L1", "Lillehammer", 2, 60),
		models.NewTrainDeparture(23, 57, "F8", "Gjøvik", 2, 22),
		models.NewTrainDeparture(3, 59, "H3", "Hamar", 1, 47),
	}
}

// Seed adds the filler departures to s.
func (s *Station) Seed() {
	for _, dep := range SeedDepartures() {
		s.Add(dep)
	}
}
