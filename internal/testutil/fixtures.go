package testutil

import "github.com/mobil-koeln/dispatch-cli/internal/models"

// Sample departures for tests. Each call returns fresh values, so tests may
// modify them freely.

// SampleStationTime is the station time the sample departures are meant for
var SampleStationTime = models.NewClock(4, 20)

// OsloDeparture returns L3 to Oslo at 05:04 from track 4, train 50
func OsloDeparture() *models.TrainDeparture {
	return models.NewTrainDeparture(5, 4, "L3", "Oslo", 4, 50)
}

// GjovikDeparture returns L5 to Gjøvik at 18:15 from track 14, train 55
func GjovikDeparture() *models.TrainDeparture {
	return models.NewTrainDeparture(18, 15, "L5", "Gjøvik", 14, 55)
}

// UnassignedDeparture returns L1 to Hamar at 06:00 without a track, train 61
func UnassignedDeparture() *models.TrainDeparture {
	return models.NewTrainDeparture(6, 0, "L1", "Hamar", models.NoTrack, 61)
}

// SampleDepartures returns the Oslo and Gjøvik departures
func SampleDepartures() []*models.TrainDeparture {
	return []*models.TrainDeparture{OsloDeparture(), GjovikDeparture()}
}
