package fetcher

import (
	"fmt"
	"time"

	"github.com/railscope/railscope/pkg/ctrf"
)

// India's rough bounding box, used for synthesised coordinates.
const (
	mockLatMin = 8.0
	mockLatMax = 37.0
	mockLonMin = 68.0
	mockLonMax = 97.0
)

const mockMaxDelayMinutes = 45
const mockUpcomingStations = 3

// mockRecord synthesises a clearly labelled placeholder record for when no
// live data is obtainable.
func (f *Fetcher) mockRecord(trainNumber string, errorContext string) ctrf.RawStatusRecord {
	now := f.now()

	note := "Using mock data for demonstration"
	if errorContext != "" {
		note = fmt.Sprintf("Using mock data - %s", errorContext)
	}

	f.randMutex.Lock()
	delayMinutes := f.rand.Intn(mockMaxDelayMinutes + 1)
	currentStation := referenceStations[f.rand.Intn(len(referenceStations))]
	currentLat := mockLatMin + f.rand.Float64()*(mockLatMax-mockLatMin)
	currentLon := mockLonMin + f.rand.Float64()*(mockLonMax-mockLonMin)
	stationOrder := f.rand.Perm(len(referenceStations))
	f.randMutex.Unlock()

	var upcomingStations []string
	for _, index := range stationOrder[:mockUpcomingStations] {
		upcomingStations = append(upcomingStations, referenceStations[index])
	}

	return ctrf.RawStatusRecord{
		TrainNumber:    trainNumber,
		TrainName:      fmt.Sprintf("Express Train %s", trainNumber),
		CurrentStation: currentStation,
		CurrentLat:     currentLat,
		CurrentLon:     currentLon,

		ScheduledArrival: now.Format(time.RFC3339),
		ActualArrival:    now.Add(time.Duration(delayMinutes) * time.Minute).Format(time.RFC3339),

		UpcomingStations: upcomingStations,

		LastUpdated: now.Format(time.RFC3339),
		DataSource:  ctrf.DataSourceMock,
		Note:        note,
	}
}
