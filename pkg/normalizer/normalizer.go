package normalizer

import (
	"fmt"
	"math"
	"time"

	"github.com/railscope/railscope/pkg/ctrf"
	"github.com/railscope/railscope/pkg/util"
)

const maxNextStations = 3

// Reliability score deductions.
const (
	delayPenaltyPerMinute = 0.5
	delayPenaltyCap       = 30.0
	mockDataPenalty       = 20.0
	unknownStationPenalty = 15.0
)

// Normalize converts a raw status record into the canonical representation:
// delay classification, location, timing and a deterministic reliability
// score. Structural problems degrade to Unknown/clamped fields rather than
// failing.
func Normalize(raw ctrf.RawStatusRecord) ctrf.CanonicalStatusRecord {
	trainNumber := raw.TrainNumber
	if trainNumber == "" {
		trainNumber = "Unknown"
	}

	trainName := raw.TrainName
	if trainName == "" {
		trainName = fmt.Sprintf("Train %s", trainNumber)
	}

	currentStation := raw.CurrentStation
	if currentStation == "" {
		currentStation = "Unknown Location"
	}

	delayMinutes, statusCategory := classifyDelay(raw.ScheduledArrival, raw.ActualArrival)

	nextStations := raw.UpcomingStations
	if len(nextStations) > maxNextStations {
		nextStations = nextStations[:maxNextStations]
	}

	lastUpdated := raw.LastUpdated
	if lastUpdated == "" {
		lastUpdated = time.Now().Format(time.RFC3339)
	}

	return ctrf.CanonicalStatusRecord{
		TrainNumber: trainNumber,
		TrainName:   trainName,

		StatusCategory: statusCategory,
		DelayMinutes:   delayMinutes,
		DelayText:      formatDelayText(delayMinutes),

		CurrentLocation: ctrf.StationPosition{
			Station: currentStation,
			Lat:     raw.CurrentLat,
			Lon:     raw.CurrentLon,
		},
		NextStations: nextStations,

		Timing: ctrf.Timing{
			ScheduledArrival: raw.ScheduledArrival,
			ActualArrival:    raw.ActualArrival,
			LastUpdated:      lastUpdated,
		},

		ReliabilityScore: reliabilityScore(raw, delayMinutes),
		DataSource:       raw.DataSource,
		Note:             raw.Note,

		ProcessedAt: time.Now().Format(time.RFC3339),
	}
}

// classifyDelay needs both timestamps to say anything. A parse failure on
// either one yields an Unknown status with zero delay.
func classifyDelay(scheduledArrival string, actualArrival string) (int, ctrf.StatusCategory) {
	if scheduledArrival == "" || actualArrival == "" {
		return 0, ctrf.StatusCategoryUnknown
	}

	scheduledTime, scheduledErr := util.ParseTimestamp(scheduledArrival)
	actualTime, actualErr := util.ParseTimestamp(actualArrival)

	if scheduledErr != nil || actualErr != nil {
		return 0, ctrf.StatusCategoryUnknown
	}

	delayMinutes := int(math.Round(actualTime.Sub(scheduledTime).Seconds() / 60))

	switch {
	case delayMinutes <= 0:
		return delayMinutes, ctrf.StatusCategoryOnTime
	case delayMinutes <= 15:
		return delayMinutes, ctrf.StatusCategorySlightlyDelayed
	case delayMinutes <= 60:
		return delayMinutes, ctrf.StatusCategoryDelayed
	default:
		return delayMinutes, ctrf.StatusCategorySignificantlyDelayed
	}
}

func formatDelayText(delayMinutes int) string {
	if delayMinutes <= 0 {
		return "On time"
	}

	if delayMinutes < 60 {
		return fmt.Sprintf("%d minutes late", delayMinutes)
	}

	hours := delayMinutes / 60
	minutes := delayMinutes % 60

	if minutes == 0 {
		if hours > 1 {
			return fmt.Sprintf("%d hours late", hours)
		}
		return fmt.Sprintf("%d hour late", hours)
	}

	return fmt.Sprintf("%dh %dm late", hours, minutes)
}

// reliabilityScore is deterministic given the delay, data source and current
// station.
func reliabilityScore(raw ctrf.RawStatusRecord, delayMinutes int) float64 {
	score := 100.0

	if delayMinutes > 0 {
		score -= math.Min(float64(delayMinutes)*delayPenaltyPerMinute, delayPenaltyCap)
	}

	if raw.DataSource == ctrf.DataSourceMock {
		score -= mockDataPenalty
	}

	if raw.CurrentStation == ctrf.StationUnavailable {
		score -= unknownStationPenalty
	}

	score = math.Max(0.0, math.Min(100.0, score))

	return math.Round(score*10) / 10
}
