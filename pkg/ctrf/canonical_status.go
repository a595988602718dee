package ctrf

type StatusCategory string

const (
	StatusCategoryOnTime               StatusCategory = "On Time"
	StatusCategorySlightlyDelayed      StatusCategory = "Slightly Delayed"
	StatusCategoryDelayed              StatusCategory = "Delayed"
	StatusCategorySignificantlyDelayed StatusCategory = "Significantly Delayed"
	StatusCategoryUnknown              StatusCategory = "Unknown"
)

type StationPosition struct {
	Station string  `json:"station" groups:"basic"`
	Lat     float64 `json:"lat" groups:"basic"`
	Lon     float64 `json:"lon" groups:"basic"`
}

type Timing struct {
	ScheduledArrival string `json:"scheduled_arrival,omitempty" groups:"detailed"`
	ActualArrival    string `json:"actual_arrival,omitempty" groups:"detailed"`
	LastUpdated      string `json:"last_updated" groups:"detailed"`
}

// CanonicalStatusRecord is the normalised, stage-independent representation
// of a train status used by every downstream consumer.
type CanonicalStatusRecord struct {
	TrainNumber string `json:"train_number" groups:"basic"`
	TrainName   string `json:"train_name" groups:"basic"`

	StatusCategory StatusCategory `json:"status_category" groups:"basic"`
	DelayMinutes   int            `json:"delay_minutes" groups:"basic"`
	DelayText      string         `json:"delay_text" groups:"basic"`

	CurrentLocation StationPosition `json:"current_location" groups:"basic"`
	NextStations    []string        `json:"next_stations" groups:"basic"`

	Timing Timing `json:"timing" groups:"detailed"`

	ReliabilityScore float64    `json:"reliability_score" groups:"basic"`
	DataSource       DataSource `json:"data_source" groups:"basic"`
	Note             string     `json:"note,omitempty" groups:"basic"`

	ProcessedAt string `json:"processed_at" groups:"detailed"`
}
