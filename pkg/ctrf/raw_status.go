package ctrf

type DataSource string

const (
	DataSourceLive  DataSource = "live"
	DataSourceCache DataSource = "cache"
	DataSourceMock  DataSource = "mock"
)

// RawStatusRecord is the unprocessed train status as produced by the
// fetcher, before normalisation. Timestamps are RFC3339 strings and empty
// when the source did not provide them.
type RawStatusRecord struct {
	TrainNumber    string  `json:"train_number" groups:"basic"`
	TrainName      string  `json:"train_name" groups:"basic"`
	CurrentStation string  `json:"current_station" groups:"basic"`
	CurrentLat     float64 `json:"current_lat" groups:"detailed"`
	CurrentLon     float64 `json:"current_lon" groups:"detailed"`

	ScheduledArrival string `json:"scheduled_arrival,omitempty" groups:"detailed"`
	ActualArrival    string `json:"actual_arrival,omitempty" groups:"detailed"`

	UpcomingStations []string `json:"upcoming_stations" groups:"detailed"`

	LastUpdated string     `json:"last_updated" groups:"basic"`
	DataSource  DataSource `json:"data_source" groups:"basic"`
	Note        string     `json:"note,omitempty" groups:"basic"`
}

const StationUnavailable = "Information not available"
