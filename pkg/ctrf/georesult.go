package ctrf

type Coordinates struct {
	Lat float64 `json:"lat" groups:"basic"`
	Lon float64 `json:"lon" groups:"basic"`
}

type RegionInfo struct {
	Hemisphere    string `json:"hemisphere" groups:"basic"`
	LongitudeZone string `json:"longitude_zone" groups:"basic"`
	Region        string `json:"region,omitempty" groups:"basic"`
	LikelyState   string `json:"likely_state,omitempty" groups:"basic"`
}

// GeoResult carries the outcome of the geospatial stage. Distance, bearing
// and direction are only set when valid target coordinates were supplied.
type GeoResult struct {
	CurrentCoordinates Coordinates  `json:"current_coordinates" groups:"basic"`
	TargetCoordinates  *Coordinates `json:"target_coordinates,omitempty" groups:"basic"`

	DistanceKm     *float64 `json:"distance_km,omitempty" groups:"basic"`
	BearingDegrees *float64 `json:"bearing_degrees,omitempty" groups:"basic"`
	Direction      string   `json:"direction,omitempty" groups:"basic"`

	RegionInfo RegionInfo `json:"region_info" groups:"basic"`
}
