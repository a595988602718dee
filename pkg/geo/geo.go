package geo

import (
	"math"

	"github.com/railscope/railscope/pkg/ctrf"
)

const earthRadiusKm = 6371.0

var compassDirections = []string{
	"North", "North-Northeast", "Northeast", "East-Northeast",
	"East", "East-Southeast", "Southeast", "South-Southeast",
	"South", "South-Southwest", "Southwest", "West-Southwest",
	"West", "West-Northwest", "Northwest", "North-Northwest",
}

// Compute runs the geospatial stage for a current position and an optional
// target. Distance, bearing and direction are only present when a target was
// supplied. Coordinates outside their valid ranges fail explicitly.
func Compute(currentLat float64, currentLon float64, target *ctrf.Coordinates) (ctrf.GeoResult, error) {
	if !validCoordinates(currentLat, currentLon) {
		return ctrf.GeoResult{}, ctrf.NewError(ctrf.ErrorTypeProcessing, "Invalid current coordinates")
	}

	result := ctrf.GeoResult{
		CurrentCoordinates: ctrf.Coordinates{Lat: currentLat, Lon: currentLon},
		RegionInfo:         regionInfo(currentLat, currentLon),
	}

	if target != nil {
		if !validCoordinates(target.Lat, target.Lon) {
			return ctrf.GeoResult{}, ctrf.NewError(ctrf.ErrorTypeProcessing, "Invalid target coordinates")
		}

		distanceKm := math.Round(Distance(currentLat, currentLon, target.Lat, target.Lon)*100) / 100
		bearingDegrees := math.Round(Bearing(currentLat, currentLon, target.Lat, target.Lon)*10) / 10

		result.TargetCoordinates = &ctrf.Coordinates{Lat: target.Lat, Lon: target.Lon}
		result.DistanceKm = &distanceKm
		result.BearingDegrees = &bearingDegrees
		result.Direction = Direction(bearingDegrees)
	}

	return result, nil
}

func validCoordinates(lat float64, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// Distance is the Haversine great-circle distance in kilometers.
func Distance(lat1 float64, lon1 float64, lat2 float64, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLon := lon2Rad - lon1Rad

	a := math.Pow(math.Sin(deltaLat/2), 2) + math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Pow(math.Sin(deltaLon/2), 2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKm * c
}

// Bearing is the initial forward azimuth from the first point to the second,
// normalised into [0, 360) degrees.
func Bearing(lat1 float64, lon1 float64, lat2 float64, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	deltaLon := lon2Rad - lon1Rad

	y := math.Sin(deltaLon) * math.Cos(lat2Rad)
	x := math.Cos(lat1Rad)*math.Sin(lat2Rad) - math.Sin(lat1Rad)*math.Cos(lat2Rad)*math.Cos(deltaLon)

	bearingDegrees := math.Atan2(y, x) * 180 / math.Pi

	return math.Mod(bearingDegrees+360, 360)
}

// Direction buckets a bearing into one of the 16 compass points, nearest
// rounding, wrapping at 360 back to North.
func Direction(bearing float64) string {
	index := int(math.Round(bearing/22.5)) % len(compassDirections)

	return compassDirections[index]
}

func regionInfo(lat float64, lon float64) ctrf.RegionInfo {
	info := ctrf.RegionInfo{
		Hemisphere:    "Northern",
		LongitudeZone: "Eastern",
	}

	if lat < 0 {
		info.Hemisphere = "Southern"
	}
	if lon < 0 {
		info.LongitudeZone = "Western"
	}

	if lat >= 6 && lat <= 37 && lon >= 68 && lon <= 97 {
		info.Region = "Indian Subcontinent"

		// Coarse state boxes, first match wins. The boxes overlap India's
		// borders loosely and the evaluation order is fixed.
		switch {
		case lat >= 8 && lat <= 13 && lon >= 76 && lon <= 80:
			info.LikelyState = "Tamil Nadu/Karnataka"
		case lat >= 19 && lat <= 24 && lon >= 72 && lon <= 75:
			info.LikelyState = "Maharashtra"
		case lat >= 28 && lat <= 31 && lon >= 76 && lon <= 78:
			info.LikelyState = "Delhi/Haryana"
		case lat >= 22 && lat <= 26 && lon >= 88 && lon <= 92:
			info.LikelyState = "West Bengal"
		}
	}

	return info
}
