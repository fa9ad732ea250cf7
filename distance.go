package airportfinder

import "math"

// EarthRadiusKm is the mean Earth radius used by Haversine.
const EarthRadiusKm = 6371.0

// Haversine returns the great-circle distance in kilometres between two
// points given in degrees. The Earth is treated as a sphere of radius
// EarthRadiusKm.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	a := sinLat*sinLat + math.Cos(radians(lat1))*math.Cos(radians(lat2))*sinLon*sinLon

	// Rounding can push a just past 1 for antipodal points.
	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(math.Min(1, a)))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// roundDistance rounds km to one decimal place, half away from zero.
func roundDistance(km float64) float64 {
	return math.Round(km*10) / 10
}
