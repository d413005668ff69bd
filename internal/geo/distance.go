// Package geo provides coordinate validation and great-circle distance
// computation for recipient targeting.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// Point builds an orb.Point from a latitude/longitude pair.
// orb stores points as (lon, lat).
func Point(lat, lng float64) orb.Point {
	return orb.Point{lng, lat}
}

// ValidCoordinate reports whether lat/lng form a usable coordinate:
// latitude within [-90, 90] and longitude within [-180, 180].
// NaN fails both range checks and is rejected.
func ValidCoordinate(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// ValidPoint is the nullable-coordinate variant of ValidCoordinate used for
// entities whose coordinates may be absent.
func ValidPoint(lat, lng *float64) bool {
	if lat == nil || lng == nil {
		return false
	}

	return ValidCoordinate(*lat, *lng)
}

// DistanceKm computes the haversine great-circle distance between two points
// in kilometers, rounded to one decimal place. The result is symmetric and
// zero for identical points. NaN inputs propagate; callers are expected to
// reject invalid coordinates with ValidCoordinate first.
func DistanceKm(a, b orb.Point) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	dLat := (b.Lat() - a.Lat()) * math.Pi / 180
	dLng := (b.Lon() - a.Lon()) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng

	distance := 2 * earthRadiusKm * math.Asin(math.Sqrt(h))

	return math.Round(distance*10) / 10
}
