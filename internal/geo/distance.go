package geo

import "math"

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DistanceBetween returns the great-circle distance in kilometers between
// two coordinates given in degrees (spherical law of cosines).
func DistanceBetween(from, to Coordinate) float64 {
	if from == to {
		return 0
	}

	fromRadLat := from.Latitude * math.Pi / 180
	toRadLat := to.Latitude * math.Pi / 180

	theta := from.Longitude - to.Longitude
	radTheta := theta * math.Pi / 180

	dist := math.Sin(fromRadLat)*math.Sin(toRadLat) +
		math.Cos(fromRadLat)*math.Cos(toRadLat)*math.Cos(radTheta)

	// rounding can push the cosine just outside acos' domain
	if dist > 1 {
		dist = 1
	} else if dist < -1 {
		dist = -1
	}

	dist = math.Acos(dist)
	dist = dist * 180 / math.Pi
	dist = dist * 60 * 1.1515 * 1.609344

	return dist
}
