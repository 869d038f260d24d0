// Package geo provides great-circle distance computation between
// geographic coordinates on a spherical Earth model.
package geo

import (
	"errors"
	"fmt"
	"math"
)

// EarthRadiusKm is the mean Earth radius used by the spherical model.
const EarthRadiusKm = 6371.0

var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate is a WGS 84 latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinate lies within the valid
// latitude/longitude ranges.
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Distance returns the great-circle distance between a and b in
// kilometers using the haversine formula. Both coordinates must be in
// range; out-of-range input returns ErrInvalidCoordinate rather than
// being clamped.
func Distance(a, b Coordinate) (float64, error) {
	if !a.Valid() {
		return 0, fmt.Errorf("%w: lat=%v lon=%v", ErrInvalidCoordinate, a.Latitude, a.Longitude)
	}
	if !b.Valid() {
		return 0, fmt.Errorf("%w: lat=%v lon=%v", ErrInvalidCoordinate, b.Latitude, b.Longitude)
	}

	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h))), nil
}
