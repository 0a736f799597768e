package entity

import (
	"math"

	"github.com/paulmach/orb"
)

// Location is a WGS84 position in decimal degrees.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewLocation builds a Location from latitude and longitude.
func NewLocation(lat, lng float64) Location {
	return Location{Latitude: lat, Longitude: lng}
}

// IsValid reports whether both coordinates are finite and inside their geographic bounds.
func (l Location) IsValid() bool {
	if math.IsNaN(l.Latitude) || math.IsInf(l.Latitude, 0) ||
		math.IsNaN(l.Longitude) || math.IsInf(l.Longitude, 0) {
		return false
	}

	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

// Point returns the location as an orb point (longitude first).
func (l Location) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

// LocationFromPoint converts an orb point back to a Location.
func LocationFromPoint(p orb.Point) Location {
	return Location{Latitude: p.Lat(), Longitude: p.Lon()}
}
