// Package matching holds the pure matching core: proximity filtering, candidate
// scoring and stop sequencing. Nothing in here performs I/O or keeps state.
package matching

import (
	"math"

	"ecodeli/internal/domain/entity"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the mean Earth radius of the spherical model.
const EarthRadiusKm = 6371.0

const kmPerDegreeLat = 111.0

// Tiered average speeds used for travel time estimates.
const (
	citySpeedKmh     = 25.0
	suburbanSpeedKmh = 45.0
	highwaySpeedKmh  = 70.0

	cityRangeKm     = 10.0
	suburbanRangeKm = 50.0
)

// Distance returns the great-circle distance in kilometres between a and b.
// It is symmetric and zero for identical points.
func Distance(a, b entity.Location) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	deltaLat := lat2 - lat1
	deltaLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// EstimateTravelMinutes converts a straight-line distance into a rough travel time,
// assuming slower traffic on short urban trips.
func EstimateTravelMinutes(distanceKm float64) float64 {
	if distanceKm <= 0 {
		return 0
	}

	speed := highwaySpeedKmh
	switch {
	case distanceKm < cityRangeKm:
		speed = citySpeedKmh
	case distanceKm < suburbanRangeKm:
		speed = suburbanSpeedKmh
	}

	return distanceKm / speed * 60
}

// ValidateLocation returns ErrInvalidInput when loc is not a usable coordinate.
func ValidateLocation(field string, loc entity.Location) error {
	if !loc.IsValid() {
		return invalidf("%s (%v, %v) is not a valid coordinate", field, loc.Latitude, loc.Longitude)
	}

	return nil
}

// BoundAround returns a box that contains every point within radiusKm of center.
// It is a cheap prefilter; callers still check the exact distance.
func BoundAround(center entity.Location, radiusKm float64) orb.Bound {
	latDelta := radiusKm / kmPerDegreeLat
	minLat := math.Max(-90, center.Latitude-latDelta)
	maxLat := math.Min(90, center.Latitude+latDelta)

	// The widest longitude span is reached on the box edge closest to a pole.
	edgeLat := math.Max(math.Abs(minLat), math.Abs(maxLat))
	cosLat := math.Cos(edgeLat * math.Pi / 180)
	if edgeLat >= 90 || cosLat < 1e-9 {
		return orb.Bound{Min: orb.Point{-180, minLat}, Max: orb.Point{180, maxLat}}
	}

	lngDelta := radiusKm / (kmPerDegreeLat * cosLat)
	minLng := center.Longitude - lngDelta
	maxLng := center.Longitude + lngDelta
	if minLng < -180 || maxLng > 180 {
		minLng, maxLng = -180, 180
	}

	return orb.Bound{Min: orb.Point{minLng, minLat}, Max: orb.Point{maxLng, maxLat}}
}
