package domain

import (
	"math"

	"github.com/paulmach/orb"
)

// Immutable geographic coordinates in degrees.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Return coordinates as an orb point, which is ordered [lng, lat].
func (c Coordinates) Point() orb.Point { return orb.Point{c.Lng, c.Lat} }

// Return coordinates as [lat, lng] for map renderers.
func (c Coordinates) LatLng() [2]float64 { return [2]float64{c.Lat, c.Lng} }

// Valid reports whether both components are finite and inside their ranges.
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}
