package services

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// PathGeometry is the renderable form of a route path.
type PathGeometry struct {
	Line orb.LineString
}

// ResolvePath maps each path id to its coordinates. Ids missing from the
// directory are dropped; resolution never fails.
func ResolvePath(dir *NodeDirectory, path []string) PathGeometry {
	line := make(orb.LineString, 0, len(path))
	for _, id := range path {
		c, ok := dir.ResolveCoordinates(id)
		if !ok {
			continue
		}
		line = append(line, c.Point())
	}
	return PathGeometry{Line: line}
}

// Renderable reports whether the geometry has at least one segment.
func (g PathGeometry) Renderable() bool { return len(g.Line) >= 2 }

// LatLngs returns the points as [lat, lng] pairs.
func (g PathGeometry) LatLngs() [][2]float64 {
	out := make([][2]float64, 0, len(g.Line))
	for _, p := range g.Line {
		out = append(out, [2]float64{p.Lat(), p.Lon()})
	}
	return out
}

// LengthKm is the great-circle length of the drawn line, not the route distance.
func (g PathGeometry) LengthKm() float64 {
	if !g.Renderable() {
		return 0
	}
	return geo.Length(g.Line) / 1000
}
