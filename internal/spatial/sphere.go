package spatial

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers
)

// UnitVector converts a latitude/longitude in degrees to a point on the unit
// sphere: (cos lat cos lon, cos lat sin lon, sin lat).
func UnitVector(lat, lon float64) r3.Vector {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon)).Vector
}

// CentralAngle returns the great-circle angle between two unit vectors as the
// arc cosine of their dot product. The dot product is clamped to [-1, 1] so
// rounding never pushes acos out of its domain.
func CentralAngle(a, b r3.Vector) s1.Angle {
	dot := math.Max(-1, math.Min(1, a.Dot(b)))
	return s1.Angle(math.Acos(dot))
}

// HaversineDistance calculates the great-circle distance between two points in meters
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}
