package movement

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"

	"github.com/jengzang/movr-go/internal/spatial"
)

// centroidEpsilon is the smallest weighted vector-sum norm, relative to the
// total weight, that still defines a centroid direction.
const centroidEpsilon = 1e-12

// GeoPoint is a weighted location in degrees.
type GeoPoint struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Weight float64 `json:"weight"`
}

// RadiusOfGyration returns the weighted root-mean-square great-circle
// distance, in kilometers, of the points from their weighted centroid on a
// spherical Earth of radius spatial.EarthRadiusKm.
//
// The centroid is the normalized weighted sum of the points' unit vectors.
// Zero-weight points are allowed but contribute nothing.
func RadiusOfGyration(lats, lons, weights []float64) (float64, error) {
	n := len(lats)
	if len(lons) != n || len(weights) != n {
		return 0, fmt.Errorf("%w: %d lats, %d lons, %d weights",
			ErrShapeMismatch, len(lats), len(lons), len(weights))
	}
	if n == 0 {
		return 0, fmt.Errorf("radius of gyration: %w", ErrEmptyInput)
	}

	var total float64
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return 0, fmt.Errorf("%w: weight[%d] = %v", ErrInvalidWeight, i, w)
		}
		total += w
	}
	if total <= 0 {
		return 0, fmt.Errorf("%w: total weight %v", ErrInvalidWeight, total)
	}

	points := make([]r3.Vector, n)
	var center r3.Vector
	for i := range points {
		points[i] = spatial.UnitVector(lats[i], lons[i])
		center = center.Add(points[i].Mul(weights[i]))
	}
	if center.Norm() <= centroidEpsilon*total {
		return 0, ErrUndefinedCentroid
	}
	center = center.Normalize()

	var sumSq float64
	for i, p := range points {
		d := spatial.CentralAngle(p, center).Radians() * spatial.EarthRadiusKm
		sumSq += weights[i] * d * d
	}

	return math.Sqrt(sumSq / total), nil
}

// Gyration is RadiusOfGyration over a slice of points.
func Gyration(points []GeoPoint) (float64, error) {
	lats := make([]float64, len(points))
	lons := make([]float64, len(points))
	weights := make([]float64, len(points))
	for i, p := range points {
		lats[i], lons[i], weights[i] = p.Lat, p.Lon, p.Weight
	}
	return RadiusOfGyration(lats, lons, weights)
}
