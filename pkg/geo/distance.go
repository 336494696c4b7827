package geo

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/lintang-b-s/triroute/pkg/datastructure"
)

// LengthScale converts map units of the node table to edge length units.
const LengthScale = 10.0

func toR2(c datastructure.Coordinate) r2.Point {
	return r2.Point{X: c.X, Y: c.Y}
}

// PlanarDistance is the euclidean distance between two node positions.
func PlanarDistance(a, b datastructure.Coordinate) float64 {
	return toR2(a).Sub(toR2(b)).Norm()
}

// EdgeLength is the length column value for an edge between a and b:
// the planar distance divided by LengthScale, truncated to a whole number.
func EdgeLength(a, b datastructure.Coordinate) float64 {
	return math.Trunc(PlanarDistance(a, b) / LengthScale)
}
