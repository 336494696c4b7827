package datastructure

// Coordinate is a planar position. Node tables store plain x/y values, not lat/lon.
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewCoordinate(x, y float64) Coordinate {
	return Coordinate{
		X: x,
		Y: y,
	}
}

func NewCoordinates(xs, ys []float64) []Coordinate {
	coords := make([]Coordinate, len(xs))
	for i := range xs {
		coords[i] = NewCoordinate(xs[i], ys[i])
	}
	return coords
}
