package datastructure

import (
	"github.com/twpayne/go-polyline"
)

// Path is a walk through the graph from Nodes[0] to Nodes[len-1].
// Edges[i] connects Nodes[i] and Nodes[i+1].
type Path struct {
	Nodes []string
	Edges []int32
}

func (p Path) Len() int {
	return len(p.Edges)
}

type PathStats struct {
	Weight      float64 // sum of the metric that produced the path
	Length      float64
	Time        float64 // hours
	Consumption float64
}

func (s PathStats) Add(o PathStats) PathStats {
	return PathStats{
		Weight:      s.Weight + o.Weight,
		Length:      s.Length + o.Length,
		Time:        s.Time + o.Time,
		Consumption: s.Consumption + o.Consumption,
	}
}

// SPSingleResult is the outcome of one search. Found is false when source and
// target are both valid but not connected.
type SPSingleResult struct {
	Source int32
	Dest   int32
	Path   Path
	Cost   float64
	Found  bool
}

// Route is one labelled answer of a route query.
type Route struct {
	Metric Metric
	Found  bool
	Path   Path
	Stats  PathStats
}

func (r Route) Label() string {
	return r.Metric.Label()
}

func CreatePolyline(path []Coordinate) string {
	coords := make([][]float64, 0, len(path))
	for _, p := range path {
		coords = append(coords, []float64{p.X, p.Y})
	}
	return string(polyline.EncodeCoords(coords))
}
