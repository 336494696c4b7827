package datastructure

import (
	"fmt"
	"strings"
)

// Metric selects which edge attribute drives a shortest path search.
type Metric uint8

const (
	Length Metric = iota
	Time
	Consumption
)

// Metrics is the order in which a route query runs the searches.
var Metrics = []Metric{Length, Time, Consumption}

func (m Metric) String() string {
	switch m {
	case Length:
		return "length"
	case Time:
		return "time"
	case Consumption:
		return "consumption"
	default:
		return fmt.Sprintf("metric(%d)", uint8(m))
	}
}

// Label is the human name of the route a metric produces.
func (m Metric) Label() string {
	switch m {
	case Length:
		return "shortest"
	case Time:
		return "fastest"
	case Consumption:
		return "most efficient"
	default:
		return m.String()
	}
}

// Weight returns the edge attribute selected by m.
func (m Metric) Weight(e Edge) float64 {
	switch m {
	case Time:
		return e.Time
	case Consumption:
		return e.Consumption
	default:
		return e.Length
	}
}

func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "length", "distance", "shortest":
		return Length, nil
	case "time", "zeit", "fastest":
		return Time, nil
	case "consumption", "verbrauch", "efficient":
		return Consumption, nil
	}
	return 0, fmt.Errorf("unknown metric %q", s)
}
