package routingalgorithm

import (
	"fmt"

	"github.com/lintang-b-s/triroute/pkg/datastructure"
)

// PathStatistics sums metric, length, time and consumption over the edges of path.
// When path carries edge ids they must connect the consecutive nodes; otherwise
// the cheapest edge for metric between each pair is used.
func PathStatistics(g Graph, path datastructure.Path, metric datastructure.Metric) (datastructure.PathStats, error) {
	stats := datastructure.PathStats{}
	if len(path.Nodes) == 0 {
		return stats, fmt.Errorf("empty path")
	}
	if len(path.Edges) != 0 && len(path.Edges) != len(path.Nodes)-1 {
		return stats, fmt.Errorf("path has %d nodes but %d edges", len(path.Nodes), len(path.Edges))
	}

	prev, ok := g.GetNodeIDx(path.Nodes[0])
	if !ok {
		return stats, &NodeNotFoundError{ID: path.Nodes[0]}
	}

	for i := 1; i < len(path.Nodes); i++ {
		curr, ok := g.GetNodeIDx(path.Nodes[i])
		if !ok {
			return stats, &NodeNotFoundError{ID: path.Nodes[i]}
		}

		var edge datastructure.Edge
		if len(path.Edges) != 0 {
			edgeID := path.Edges[i-1]
			ok = edgeID >= 0 && int(edgeID) < g.GetNumEdges()
			if ok {
				edge = g.GetEdge(edgeID)
				ok = edge.Connects(prev, curr)
			}
		} else {
			edge, ok = g.EdgeBetween(prev, curr, metric)
		}
		if !ok {
			return stats, fmt.Errorf("%w: %s-%s", datastructure.ErrEdgeNotFound, path.Nodes[i-1], path.Nodes[i])
		}

		stats = stats.Add(datastructure.PathStats{
			Weight:      metric.Weight(edge),
			Length:      edge.Length,
			Time:        edge.Time,
			Consumption: edge.Consumption,
		})
		prev = curr
	}

	return stats, nil
}
