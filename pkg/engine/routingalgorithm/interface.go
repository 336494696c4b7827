package routingalgorithm

import "github.com/lintang-b-s/triroute/pkg/datastructure"

type Graph interface {
	GetNodeIDx(id string) (int32, bool)
	GetNode(nodeIDx int32) datastructure.Node
	GetNodeEdges(nodeIDx int32) []int32
	GetEdge(edgeID int32) datastructure.Edge
	GetNumNodes() int
	GetNumEdges() int
	EdgeBetween(u, v int32, m datastructure.Metric) (datastructure.Edge, bool)
}
