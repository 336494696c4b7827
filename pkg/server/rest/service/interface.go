package service

import (
	"context"

	"github.com/lintang-b-s/triroute/pkg/datastructure"
)

type Graph interface {
	GetNodeIDx(id string) (int32, bool)
	GetNode(nodeIDx int32) datastructure.Node
	GetNodeEdges(nodeIDx int32) []int32
	GetEdge(edgeID int32) datastructure.Edge
	GetNumNodes() int
	GetNumEdges() int
	EdgeBetween(u, v int32, m datastructure.Metric) (datastructure.Edge, bool)
	Nodes() []datastructure.Node
	Edges() []datastructure.Edge
}

type RoutingAlgorithm interface {
	ShortestPath(from, to string, metric datastructure.Metric) (datastructure.SPSingleResult, error)
}

type RouteCache interface {
	GetRoutes(ctx context.Context, key string) ([]datastructure.Route, bool, error)
	SetRoutes(ctx context.Context, key string, routes []datastructure.Route) error
}

type NodeSnapper interface {
	SnapToNode(x, y float64) (datastructure.Node, error)
}
