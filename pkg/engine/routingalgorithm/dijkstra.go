package routingalgorithm

import (
	"fmt"
	"math"

	"github.com/lintang-b-s/triroute/pkg/datastructure"
	"github.com/lintang-b-s/triroute/pkg/util"
)

// NodeNotFoundError is returned when a query names a node the graph does not have.
type NodeNotFoundError struct {
	ID string
}

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("node %q not found", e.ID)
}

func (e *NodeNotFoundError) Unwrap() error {
	return datastructure.ErrNodeNotFound
}

type RouteAlgorithm struct {
	g             Graph
	components    []int32
	numComponents int
}

// NewRouteAlgorithm expects g to be fully loaded; edges added later are not
// reflected in the component labels.
func NewRouteAlgorithm(g Graph) *RouteAlgorithm {
	components, n := ConnectedComponents(g)
	return &RouteAlgorithm{g: g, components: components, numComponents: n}
}

func (rt *RouteAlgorithm) NumComponents() int {
	return rt.numComponents
}

type cameFromPair struct {
	EdgeID int32
	NodeID int32
}

// ShortestPath runs dijkstra from -> to using metric as the edge weight.
// Search state is local to the call, so concurrent calls on the same graph are safe.
func (rt *RouteAlgorithm) ShortestPath(from, to string, metric datastructure.Metric) (datastructure.SPSingleResult, error) {
	fromIDx, ok := rt.g.GetNodeIDx(from)
	if !ok {
		return datastructure.SPSingleResult{}, &NodeNotFoundError{ID: from}
	}
	toIDx, ok := rt.g.GetNodeIDx(to)
	if !ok {
		return datastructure.SPSingleResult{}, &NodeNotFoundError{ID: to}
	}

	if rt.components[fromIDx] != rt.components[toIDx] {
		return unreachable(fromIDx, toIDx), nil
	}
	return rt.shortestPath(fromIDx, toIDx, metric), nil
}

func unreachable(from, to int32) datastructure.SPSingleResult {
	return datastructure.SPSingleResult{
		Source: from,
		Dest:   to,
		Cost:   math.Inf(1),
		Found:  false,
	}
}

func (rt *RouteAlgorithm) shortestPath(from, to int32, metric datastructure.Metric) datastructure.SPSingleResult {
	n := rt.g.GetNumNodes()

	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[from] = 0

	cameFrom := make([]cameFromPair, n)
	for i := range cameFrom {
		cameFrom[i] = cameFromPair{EdgeID: -1, NodeID: -1}
	}

	visited := make([]bool, n)

	pq := datastructure.NewMinHeap[int32]()
	pq.Insert(datastructure.PriorityQueueNode[int32]{Rank: 0, Item: from})

	for pq.Size() > 0 {
		current, _ := pq.ExtractMin()
		u := current.Item

		if u == to {
			return datastructure.SPSingleResult{
				Source: from,
				Dest:   to,
				Path:   rt.buildPath(cameFrom, from, to),
				Cost:   dist[to],
				Found:  true,
			}
		}
		visited[u] = true

		for _, edgeID := range rt.g.GetNodeEdges(u) {
			edge := rt.g.GetEdge(edgeID)
			v := edge.Other(u)
			if visited[v] {
				continue
			}

			newDist := dist[u] + metric.Weight(edge)
			if newDist < dist[v] {
				dist[v] = newDist
				cameFrom[v] = cameFromPair{EdgeID: edgeID, NodeID: u}
				pq.Insert(datastructure.PriorityQueueNode[int32]{Rank: newDist, Item: v})
			}
		}
	}

	return unreachable(from, to)
}

func (rt *RouteAlgorithm) buildPath(cameFrom []cameFromPair, from, to int32) datastructure.Path {
	nodes := []string{rt.g.GetNode(to).ID}
	edges := []int32{}

	for curr := to; curr != from; curr = cameFrom[curr].NodeID {
		edges = append(edges, cameFrom[curr].EdgeID)
		nodes = append(nodes, rt.g.GetNode(cameFrom[curr].NodeID).ID)
	}

	return datastructure.Path{
		Nodes: util.ReverseG(nodes),
		Edges: util.ReverseG(edges),
	}
}
