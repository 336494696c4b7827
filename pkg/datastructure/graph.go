package datastructure

import (
	"fmt"
	"math"

	"github.com/kelindar/binary"
)

const DefaultCategory = "normal"

type Node struct {
	ID       string
	Position Coordinate
	IDx      int32
}

// Edge is an undirected road between FromNodeID and ToNodeID.
// Time and Consumption are derived once when the edge is added.
type Edge struct {
	EdgeID          int32
	FromNodeID      int32
	ToNodeID        int32
	Category        string
	Length          float64
	Speed           float64
	ConsumptionRate float64 // units per 100 length units
	Time            float64
	Consumption     float64
}

// Other returns the endpoint of e that is not nodeIDx.
func (e Edge) Other(nodeIDx int32) int32 {
	if e.FromNodeID == nodeIDx {
		return e.ToNodeID
	}
	return e.FromNodeID
}

func (e Edge) Connects(u, v int32) bool {
	return (e.FromNodeID == u && e.ToNodeID == v) || (e.FromNodeID == v && e.ToNodeID == u)
}

// Graph is built once by a loader and is read-only afterwards.
type Graph struct {
	nodes   []Node
	nodeIDx map[string]int32
	edges   []Edge
	adj     [][]int32 // node idx -> incident edge ids, in insertion order
}

func NewGraph() *Graph {
	return &Graph{
		nodes:   make([]Node, 0),
		nodeIDx: make(map[string]int32),
		edges:   make([]Edge, 0),
		adj:     make([][]int32, 0),
	}
}

func (g *Graph) AddNode(id string, x, y float64) (int32, error) {
	if _, ok := g.nodeIDx[id]; ok {
		return -1, fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}
	if !isFinite(x) || !isFinite(y) {
		return -1, fmt.Errorf("%w: %q (%v, %v)", ErrInvalidPosition, id, x, y)
	}

	idx := int32(len(g.nodes))
	g.nodes = append(g.nodes, Node{ID: id, Position: NewCoordinate(x, y), IDx: idx})
	g.nodeIDx[id] = idx
	g.adj = append(g.adj, nil)
	return idx, nil
}

// AddEdge adds an undirected edge between two existing nodes and computes
// its derived travel time and consumption.
func (g *Graph) AddEdge(from, to, category string, length, speed, consumptionRate float64) (int32, error) {
	fromIDx, ok := g.nodeIDx[from]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownNode, from)
	}
	toIDx, ok := g.nodeIDx[to]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownNode, to)
	}

	for _, v := range []struct {
		name string
		val  float64
	}{{"length", length}, {"speed", speed}, {"consumption", consumptionRate}} {
		if !isFinite(v.val) || v.val < 0 {
			return -1, fmt.Errorf("%w: %s=%v", ErrInvalidEdgeValue, v.name, v.val)
		}
	}
	if speed == 0 {
		return -1, fmt.Errorf("%w: %s-%s", ErrZeroSpeed, from, to)
	}
	if category == "" {
		category = DefaultCategory
	}

	id := int32(len(g.edges))
	g.edges = append(g.edges, Edge{
		EdgeID:          id,
		FromNodeID:      fromIDx,
		ToNodeID:        toIDx,
		Category:        category,
		Length:          length,
		Speed:           speed,
		ConsumptionRate: consumptionRate,
		Time:            length / speed,
		Consumption:     consumptionRate * length / 100,
	})

	g.adj[fromIDx] = append(g.adj[fromIDx], id)
	if toIDx != fromIDx {
		g.adj[toIDx] = append(g.adj[toIDx], id)
	}
	return id, nil
}

func (g *Graph) GetNumNodes() int {
	return len(g.nodes)
}

func (g *Graph) GetNumEdges() int {
	return len(g.edges)
}

func (g *Graph) GetNode(nodeIDx int32) Node {
	return g.nodes[nodeIDx]
}

func (g *Graph) GetNodeIDx(id string) (int32, bool) {
	idx, ok := g.nodeIDx[id]
	return idx, ok
}

func (g *Graph) GetEdge(edgeID int32) Edge {
	return g.edges[edgeID]
}

// GetNodeEdges returns the ids of the edges incident to nodeIDx. Callers must not modify the slice.
func (g *Graph) GetNodeEdges(nodeIDx int32) []int32 {
	return g.adj[nodeIDx]
}

// Nodes returns the nodes in load order. Callers must not modify the slice.
func (g *Graph) Nodes() []Node {
	return g.nodes
}

// Edges returns the edges in load order. Callers must not modify the slice.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// EdgeBetween returns the edge connecting u and v with the smallest weight for
// metric m. Among equal weights the edge loaded first wins.
func (g *Graph) EdgeBetween(u, v int32, m Metric) (Edge, bool) {
	var (
		best  Edge
		found bool
	)
	for _, edgeID := range g.adj[u] {
		e := g.edges[edgeID]
		if !e.Connects(u, v) {
			continue
		}
		if !found || m.Weight(e) < m.Weight(best) {
			best = e
			found = true
		}
	}
	return best, found
}

type graphSnapshot struct {
	NodeIDs []string
	Xs      []float64
	Ys      []float64
	Edges   []Edge
}

// MarshalBinary encodes the graph in load order. Identical input produces identical bytes.
func (g *Graph) MarshalBinary() ([]byte, error) {
	snap := graphSnapshot{
		NodeIDs: make([]string, len(g.nodes)),
		Xs:      make([]float64, len(g.nodes)),
		Ys:      make([]float64, len(g.nodes)),
		Edges:   g.edges,
	}
	for i, n := range g.nodes {
		snap.NodeIDs[i] = n.ID
		snap.Xs[i] = n.Position.X
		snap.Ys[i] = n.Position.Y
	}
	return binary.Marshal(snap)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
