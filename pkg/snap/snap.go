package snap

import (
	"errors"

	"github.com/dhconnelly/rtreego"
	"github.com/lintang-b-s/triroute/pkg/datastructure"
	"go.uber.org/zap"
)

var ErrEmptyIndex = errors.New("no nodes indexed")

const (
	rtreeMinChildren = 25
	rtreeMaxChildren = 50
	pointTolerance   = 1e-6
)

type Graph interface {
	Nodes() []datastructure.Node
}

type nodeLeaf struct {
	node datastructure.Node
	loc  rtreego.Point
}

func (n *nodeLeaf) Bounds() rtreego.Rect {
	return n.loc.ToRect(pointTolerance)
}

// NodeSnapper maps an arbitrary position to the closest graph node.
type NodeSnapper struct {
	rtree *rtreego.Rtree
	size  int
}

func NewNodeSnapper(g Graph, logger *zap.Logger) *NodeSnapper {
	nodes := g.Nodes()
	leaves := make([]rtreego.Spatial, 0, len(nodes))
	for _, n := range nodes {
		leaves = append(leaves, &nodeLeaf{node: n, loc: rtreego.Point{n.Position.X, n.Position.Y}})
	}

	rt := rtreego.NewTree(2, rtreeMinChildren, rtreeMaxChildren, leaves...)
	logger.Debug("node r-tree built", zap.Int("nodes", rt.Size()))
	return &NodeSnapper{rtree: rt, size: len(leaves)}
}

func (ns *NodeSnapper) SnapToNode(x, y float64) (datastructure.Node, error) {
	if ns.size == 0 {
		return datastructure.Node{}, ErrEmptyIndex
	}
	nearest := ns.rtree.NearestNeighbor(rtreego.Point{x, y})
	if nearest == nil {
		return datastructure.Node{}, ErrEmptyIndex
	}
	return nearest.(*nodeLeaf).node, nil
}

// SnapToNodes returns up to k nodes ordered by distance to (x, y).
func (ns *NodeSnapper) SnapToNodes(x, y float64, k int) []datastructure.Node {
	if ns.size == 0 || k <= 0 {
		return []datastructure.Node{}
	}
	neighbors := ns.rtree.NearestNeighbors(k, rtreego.Point{x, y})
	nodes := make([]datastructure.Node, 0, len(neighbors))
	for _, s := range neighbors {
		if s == nil {
			continue
		}
		nodes = append(nodes, s.(*nodeLeaf).node)
	}
	return nodes
}
