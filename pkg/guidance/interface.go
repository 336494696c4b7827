package guidance

import "github.com/lintang-b-s/triroute/pkg/datastructure"

type Graph interface {
	GetNodeIDx(id string) (int32, bool)
	GetNode(nodeIDx int32) datastructure.Node
	GetEdge(edgeID int32) datastructure.Edge
	GetNumEdges() int
}
