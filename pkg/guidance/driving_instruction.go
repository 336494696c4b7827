package guidance

import (
	"errors"
	"math"

	"github.com/lintang-b-s/triroute/pkg/datastructure"
	"github.com/lintang-b-s/triroute/pkg/util"
)

var ErrInvalidPath = errors.New("path has no usable edges")

type DrivingInstruction struct {
	Instruction string
	Sign        int
	NodeID      string
	Point       datastructure.Coordinate
	Category    string
	Distance    float64
	Time        float64 // hours
}

func NewDrivingInstruction(ins Instruction) DrivingInstruction {
	return DrivingInstruction{
		Instruction: ins.GetTurnDescription(),
		Sign:        ins.Sign,
		NodeID:      ins.NodeID,
		Point:       ins.Point,
		Category:    ins.Category,
		Distance:    util.RoundFloat(ins.Distance, 2),
		Time:        util.RoundFloat(ins.Time, 2),
	}
}

// InstructionsFromPath turns a node path into turn by turn instructions.
// Consecutive edges that keep both direction and road category are merged
// into one instruction.
type InstructionsFromPath struct {
	g Graph
}

func NewInstructionsFromPath(g Graph) *InstructionsFromPath {
	return &InstructionsFromPath{g: g}
}

func (ifp *InstructionsFromPath) GetDrivingInstructions(path datastructure.Path) ([]DrivingInstruction, error) {
	if len(path.Nodes) == 0 {
		return nil, errors.New("path is empty")
	}
	if len(path.Edges) != len(path.Nodes)-1 {
		return nil, ErrInvalidPath
	}

	nodes := make([]datastructure.Node, len(path.Nodes))
	for i, id := range path.Nodes {
		idx, ok := ifp.g.GetNodeIDx(id)
		if !ok {
			return nil, datastructure.ErrNodeNotFound
		}
		nodes[i] = ifp.g.GetNode(idx)
	}

	ways := make([]*Instruction, 0, len(path.Edges)+1)
	var prevInstruction *Instruction
	for i, edgeID := range path.Edges {
		if edgeID < 0 || int(edgeID) >= ifp.g.GetNumEdges() {
			return nil, ErrInvalidPath
		}
		edge := ifp.g.GetEdge(edgeID)
		if !edge.Connects(nodes[i].IDx, nodes[i+1].IDx) {
			return nil, ErrInvalidPath
		}

		sign := START
		if prevInstruction != nil {
			sign = getTurnDirection(nodes[i-1].Position, nodes[i].Position, nodes[i+1].Position)
		}

		if sign == CONTINUE_ON_STREET && prevInstruction.Category == edge.Category {
			prevInstruction.Distance += edge.Length
			prevInstruction.Time += edge.Time
			continue
		}

		ins := NewInstruction(sign, edge.Category, nodes[i])
		ins.Distance = edge.Length
		ins.Time = edge.Time
		prevInstruction = &ins
		ways = append(ways, prevInstruction)
	}

	finish := NewInstruction(FINISH, "", nodes[len(nodes)-1])
	ways = append(ways, &finish)

	drivingInstructions := make([]DrivingInstruction, 0, len(ways))
	for _, w := range ways {
		drivingInstructions = append(drivingInstructions, NewDrivingInstruction(*w))
	}
	return drivingInstructions, nil
}

func calcOrientation(from, to datastructure.Coordinate) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// alignOrientation shifts orientation by 2pi so that it lies within pi of baseOrientation.
func alignOrientation(baseOrientation, orientation float64) float64 {
	if baseOrientation >= 0 {
		if orientation < -math.Pi+baseOrientation {
			return orientation + 2*math.Pi
		}
		return orientation
	}
	if orientation > math.Pi+baseOrientation {
		return orientation - 2*math.Pi
	}
	return orientation
}

// getTurnDirection classifies the turn at curr when driving prev -> curr -> next.
// Positions are cartesian with y pointing up, so a counter clockwise change of
// heading is a left turn.
func getTurnDirection(prev, curr, next datastructure.Coordinate) int {
	if prev == curr || curr == next {
		return CONTINUE_ON_STREET
	}
	prevOrientation := calcOrientation(prev, curr)
	orientation := alignOrientation(prevOrientation, calcOrientation(curr, next))
	delta := orientation - prevOrientation

	deltaDegree := math.Abs(delta) * (180 / math.Pi)
	switch {
	case deltaDegree < 12:
		return CONTINUE_ON_STREET
	case deltaDegree < 40:
		if delta > 0 {
			return TURN_SLIGHT_LEFT
		}
		return TURN_SLIGHT_RIGHT
	case deltaDegree < 105:
		if delta > 0 {
			return TURN_LEFT
		}
		return TURN_RIGHT
	case delta > 0:
		return TURN_SHARP_LEFT
	default:
		return TURN_SHARP_RIGHT
	}
}
