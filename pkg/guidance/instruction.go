package guidance

import (
	"fmt"

	"github.com/lintang-b-s/triroute/pkg/datastructure"
)

const (
	TURN_SHARP_LEFT    = -3
	TURN_LEFT          = -2
	TURN_SLIGHT_LEFT   = -1
	CONTINUE_ON_STREET = 0
	TURN_SLIGHT_RIGHT  = 1
	TURN_RIGHT         = 2
	TURN_SHARP_RIGHT   = 3
	FINISH             = 4
	START              = 5
)

type Instruction struct {
	Sign     int
	Category string
	NodeID   string // node where the manoeuvre happens
	Point    datastructure.Coordinate
	Distance float64
	Time     float64
}

func NewInstruction(sign int, category string, node datastructure.Node) Instruction {
	return Instruction{
		Sign:     sign,
		Category: category,
		NodeID:   node.ID,
		Point:    node.Position,
	}
}

func (ins *Instruction) GetTurnDescription() string {
	switch ins.Sign {
	case START:
		return fmt.Sprintf("Head out from %s on the %s road", ins.NodeID, ins.Category)
	case FINISH:
		return fmt.Sprintf("Arrive at %s", ins.NodeID)
	case CONTINUE_ON_STREET:
		return fmt.Sprintf("Continue at %s on the %s road", ins.NodeID, ins.Category)
	}

	var dir string
	switch ins.Sign {
	case TURN_SHARP_LEFT:
		dir = "sharp left"
	case TURN_LEFT:
		dir = "left"
	case TURN_SLIGHT_LEFT:
		dir = "slight left"
	case TURN_SLIGHT_RIGHT:
		dir = "slight right"
	case TURN_RIGHT:
		dir = "right"
	case TURN_SHARP_RIGHT:
		dir = "sharp right"
	default:
		dir = "unknown"
	}
	return fmt.Sprintf("Turn %s at %s onto the %s road", dir, ins.NodeID, ins.Category)
}
