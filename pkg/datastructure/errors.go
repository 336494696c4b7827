package datastructure

import "errors"

var (
	ErrDuplicateNode    = errors.New("duplicate node id")
	ErrUnknownNode      = errors.New("edge references unknown node")
	ErrZeroSpeed        = errors.New("edge speed must be positive")
	ErrInvalidEdgeValue = errors.New("edge value must be a finite non-negative number")
	ErrInvalidPosition  = errors.New("node position must be finite")
	ErrNodeNotFound     = errors.New("node not found")
	ErrEdgeNotFound     = errors.New("nodes are not connected by an edge")
)
