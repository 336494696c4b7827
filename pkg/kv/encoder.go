package kv

import (
	"fmt"

	"github.com/kelindar/binary"
	"github.com/lintang-b-s/triroute/pkg/datastructure"
)

func encodeRoutes(routes []datastructure.Route) ([]byte, error) {
	bb, err := binary.Marshal(routes)
	if err != nil {
		return nil, fmt.Errorf("encode routes: %w", err)
	}
	return compress(bb)
}

func loadRoutes(bbCompressed []byte) ([]datastructure.Route, error) {
	bb, err := decompress(bbCompressed)
	if err != nil {
		return nil, err
	}
	var routes []datastructure.Route
	if err := binary.Unmarshal(bb, &routes); err != nil {
		return nil, fmt.Errorf("decode routes: %w", err)
	}
	return routes, nil
}
