package kv

import (
	"context"
	"fmt"

	"github.com/lintang-b-s/triroute/pkg/datastructure"
	"go.uber.org/zap"
)

const (
	BackendNone   = "none"
	BackendBadger = "badger"
	BackendPebble = "pebble"
)

// RouteCache memoises route query answers for the lifetime of the process.
type RouteCache interface {
	GetRoutes(ctx context.Context, key string) ([]datastructure.Route, bool, error)
	SetRoutes(ctx context.Context, key string, routes []datastructure.Route) error
	Close() error
}

func RouteKey(source, target string) string {
	return fmt.Sprintf("routes:%q:%q", source, target)
}

// NewRouteCache opens an in-memory cache for backend. BackendNone returns a nil cache.
func NewRouteCache(backend string, logger *zap.Logger) (RouteCache, error) {
	switch backend {
	case BackendNone, "":
		return nil, nil
	case BackendBadger:
		db, err := NewKVDB(logger)
		if err != nil {
			return nil, err
		}
		return db, nil
	case BackendPebble:
		db, err := NewPebbleDB(logger)
		if err != nil {
			return nil, err
		}
		return db, nil
	}
	return nil, fmt.Errorf("unknown cache backend %q", backend)
}
