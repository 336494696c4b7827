package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/lintang-b-s/triroute/pkg/datastructure"
	"go.uber.org/zap"
)

// PebbleDB is a pebble backed route cache on an in-memory filesystem.
type PebbleDB struct {
	db     *pebble.DB
	logger *zap.Logger
}

func NewPebbleDB(logger *zap.Logger) (*PebbleDB, error) {
	db, err := pebble.Open("", &pebble.Options{FS: vfs.NewMem()})
	if err != nil {
		return nil, fmt.Errorf("open pebble: %w", err)
	}
	logger.Info("route cache ready", zap.String("backend", BackendPebble))
	return &PebbleDB{db: db, logger: logger}, nil
}

func (p *PebbleDB) SetRoutes(ctx context.Context, key string, routes []datastructure.Route) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	val, err := encodeRoutes(routes)
	if err != nil {
		return err
	}
	return p.db.Set([]byte(key), val, pebble.NoSync)
}

func (p *PebbleDB) GetRoutes(ctx context.Context, key string) ([]datastructure.Route, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	val, closer, err := p.db.Get([]byte(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	defer closer.Close()

	routes, err := loadRoutes(val)
	if err != nil {
		return nil, false, err
	}
	return routes, true, nil
}

func (p *PebbleDB) Close() error {
	return p.db.Close()
}
