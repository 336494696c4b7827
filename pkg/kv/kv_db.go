package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/lintang-b-s/triroute/pkg/datastructure"
	"go.uber.org/zap"
)

// KVDB is a badger backed route cache. The database lives in memory only.
type KVDB struct {
	db     *badger.DB
	logger *zap.Logger
}

func NewKVDB(logger *zap.Logger) (*KVDB, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	logger.Info("route cache ready", zap.String("backend", BackendBadger))
	return &KVDB{db: db, logger: logger}, nil
}

func (k *KVDB) SetRoutes(ctx context.Context, key string, routes []datastructure.Route) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	val, err := encodeRoutes(routes)
	if err != nil {
		return err
	}
	return k.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), val)
	})
}

func (k *KVDB) GetRoutes(ctx context.Context, key string) ([]datastructure.Route, bool, error) {
	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	default:
	}

	val, err := k.get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	routes, err := loadRoutes(val)
	if err != nil {
		return nil, false, err
	}
	return routes, true, nil
}

func (k *KVDB) get(key []byte) ([]byte, error) {
	var val []byte
	err := k.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}

		val, err = item.ValueCopy(nil)
		return err
	})
	return val, err
}

func (k *KVDB) Close() error {
	return k.db.Close()
}
