// Package kv is the raw persisted key-value store. Values are opaque strings;
// typed access lives in the storage package.
package kv

//go:generate mockgen -source=kv.go -destination=kv_mock.go -package=kv

import (
	"errors"
	"fmt"

	"github.com/misterclayt0n/suren/internal/config"
)

var ErrNotFound = errors.New("kv: key not found")

// IsNotFound reports whether err means the key is absent.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

type Store interface {
	// Get returns ErrNotFound when the key has never been set.
	Get(key string) (string, error)
	Set(key, value string) error
	// Delete of a missing key is not an error.
	Delete(key string) error
	Close() error
}

// Open builds the backend selected in cfg, wrapped in a read cache when
// cfg.CacheMB is positive.
func Open(cfg config.StoreConfig) (Store, error) {
	var (
		st  Store
		err error
	)

	switch cfg.Backend {
	case config.BackendMemory:
		st = NewMemoryStore()
	case config.BackendFile, "":
		st, err = NewFileStore(cfg.Path)
	case config.BackendLibSQL:
		st, err = OpenSQLStore(cfg.URL)
	case config.BackendRedis:
		st = NewRedisStore(newRedisClient(cfg), cfg.RedisPrefix)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	if cfg.CacheMB > 0 {
		st = NewCachedStore(st, cfg.CacheMB)
	}
	return st, nil
}
