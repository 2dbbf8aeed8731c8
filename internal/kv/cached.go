package kv

import (
	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

var _ Store = (*CachedStore)(nil)

// CachedStore serves reads from an in-process freecache and writes through
// to the wrapped backend. Misses for absent keys are not cached.
type CachedStore struct {
	backend Store
	cache   *freecache.Cache
}

func NewCachedStore(backend Store, cacheSizeMegabytes int) *CachedStore {
	megabyte := 1024 * 1024
	return &CachedStore{
		backend: backend,
		cache:   freecache.NewCache(cacheSizeMegabytes * megabyte),
	}
}

func (c *CachedStore) Get(key string) (string, error) {
	if val, err := c.cache.Get([]byte(key)); err == nil {
		log.Tracef("kv cache hit for %s", key)
		return string(val), nil
	}

	val, err := c.backend.Get(key)
	if err != nil {
		return "", err
	}

	if err := c.cache.Set([]byte(key), []byte(val), 0); err != nil {
		// Entries larger than a cache segment are simply not cached.
		log.Debugf("kv cache skip %s: %s", key, err)
	}
	return val, nil
}

func (c *CachedStore) Set(key, value string) error {
	if err := c.backend.Set(key, value); err != nil {
		c.cache.Del([]byte(key))
		return err
	}
	if err := c.cache.Set([]byte(key), []byte(value), 0); err != nil {
		c.cache.Del([]byte(key))
	}
	return nil
}

func (c *CachedStore) Delete(key string) error {
	c.cache.Del([]byte(key))
	return c.backend.Delete(key)
}

func (c *CachedStore) Close() error {
	c.cache.Clear()
	return c.backend.Close()
}
