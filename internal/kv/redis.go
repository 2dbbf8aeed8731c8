package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/misterclayt0n/suren/internal/config"
)

var _ Store = (*RedisStore)(nil)

type RedisStore struct {
	redisClient *redis.Client
	prefix      string
}

func newRedisClient(cfg config.StoreConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// NewRedisStore namespaces every key with prefix.
func NewRedisStore(redisClient *redis.Client, prefix string) *RedisStore {
	return &RedisStore{
		redisClient: redisClient,
		prefix:      prefix,
	}
}

func (r *RedisStore) Get(key string) (string, error) {
	val, err := r.redisClient.Get(context.Background(), r.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

func (r *RedisStore) Set(key, value string) error {
	if err := r.redisClient.Set(context.Background(), r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *RedisStore) Delete(key string) error {
	if err := r.redisClient.Del(context.Background(), r.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.redisClient.Close()
}
