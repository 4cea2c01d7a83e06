package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store backed by a Redis instance. It lets several machines
// share one tracker state while keeping the same degrade-on-failure
// contract as the file backend.
type Redis struct {
	ctx context.Context
	rdb *redis.Client
}

// NewRedis connects to the Redis instance described by redisURL
// (redis://[user:pass@]host:port/db) and verifies the connection.
func NewRedis(ctx context.Context, redisURL string) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Redis{ctx: ctx, rdb: rdb}, nil
}

func (r *Redis) Get(key string) (string, bool) {
	v, err := r.rdb.Get(r.ctx, key).Result()
	if err != nil {
		return "", false
	}
	return v, true
}

func (r *Redis) Set(key, value string) bool {
	return r.rdb.Set(r.ctx, key, value, 0).Err() == nil
}

func (r *Redis) Delete(key string) {
	r.rdb.Del(r.ctx, key)
}

// Close releases the underlying client.
func (r *Redis) Close() error {
	return r.rdb.Close()
}
