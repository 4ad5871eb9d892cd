// Package rediscache implements cache.Cache on top of Redis, for
// deployments where the file cache's local-disk scope is too narrow (the
// HTTP API, pkg/httpapi, typically runs more than one replica).
package rediscache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/LyteFM/overlap-components/pkg/cache"
)

// Cache implements cache.Cache backed by a single Redis client.
type Cache struct {
	client *redis.Client
}

// New connects to addr (host:port) and returns a ready-to-use Cache. It
// does not ping the server eagerly; the first Get/Set surfaces any
// connection error, matching how FileCache only touches disk lazily.
func New(addr string) *Cache {
	return &Cache{client: redis.NewClient(&redis.Options{Addr: addr})}
}

// Get retrieves a value, reporting a cache miss (not an error) for a
// missing key.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, cache.Retryable(err)
	}
	return data, true, nil
}

// Set stores data under key. ttl <= 0 means "does not expire" (Redis'
// own "no expiration" sentinel, 0).
func (c *Cache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return cache.Retryable(err)
	}
	return nil
}

// Delete removes key, tolerating a key that was never set.
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Close releases the underlying connection pool.
func (c *Cache) Close() error {
	return c.client.Close()
}

// Ensure Cache implements cache.Cache.
var _ cache.Cache = (*Cache)(nil)
