// Package rediscache provides a cache.Cache implementation backed by Redis.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"football/pkg/cache"
)

// Options configure the Redis connection.
type Options struct {
	// Addr is either a redis:// URL or a host:port pair.
	Addr string
	// Password is used for host:port addresses. URLs carry their own credentials.
	Password string
	// DB selects the logical database for host:port addresses.
	DB int
	// Namespace prefixes every key, e.g. "football:".
	Namespace string
}

// Cache stores values in Redis under a namespace prefix.
type Cache struct {
	client    redis.UniversalClient
	namespace string
}

var _ cache.Cache = (*Cache)(nil)

// Connect creates a Redis client from opts and verifies it with a PING.
func Connect(ctx context.Context, opts Options) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(opts.Addr, "redis://") || strings.HasPrefix(opts.Addr, "rediss://") {
		o, err := redis.ParseURL(opts.Addr)
		if err != nil {
			return nil, fmt.Errorf("could not parse redis url: %w", err)
		}
		client = redis.NewClient(o)
	} else {
		client = redis.NewClient(&redis.Options{Addr: opts.Addr, Password: opts.Password, DB: opts.DB})
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return client, nil
}

// New wraps an existing Redis client.
func New(client redis.UniversalClient, namespace string) *Cache {
	return &Cache{client: client, namespace: namespace}
}

func (c *Cache) key(k string) string { return c.namespace + k }

// Get implements cache.Cache.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not get %q from redis: %w", key, err)
	}

	return b, true, nil
}

// Set implements cache.Cache.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := c.client.Set(ctx, c.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("could not set %q in redis: %w", key, err)
	}

	return nil
}

// Delete implements cache.Cache.
func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.key(k)
	}
	if err := c.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("could not delete keys from redis: %w", err)
	}

	return nil
}
