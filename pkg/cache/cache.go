// Package cache defines the response cache used by the service layer.
//
//go:generate mockgen -package mockcache -source=cache.go -destination=mock/mockcache.go *
package cache

import (
	"context"
	"time"
)

// Cache stores opaque values under string keys with a time to live.
type Cache interface {
	// Get returns the value stored under key. A missing or expired key is
	// reported with found=false and a nil error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key for ttl. A non-positive ttl stores the value
	// without expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}

// Noop is a Cache that never stores anything. It lets callers run without a
// cache backend.
type Noop struct{}

var _ Cache = Noop{}

func (Noop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (Noop) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (Noop) Delete(context.Context, ...string) error { return nil }
