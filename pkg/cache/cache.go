package cache

import (
	"context"
	"time"
)

// Cache is the contract for the cache layer. Implementations may be Redis
// or a no-op fallback when Redis is unavailable.
type Cache interface {
	// Get loads the value stored under key and unmarshals it into dest.
	// found reports whether the key existed; on a miss dest is untouched.
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes all keys matching a glob pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}

// Nop is a Cache that stores nothing. It is used when Redis cannot be
// reached so that cache failures never take the API down.
type Nop struct{}

func (Nop) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (Nop) Set(context.Context, string, interface{}, time.Duration) error {
	return nil
}
func (Nop) Delete(context.Context, ...string) error     { return nil }
func (Nop) DeletePattern(context.Context, string) error { return nil }
func (Nop) Ping(context.Context) error                  { return nil }
