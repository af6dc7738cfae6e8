package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// directoryKeyPrefix namespaces all cached remote directory listings.
const directoryKeyPrefix = "directory:"

// DirectoryCache caches remote directory listings (Slide clients and devices,
// ConnectWise companies, boards, members) as JSON blobs with a TTL. A cache
// miss or Redis outage degrades to a direct remote fetch; entries are never
// treated as authoritative.
type DirectoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDirectoryCache(client *redis.Client, ttl time.Duration) *DirectoryCache {
	return &DirectoryCache{client: client, ttl: ttl}
}

func (c *DirectoryCache) buildKey(name string) string {
	return directoryKeyPrefix + name
}

// Get unmarshals the cached listing into dest. Returns (false, nil) on a
// cache miss.
func (c *DirectoryCache) Get(ctx context.Context, name string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, c.buildKey(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get cached directory %s: %w", name, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cached directory %s: %w", name, err)
	}

	return true, nil
}

// Set stores the listing under the configured TTL.
func (c *DirectoryCache) Set(ctx context.Context, name string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal directory %s: %w", name, err)
	}

	if err := c.client.Set(ctx, c.buildKey(name), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache directory %s: %w", name, err)
	}

	return nil
}

// Invalidate drops a cached listing so the next read refetches.
func (c *DirectoryCache) Invalidate(ctx context.Context, name string) error {
	if err := c.client.Del(ctx, c.buildKey(name)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached directory %s: %w", name, err)
	}
	return nil
}

// Fetch returns the cached listing when present, otherwise invokes fetch,
// caches the result best-effort, and returns it. Cache errors are swallowed
// after being reported through the returned bool; the remote call is the
// source of truth.
func Fetch[T any](ctx context.Context, c *DirectoryCache, name string, fetch func(ctx context.Context) ([]T, error)) ([]T, bool, error) {
	if c != nil {
		var cached []T
		if hit, err := c.Get(ctx, name, &cached); err == nil && hit {
			return cached, true, nil
		}
	}

	fresh, err := fetch(ctx)
	if err != nil {
		return nil, false, err
	}

	if c != nil {
		_ = c.Set(ctx, name, fresh)
	}

	return fresh, false, nil
}
