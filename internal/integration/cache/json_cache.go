// Package cache provides a Redis read-through cache for analytics data sources.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Loader produces the value to cache on a miss.
type Loader func(ctx context.Context) (any, error)

// JSONCache stores JSON-encoded values in Redis under a common prefix.
// Redis failures never fail a request; the loader result is served instead.
type JSONCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewJSONCache creates a new JSONCache instance.
func NewJSONCache(client *redis.Client, prefix string, ttl time.Duration) *JSONCache {
	return &JSONCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Key builds the cache key of a data source for one company.
func (c *JSONCache) Key(source, companyID string) string {
	return fmt.Sprintf("%s:%s:%s", c.prefix, source, companyID)
}

// FetchJSON decodes the cached value at key into dest. On a miss it calls
// loader, stores the result and decodes it into dest.
func (c *JSONCache) FetchJSON(ctx context.Context, key string, dest any, loader Loader) error {
	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal(raw, dest); jsonErr == nil {
			return nil
		}
		slog.Warn("Discarding undecodable cache entry", "key", key)
	case errors.Is(err, redis.Nil):
	default:
		slog.Warn("Cache read failed", "key", key, "error", err)
	}

	value, err := loader(ctx)
	if err != nil {
		return err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache value: %w", err)
	}

	if err := c.client.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
		slog.Warn("Cache write failed", "key", key, "error", err)
	}

	return json.Unmarshal(encoded, dest)
}

// Invalidate removes every cached source of a company.
func (c *JSONCache) Invalidate(ctx context.Context, companyID string) error {
	pattern := c.Key("*", companyID)

	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cache keys: %w", err)
	}
	return nil
}
