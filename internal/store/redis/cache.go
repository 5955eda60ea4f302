package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheResolution stores a query -> resolved target string.
func (s *Store) CacheResolution(ctx context.Context, query, target string, ttl time.Duration) error {
	if err := s.client.Set(ctx, CacheKey(query), target, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache resolution: %w", err)
	}
	return nil
}

// GetCachedResolution retrieves a cached resolution. A cache miss returns
// empty without error.
func (s *Store) GetCachedResolution(ctx context.Context, query string) (string, error) {
	target, err := s.client.Get(ctx, CacheKey(query)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get cached resolution: %w", err)
	}
	return target, nil
}

// FlushCache removes every cached resolution. Called after a reload, since a
// new database invalidates prior resolutions wholesale.
func (s *Store) FlushCache(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, KeyPrefixCache+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete cache key: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to flush cache: %w", err)
	}
	return nil
}
