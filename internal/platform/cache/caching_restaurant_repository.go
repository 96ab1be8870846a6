// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"rapideat_backend/internal/feature/restaurants/domain/entity"
	"rapideat_backend/internal/feature/restaurants/usecase"
)

// CachingRestaurantRepository decorates a RestaurantRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository.
type CachingRestaurantRepository struct {
	inner     usecase.RestaurantRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check to ensure CachingRestaurantRepository implements RestaurantRepository.
var _ usecase.RestaurantRepository = (*CachingRestaurantRepository)(nil)

// NewCachingRestaurantRepository decorates a RestaurantRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "restaurants".
func NewCachingRestaurantRepository(rdb *redis.Client, ttl time.Duration, inner usecase.RestaurantRepository, namespace string) *CachingRestaurantRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "restaurants"
	}
	return &CachingRestaurantRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Query retrieves restaurants, checking cache first then falling back to the database.
func (c *CachingRestaurantRepository) Query(ctx context.Context, f usecase.Filters) ([]entity.Restaurant, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Query(ctx, f)
	}

	key := c.cacheKey(f)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Restaurant
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.Query(ctx, f)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// ReplaceAll swaps the catalog contents and invalidates every cached query.
func (c *CachingRestaurantRepository) ReplaceAll(ctx context.Context, restaurants []entity.Restaurant) error {
	if err := c.inner.ReplaceAll(ctx, restaurants); err != nil {
		return err
	}
	// Exit early if Redis is not configured
	if c.rdb == nil {
		return nil
	}

	// Every cached result may reference replaced rows, so drop the whole namespace.
	_ = c.deleteByPattern(ctx, c.namespace+":*") // Best effort: don't fail if cache deletion fails
	return nil
}

// cacheKey generates a cache key for a specific query.
func (c *CachingRestaurantRepository) cacheKey(f usecase.Filters) string {
	return fmt.Sprintf("%s:q=%s:c=%s:r=%g:m=%d:s=%s",
		c.namespace,
		safe(strings.ToLower(strings.TrimSpace(f.Query))),
		safe(strings.ToLower(strings.Join(f.Cuisines, ","))),
		f.MinRating,
		f.MaxCost,
		safe(string(f.Sort)),
	)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingRestaurantRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	// Simple escaping of characters that are problematic for Redis keys
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
