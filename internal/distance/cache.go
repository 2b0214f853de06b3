package distance

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"samayas/internal/utils"
)

// Cached wraps a provider with a Redis read-through cache. Road distances
// between two addresses change rarely, so a long TTL is safe. Redis errors
// degrade to the inner provider instead of failing the quote.
type Cached struct {
	inner Provider
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCached(inner Provider, rdb *redis.Client, ttl time.Duration) *Cached {
	return &Cached{inner: inner, rdb: rdb, ttl: ttl}
}

func (c *Cached) DistanceKm(ctx context.Context, pickup, drop string) (int, error) {
	key := cacheKey(pickup, drop)
	if v, err := c.rdb.Get(ctx, key).Result(); err == nil {
		if km, convErr := strconv.Atoi(v); convErr == nil {
			return km, nil
		}
	}

	km, err := c.inner.DistanceKm(ctx, pickup, drop)
	if err != nil {
		return 0, err
	}
	_ = c.rdb.Set(ctx, key, strconv.Itoa(km), c.ttl).Err()
	return km, nil
}

func cacheKey(pickup, drop string) string {
	norm := func(s string) string {
		return strings.ToLower(utils.NormalizeSpace(s))
	}
	return "distance:" + norm(pickup) + "|" + norm(drop)
}
