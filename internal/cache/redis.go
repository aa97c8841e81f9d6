package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key prefix for cached search results
const searchKeyPrefix = "search:"

type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to Redis using a URL (redis://host:port). The
// connection is verified with a short ping so a dead Redis surfaces at boot
// and the caller can fall back to the no-op cache.
func NewRedisCache(url string) (*RedisCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &RedisCache{
		client: client,
	}, nil
}

// GetSearchResult retrieves a cached result by key
func (c *RedisCache) GetSearchResult(ctx context.Context, key string) (*SearchResult, error) {
	data, err := c.client.Get(ctx, searchKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		return nil, err
	}

	var result SearchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SetSearchResult stores a result with TTL
func (c *RedisCache) SetSearchResult(ctx context.Context, key string, result *SearchResult, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, searchKeyPrefix+key, data, ttl).Err()
}

// Close closes the cache connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
