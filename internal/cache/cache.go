package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fhuszti/transcripts-ms-go/internal/db"
	"github.com/fhuszti/transcripts-ms-go/internal/logger"
	"github.com/fhuszti/transcripts-ms-go/internal/port"
	"github.com/redis/go-redis/v9"
)

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetMediaDetails(ctx context.Context, id db.UUID) ([]byte, error) {
	val, err := c.client.Get(ctx, getCacheKey(id.String())).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) GetEtagMediaDetails(ctx context.Context, id db.UUID) (string, error) {
	val, err := c.client.Get(ctx, getEtagCacheKey(id.String())).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil // cache miss
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) SetMediaDetails(ctx context.Context, id db.UUID, data []byte, validUntil time.Time) {
	if err := c.client.Set(ctx, getCacheKey(id.String()), data, time.Until(validUntil)).Err(); err != nil {
		logger.Warnf(ctx, "⚠️ could not cache details for media #%s: %v", id, err)
	}
}

func (c *Cache) SetEtagMediaDetails(ctx context.Context, id db.UUID, etag string, validUntil time.Time) {
	if err := c.client.Set(ctx, getEtagCacheKey(id.String()), etag, time.Until(validUntil)).Err(); err != nil {
		logger.Warnf(ctx, "⚠️ could not cache etag for media #%s: %v", id, err)
	}
}

func (c *Cache) DeleteMediaDetails(ctx context.Context, id db.UUID) error {
	if err := c.client.Del(ctx, getCacheKey(id.String())).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func (c *Cache) DeleteEtagMediaDetails(ctx context.Context, id db.UUID) error {
	if err := c.client.Del(ctx, getEtagCacheKey(id.String())).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func getCacheKey(id string) string {
	return "media:" + id
}

func getEtagCacheKey(id string) string {
	return "media_etag:" + id
}
