package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "yt-digest/internal/app/errors"
	"yt-digest/internal/app/model"
)

// RedisCache keeps digests in Redis with a TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to Redis at addr and verifies the connection.
// ttl <= 0 falls back to DefaultTTL.
func NewRedisCache(addr, password string, db int, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCache{client: client, ttl: ttl}, nil
}

// Get loads a cached digest, or ErrCacheMiss.
func (c *RedisCache) Get(ctx context.Context, playlistID, fingerprint string) (model.Digest, error) {
	payload, err := c.client.Get(ctx, digestKey(playlistID, fingerprint)).Bytes()
	if err == redis.Nil {
		return model.Digest{}, apperrors.ErrCacheMiss
	}
	if err != nil {
		return model.Digest{}, fmt.Errorf("redis get: %w", err)
	}
	var digest model.Digest
	if err := json.Unmarshal(payload, &digest); err != nil {
		return model.Digest{}, fmt.Errorf("decode cached digest: %w", err)
	}
	return digest, nil
}

// Put stores a digest under its playlist+fingerprint key.
func (c *RedisCache) Put(ctx context.Context, fingerprint string, digest model.Digest) error {
	payload, err := json.Marshal(digest)
	if err != nil {
		return fmt.Errorf("encode digest: %w", err)
	}
	if err := c.client.Set(ctx, digestKey(digest.PlaylistID, fingerprint), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Invalidate removes every cached digest of the playlist.
func (c *RedisCache) Invalidate(ctx context.Context, playlistID string) error {
	iter := c.client.Scan(ctx, 0, playlistPattern(playlistID), 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("redis del %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
