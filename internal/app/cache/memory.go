package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	apperrors "yt-digest/internal/app/errors"
	"yt-digest/internal/app/model"
)

type memoryEntry struct {
	digest    model.Digest
	expiresAt time.Time
}

// MemoryCache is the in-process fallback used when no Redis address is
// configured. Entries expire lazily on read.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryCache builds an empty in-process cache. ttl <= 0 falls back to
// DefaultTTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get loads a live cached digest, or ErrCacheMiss.
func (c *MemoryCache) Get(ctx context.Context, playlistID, fingerprint string) (model.Digest, error) {
	c.mu.RLock()
	entry, ok := c.entries[digestKey(playlistID, fingerprint)]
	c.mu.RUnlock()
	if !ok || c.now().After(entry.expiresAt) {
		return model.Digest{}, apperrors.ErrCacheMiss
	}
	return entry.digest, nil
}

// Put stores a digest under its playlist+fingerprint key.
func (c *MemoryCache) Put(ctx context.Context, fingerprint string, digest model.Digest) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[digestKey(digest.PlaylistID, fingerprint)] = memoryEntry{
		digest:    digest,
		expiresAt: c.now().Add(c.ttl),
	}
	return nil
}

// Invalidate removes every cached digest of the playlist.
func (c *MemoryCache) Invalidate(ctx context.Context, playlistID string) error {
	prefix := strings.TrimSuffix(playlistPattern(playlistID), "*")
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	return nil
}

// Close is a no-op for the in-process cache.
func (c *MemoryCache) Close() error {
	return nil
}
