// Package cache stores finished digests keyed by corpus fingerprint so
// unchanged playlists are never re-summarized.
package cache

import (
	"context"
	"fmt"
	"time"

	"yt-digest/internal/app/model"
)

// DefaultTTL is how long a cached digest stays valid.
const DefaultTTL = 24 * time.Hour

// SummaryCache stores digests keyed by playlist id plus corpus fingerprint.
// Get returns errors.ErrCacheMiss when no live entry exists. A fingerprint
// change (new video, grown transcript) misses naturally because it is part
// of the key.
type SummaryCache interface {
	Get(ctx context.Context, playlistID, fingerprint string) (model.Digest, error)
	Put(ctx context.Context, fingerprint string, digest model.Digest) error
	Invalidate(ctx context.Context, playlistID string) error
	Close() error
}

// digestKey builds the storage key for one playlist+fingerprint pair.
func digestKey(playlistID, fingerprint string) string {
	return fmt.Sprintf("ytd:digest:%s:%s", playlistID, fingerprint)
}

// playlistPattern matches every digest key of one playlist.
func playlistPattern(playlistID string) string {
	return fmt.Sprintf("ytd:digest:%s:*", playlistID)
}
