// Package archive persists finished digests and corpus snapshots to object
// storage so results survive cache eviction and database resets.
package archive

import (
	"context"
	"fmt"
	"strings"
	"time"

	"yt-digest/internal/app/model"
)

// ArtifactStore writes summarization artifacts. Keys are returned so callers
// can hand out stable references.
type ArtifactStore interface {
	// SaveDigest stores the digest as a markdown document.
	SaveDigest(ctx context.Context, digest model.Digest) (string, error)

	// SaveCorpus stores a JSON snapshot of the playlist and its transcripts.
	SaveCorpus(ctx context.Context, playlist model.Playlist) (string, error)

	// ArtifactURL returns a direct URL for a stored key.
	ArtifactURL(key string) string
}

// Object key layouts. Timestamps keep history; nothing is overwritten.
const (
	digestKeyLayout = "digests/%s/%s.md"
	corpusKeyLayout = "corpora/%s/%s.json"
	keyTimeFormat   = "20060102-150405"
)

func digestKey(playlistID string, at time.Time) string {
	return fmt.Sprintf(digestKeyLayout, playlistID, at.UTC().Format(keyTimeFormat))
}

func corpusKey(playlistID string, at time.Time) string {
	return fmt.Sprintf(corpusKeyLayout, playlistID, at.UTC().Format(keyTimeFormat))
}

// renderDigestMarkdown formats a digest as a standalone markdown document.
func renderDigestMarkdown(digest model.Digest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Playlist Digest: %s\n\n", digest.PlaylistID)
	fmt.Fprintf(&b, "- Strategy: %s\n", digest.Strategy)
	fmt.Fprintf(&b, "- Videos: %d\n", digest.VideoCount)
	fmt.Fprintf(&b, "- Corpus size: %d chars\n", digest.TotalChars)
	fmt.Fprintf(&b, "- Compressed: %t\n", digest.Compressed)
	fmt.Fprintf(&b, "- LLM calls: %d\n", digest.LLMCalls)
	if !digest.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "- Generated: %s\n", digest.CreatedAt.UTC().Format(time.RFC3339))
	}
	b.WriteString("\n---\n\n")
	b.WriteString(digest.Summary)
	b.WriteString("\n")
	return b.String()
}

// NopArchive discards artifacts. Used when no object storage is configured
// so the digest pipeline keeps working without it.
type NopArchive struct{}

// NewNopArchive returns an archive that stores nothing.
func NewNopArchive() *NopArchive {
	return &NopArchive{}
}

// SaveDigest returns the key the digest would have been stored under.
func (NopArchive) SaveDigest(ctx context.Context, digest model.Digest) (string, error) {
	return digestKey(digest.PlaylistID, time.Now()), nil
}

// SaveCorpus returns the key the snapshot would have been stored under.
func (NopArchive) SaveCorpus(ctx context.Context, playlist model.Playlist) (string, error) {
	return corpusKey(playlist.ID, time.Now()), nil
}

// ArtifactURL returns an empty URL; nothing is stored.
func (NopArchive) ArtifactURL(key string) string {
	return ""
}
