// Package activities implements the digest workflow's activities over the
// repository, strategy engine and artifact archive.
package activities

import (
	"context"
	"fmt"
	"time"

	"go.temporal.io/sdk/activity"

	"yt-digest/internal/app/archive"
	"yt-digest/internal/app/cache"
	apperrors "yt-digest/internal/app/errors"
	"yt-digest/internal/app/model"
	"yt-digest/internal/app/repository"
	"yt-digest/internal/app/summarize"
	"yt-digest/internal/app/utils"
)

// DigestActivities bundles the dependencies of the digest workflow.
type DigestActivities struct {
	repo    repository.VideoRepository
	engine  *summarize.Engine
	store   archive.ArtifactStore
	summary cache.SummaryCache
}

// NewDigestActivities wires the activity set. The cache may be nil; digests
// are then always computed fresh.
func NewDigestActivities(
	repo repository.VideoRepository,
	engine *summarize.Engine,
	store archive.ArtifactStore,
	summary cache.SummaryCache,
) *DigestActivities {
	return &DigestActivities{
		repo:    repo,
		engine:  engine,
		store:   store,
		summary: summary,
	}
}

// LoadCorpus fetches the stored playlist with all transcripts.
func (a *DigestActivities) LoadCorpus(ctx context.Context, playlistID string) (model.Playlist, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Loading corpus", "playlistId", playlistID)

	playlist, err := a.repo.GetPlaylist(ctx, playlistID)
	if err != nil {
		return model.Playlist{}, err
	}

	logger.Info("Corpus loaded",
		"playlistId", playlistID,
		"videos", playlist.VideoCount(),
		"chars", playlist.TotalChars())
	return playlist, nil
}

// SummarizeCorpus produces the digest, serving from cache when the corpus
// fingerprint is unchanged. Fresh digests are persisted and cached.
func (a *DigestActivities) SummarizeCorpus(ctx context.Context, playlist model.Playlist) (model.Digest, error) {
	logger := activity.GetLogger(ctx)
	fingerprint := utils.CorpusFingerprint(playlist)

	if a.summary != nil {
		if cached, err := a.summary.Get(ctx, playlist.ID, fingerprint); err == nil {
			logger.Info("Digest served from cache", "playlistId", playlist.ID)
			return cached, nil
		}
	}

	activity.RecordHeartbeat(ctx, fmt.Sprintf("Summarizing playlist: %s", playlist.ID))

	// Engine calls can run for minutes on large corpora. Heartbeat until
	// the call returns so the worker is not presumed dead.
	heartbeatTicker := time.NewTicker(10 * time.Second)
	defer heartbeatTicker.Stop()

	done := make(chan struct{})
	var digest model.Digest
	var summarizeErr error

	go func() {
		digest, summarizeErr = a.engine.SummarizePlaylist(ctx, playlist)
		close(done)
	}()

	for {
		select {
		case <-done:
			if summarizeErr != nil {
				logger.Error("Summarization failed", "error", summarizeErr)
				return model.Digest{}, summarizeErr
			}

			if err := a.repo.SaveDigest(ctx, digest); err != nil {
				return model.Digest{}, apperrors.Wrap(err, "persist digest")
			}
			if a.summary != nil {
				if err := a.summary.Put(ctx, fingerprint, digest); err != nil {
					logger.Warn("Failed to cache digest", "error", err)
				}
			}

			logger.Info("Summarization completed",
				"playlistId", playlist.ID,
				"strategy", digest.Strategy,
				"llmCalls", digest.LLMCalls)
			return digest, nil

		case <-heartbeatTicker.C:
			activity.RecordHeartbeat(ctx, fmt.Sprintf("Summarizing playlist: %s", playlist.ID))

		case <-ctx.Done():
			return model.Digest{}, ctx.Err()
		}
	}
}

// ArchiveDigest stores the digest markdown in object storage and returns the
// object key.
func (a *DigestActivities) ArchiveDigest(ctx context.Context, digest model.Digest) (string, error) {
	logger := activity.GetLogger(ctx)

	key, err := a.store.SaveDigest(ctx, digest)
	if err != nil {
		return "", apperrors.Wrap(err, "archive digest")
	}

	logger.Info("Digest archived", "playlistId", digest.PlaylistID, "key", key)
	return key, nil
}
