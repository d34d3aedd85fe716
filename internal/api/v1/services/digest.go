package services

import (
	"context"

	"go.uber.org/zap"

	"yt-digest/internal/api/errors"
	"yt-digest/internal/api/v1/dto"
	"yt-digest/internal/app/archive"
	"yt-digest/internal/app/cache"
	"yt-digest/internal/app/repository"
	"yt-digest/internal/app/summarize"
	"yt-digest/internal/app/temporal/workflows"
	"yt-digest/internal/app/utils"
)

// DigestServiceImpl implements DigestService
type DigestServiceImpl struct {
	repository repository.VideoRepository
	engine     *summarize.Engine
	cache      cache.SummaryCache
	archive    archive.ArtifactStore
	jobs       JobStarter
	logger     *zap.SugaredLogger
}

// NewDigestService creates a new digest service. cache, store and jobs may be
// nil; the matching feature (caching, archival, async digests) is then off.
func NewDigestService(
	repo repository.VideoRepository,
	engine *summarize.Engine,
	summaryCache cache.SummaryCache,
	store archive.ArtifactStore,
	jobs JobStarter,
	logger *zap.SugaredLogger,
) DigestService {
	return &DigestServiceImpl{
		repository: repo,
		engine:     engine,
		cache:      summaryCache,
		archive:    store,
		jobs:       jobs,
		logger:     logger,
	}
}

// Summarize generates a digest inline. An unchanged corpus is served from the
// summary cache unless force is set; fresh digests are persisted, cached and
// archived before returning.
func (s *DigestServiceImpl) Summarize(ctx context.Context, playlistID string, force bool) (*dto.DigestResponse, error) {
	playlist, err := s.repository.GetPlaylist(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	fingerprint := utils.CorpusFingerprint(playlist)
	if s.cache != nil && !force {
		if digest, err := s.cache.Get(ctx, playlistID, fingerprint); err == nil {
			s.logger.Infow("digest served from cache",
				"playlist_id", playlistID, "fingerprint", fingerprint)
			resp := dto.ToDigestResponse(digest, true)
			return &resp, nil
		}
	}

	digest, err := s.engine.SummarizePlaylist(ctx, playlist)
	if err != nil {
		return nil, err
	}
	if err := s.repository.SaveDigest(ctx, digest); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, fingerprint, digest); err != nil {
			s.logger.Warnw("digest cache write failed",
				"playlist_id", playlistID, "error", err)
		}
	}
	if s.archive != nil {
		if key, err := s.archive.SaveDigest(ctx, digest); err != nil {
			s.logger.Warnw("digest archive failed",
				"playlist_id", playlistID, "error", err)
		} else if key != "" {
			s.logger.Infow("digest archived", "playlist_id", playlistID, "key", key)
		}
	}

	resp := dto.ToDigestResponse(digest, false)
	return &resp, nil
}

// SummarizeAsync submits a durable digest workflow and returns its job id.
func (s *DigestServiceImpl) SummarizeAsync(ctx context.Context, playlistID string) (*dto.JobSubmittedResponse, error) {
	if s.jobs == nil {
		return nil, errors.NewServiceUnavailableError("Async digests are not enabled on this server")
	}
	// Reject unknown playlists here; the workflow would only discover the
	// miss after spinning up an activity.
	if _, err := s.repository.GetPlaylist(ctx, playlistID); err != nil {
		return nil, err
	}

	jobID, err := s.jobs.StartPlaylistDigest(ctx, workflows.DigestJobRequest{PlaylistID: playlistID})
	if err != nil {
		return nil, errors.NewServiceUnavailableError("Failed to submit digest job")
	}

	s.logger.Infow("digest job submitted", "playlist_id", playlistID, "job_id", jobID)
	return &dto.JobSubmittedResponse{
		JobID:      jobID,
		PlaylistID: playlistID,
		Status:     "Running",
	}, nil
}

// LatestDigest returns the most recent stored digest for the playlist.
func (s *DigestServiceImpl) LatestDigest(ctx context.Context, playlistID string) (*dto.DigestResponse, error) {
	digest, err := s.repository.LatestDigest(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToDigestResponse(digest, false)
	return &resp, nil
}
