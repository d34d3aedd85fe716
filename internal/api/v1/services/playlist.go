package services

import (
	"context"

	"go.uber.org/zap"

	"yt-digest/internal/api/v1/dto"
	"yt-digest/internal/app/cache"
	"yt-digest/internal/app/ingest"
	"yt-digest/internal/app/repository"
	"yt-digest/internal/app/source"
)

// PlaylistServiceImpl implements PlaylistService
type PlaylistServiceImpl struct {
	repository repository.VideoRepository
	indexer    *ingest.Indexer
	cache      cache.SummaryCache
	logger     *zap.SugaredLogger
}

// NewPlaylistService creates a new playlist service. cache may be nil when no
// summary cache is configured.
func NewPlaylistService(
	repo repository.VideoRepository,
	indexer *ingest.Indexer,
	summaryCache cache.SummaryCache,
	logger *zap.SugaredLogger,
) PlaylistService {
	return &PlaylistServiceImpl{
		repository: repo,
		indexer:    indexer,
		cache:      summaryCache,
		logger:     logger,
	}
}

// CreatePlaylist validates and stores a playlist corpus.
func (s *PlaylistServiceImpl) CreatePlaylist(ctx context.Context, req *dto.CreatePlaylistRequest) (*dto.PlaylistResponse, error) {
	playlist := req.ToModel()
	if err := source.Validate(playlist); err != nil {
		return nil, err
	}
	source.StampFetchTimes(&playlist)

	if err := s.repository.SavePlaylist(ctx, playlist); err != nil {
		return nil, err
	}

	s.logger.Infow("playlist stored",
		"playlist_id", playlist.ID,
		"videos", playlist.VideoCount(),
		"total_chars", playlist.TotalChars())

	resp := dto.ToPlaylistResponse(playlist, false)
	return &resp, nil
}

// GetPlaylist returns one playlist with its video rows.
func (s *PlaylistServiceImpl) GetPlaylist(ctx context.Context, playlistID string) (*dto.PlaylistResponse, error) {
	playlist, err := s.repository.GetPlaylist(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToPlaylistResponse(playlist, true)
	return &resp, nil
}

// ListPlaylists returns all stored playlists without videos.
func (s *PlaylistServiceImpl) ListPlaylists(ctx context.Context) (*dto.PlaylistListResponse, error) {
	playlists, err := s.repository.ListPlaylists(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.PlaylistListResponse{
		Playlists: make([]dto.PlaylistResponse, len(playlists)),
		Total:     len(playlists),
	}
	for i, p := range playlists {
		resp.Playlists[i] = dto.ToPlaylistResponse(p, false)
	}
	return resp, nil
}

// DeletePlaylist removes the playlist rows, its vector namespace and its
// cached digests. Index and cache cleanup are best effort: the rows are the
// source of truth and a dangling namespace only wastes space.
func (s *PlaylistServiceImpl) DeletePlaylist(ctx context.Context, playlistID string) error {
	if _, err := s.repository.GetPlaylist(ctx, playlistID); err != nil {
		return err
	}
	if err := s.repository.DeletePlaylist(ctx, playlistID); err != nil {
		return err
	}

	if s.indexer != nil {
		if err := s.indexer.DeletePlaylist(ctx, playlistID); err != nil {
			s.logger.Warnw("vector namespace cleanup failed",
				"playlist_id", playlistID, "error", err)
		}
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, playlistID); err != nil {
			s.logger.Warnw("cache cleanup failed",
				"playlist_id", playlistID, "error", err)
		}
	}

	s.logger.Infow("playlist deleted", "playlist_id", playlistID)
	return nil
}
