package services

import (
	"context"

	"go.uber.org/zap"

	"yt-digest/internal/api/v1/dto"
	"yt-digest/internal/app/ingest"
	"yt-digest/internal/app/repository"
)

// IngestServiceImpl implements IngestService
type IngestServiceImpl struct {
	repository repository.VideoRepository
	indexer    *ingest.Indexer
	logger     *zap.SugaredLogger
}

// NewIngestService creates a new ingest service
func NewIngestService(
	repo repository.VideoRepository,
	indexer *ingest.Indexer,
	logger *zap.SugaredLogger,
) IngestService {
	return &IngestServiceImpl{
		repository: repo,
		indexer:    indexer,
		logger:     logger,
	}
}

// Ingest indexes the stored corpus into the vector store.
func (s *IngestServiceImpl) Ingest(ctx context.Context, playlistID string) (*dto.IngestResponse, error) {
	playlist, err := s.repository.GetPlaylist(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	report, err := s.indexer.IngestPlaylist(ctx, playlist)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("ingestion run finished",
		"playlist_id", playlistID,
		"chunks_indexed", report.ChunksIndexed,
		"chunks_failed", report.ChunksFailed)

	resp := dto.ToIngestResponse(report)
	return &resp, nil
}

// DropIndex removes the playlist's vector namespace. Stored transcripts and
// digests are untouched.
func (s *IngestServiceImpl) DropIndex(ctx context.Context, playlistID string) error {
	if _, err := s.repository.GetPlaylist(ctx, playlistID); err != nil {
		return err
	}
	if err := s.indexer.DeletePlaylist(ctx, playlistID); err != nil {
		return err
	}
	s.logger.Infow("vector namespace dropped", "playlist_id", playlistID)
	return nil
}
