// Package services implements the v1 API operations on top of the app layer.
package services

import (
	"context"

	"yt-digest/internal/api/v1/dto"
	"yt-digest/internal/app/temporal"
	"yt-digest/internal/app/temporal/workflows"
)

// PlaylistService defines the interface for playlist corpus operations
type PlaylistService interface {
	CreatePlaylist(ctx context.Context, req *dto.CreatePlaylistRequest) (*dto.PlaylistResponse, error)
	GetPlaylist(ctx context.Context, playlistID string) (*dto.PlaylistResponse, error)
	ListPlaylists(ctx context.Context) (*dto.PlaylistListResponse, error)
	DeletePlaylist(ctx context.Context, playlistID string) error
}

// DigestService defines the interface for summarization operations
type DigestService interface {
	Summarize(ctx context.Context, playlistID string, force bool) (*dto.DigestResponse, error)
	SummarizeAsync(ctx context.Context, playlistID string) (*dto.JobSubmittedResponse, error)
	LatestDigest(ctx context.Context, playlistID string) (*dto.DigestResponse, error)
}

// IngestService defines the interface for vector index operations
type IngestService interface {
	Ingest(ctx context.Context, playlistID string) (*dto.IngestResponse, error)
	DropIndex(ctx context.Context, playlistID string) error
}

// ChatService defines the interface for grounded Q&A operations
type ChatService interface {
	Ask(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

// JobService defines the interface for workflow status operations
type JobService interface {
	Status(ctx context.Context, jobID string) (*dto.JobStatusResponse, error)
}

// JobStarter submits digest workflows. Satisfied by *temporal.JobClient.
type JobStarter interface {
	StartPlaylistDigest(ctx context.Context, req workflows.DigestJobRequest) (string, error)
}

// JobTracker reports workflow state. Satisfied by *temporal.JobClient.
type JobTracker interface {
	GetJobStatus(ctx context.Context, workflowID string) (temporal.JobStatus, error)
}
