package handlers_test

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"yt-digest/internal/api/v1/dto"
	"yt-digest/internal/api/v1/services"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

type mockPlaylistService struct{ mock.Mock }

var _ services.PlaylistService = (*mockPlaylistService)(nil)

func (m *mockPlaylistService) CreatePlaylist(ctx context.Context, req *dto.CreatePlaylistRequest) (*dto.PlaylistResponse, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*dto.PlaylistResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPlaylistService) GetPlaylist(ctx context.Context, playlistID string) (*dto.PlaylistResponse, error) {
	args := m.Called(ctx, playlistID)
	if resp := args.Get(0); resp != nil {
		return resp.(*dto.PlaylistResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPlaylistService) ListPlaylists(ctx context.Context) (*dto.PlaylistListResponse, error) {
	args := m.Called(ctx)
	if resp := args.Get(0); resp != nil {
		return resp.(*dto.PlaylistListResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPlaylistService) DeletePlaylist(ctx context.Context, playlistID string) error {
	args := m.Called(ctx, playlistID)
	return args.Error(0)
}

type mockDigestService struct{ mock.Mock }

var _ services.DigestService = (*mockDigestService)(nil)

func (m *mockDigestService) Summarize(ctx context.Context, playlistID string, force bool) (*dto.DigestResponse, error) {
	args := m.Called(ctx, playlistID, force)
	if resp := args.Get(0); resp != nil {
		return resp.(*dto.DigestResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDigestService) SummarizeAsync(ctx context.Context, playlistID string) (*dto.JobSubmittedResponse, error) {
	args := m.Called(ctx, playlistID)
	if resp := args.Get(0); resp != nil {
		return resp.(*dto.JobSubmittedResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDigestService) LatestDigest(ctx context.Context, playlistID string) (*dto.DigestResponse, error) {
	args := m.Called(ctx, playlistID)
	if resp := args.Get(0); resp != nil {
		return resp.(*dto.DigestResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockIngestService struct{ mock.Mock }

var _ services.IngestService = (*mockIngestService)(nil)

func (m *mockIngestService) Ingest(ctx context.Context, playlistID string) (*dto.IngestResponse, error) {
	args := m.Called(ctx, playlistID)
	if resp := args.Get(0); resp != nil {
		return resp.(*dto.IngestResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockIngestService) DropIndex(ctx context.Context, playlistID string) error {
	args := m.Called(ctx, playlistID)
	return args.Error(0)
}

type mockChatService struct{ mock.Mock }

var _ services.ChatService = (*mockChatService)(nil)

func (m *mockChatService) Ask(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*dto.ChatResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockJobService struct{ mock.Mock }

var _ services.JobService = (*mockJobService)(nil)

func (m *mockJobService) Status(ctx context.Context, jobID string) (*dto.JobStatusResponse, error) {
	args := m.Called(ctx, jobID)
	if resp := args.Get(0); resp != nil {
		return resp.(*dto.JobStatusResponse), args.Error(1)
	}
	return nil, args.Error(1)
}
