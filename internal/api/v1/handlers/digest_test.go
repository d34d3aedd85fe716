package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"yt-digest/internal/api/v1/dto"
	"yt-digest/internal/api/v1/handlers"
	apperrors "yt-digest/internal/app/errors"
)

func TestDigestHandler_Summarize(t *testing.T) {
	tests := []struct {
		name           string
		playlistID     string
		queryParams    string
		setupMocks     func(*mockDigestService)
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name:       "sync digest",
			playlistID: "PL-go",
			setupMocks: func(ms *mockDigestService) {
				ms.On("Summarize", mock.Anything, "PL-go", false).
					Return(&dto.DigestResponse{
						PlaylistID: "PL-go",
						Strategy:   "direct",
						Summary:    "Channels, slices and the scheduler.",
						VideoCount: 4,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "direct", body["strategy"])
				assert.Equal(t, false, body["cached"])
			},
		},
		{
			name:        "force bypasses the cache",
			playlistID:  "PL-go",
			queryParams: "?force=true",
			setupMocks: func(ms *mockDigestService) {
				ms.On("Summarize", mock.Anything, "PL-go", true).
					Return(&dto.DigestResponse{PlaylistID: "PL-go", Strategy: "direct"}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "PL-go", body["playlist_id"])
			},
		},
		{
			name:        "async submits a job",
			playlistID:  "PL-go",
			queryParams: "?async=true",
			setupMocks: func(ms *mockDigestService) {
				ms.On("SummarizeAsync", mock.Anything, "PL-go").
					Return(&dto.JobSubmittedResponse{
						JobID:      "digest-PL-go-1700000000",
						PlaylistID: "PL-go",
						Status:     "Running",
					}, nil)
			},
			expectedStatus: http.StatusAccepted,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "digest-PL-go-1700000000", body["job_id"])
				assert.Equal(t, "Running", body["status"])
			},
		},
		{
			name:       "unknown playlist maps to 404",
			playlistID: "PL-nope",
			setupMocks: func(ms *mockDigestService) {
				ms.On("Summarize", mock.Anything, "PL-nope", false).
					Return(nil, apperrors.Wrapf(apperrors.ErrUnknownPlaylist, "%s", "PL-nope"))
			},
			expectedStatus: http.StatusNotFound,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "not_found", body["kind"])
			},
		},
		{
			name:       "empty corpus maps to 422",
			playlistID: "PL-silent",
			setupMocks: func(ms *mockDigestService) {
				ms.On("Summarize", mock.Anything, "PL-silent", false).
					Return(nil, apperrors.ErrEmptyCorpus)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "validation", body["kind"])
			},
		},
		{
			name:       "provider failure maps to 503",
			playlistID: "PL-go",
			setupMocks: func(ms *mockDigestService) {
				ms.On("Summarize", mock.Anything, "PL-go", false).
					Return(nil, apperrors.Wrap(apperrors.ErrProviderFailure, "generate"))
			},
			expectedStatus: http.StatusServiceUnavailable,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "service_unavailable", body["kind"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter()
			service := &mockDigestService{}
			tt.setupMocks(service)

			handler := handlers.NewDigestHandler(service)
			router.POST("/api/v1/playlists/:id/summarize", handler.Summarize)

			req := httptest.NewRequest("POST", "/api/v1/playlists/"+tt.playlistID+"/summarize"+tt.queryParams, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var responseBody map[string]interface{}
			err := json.Unmarshal(rec.Body.Bytes(), &responseBody)
			require.NoError(t, err)

			tt.validateBody(t, responseBody)
		})
	}
}

func TestDigestHandler_Latest(t *testing.T) {
	tests := []struct {
		name           string
		playlistID     string
		setupMocks     func(*mockDigestService)
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name:       "latest digest returned",
			playlistID: "PL-go",
			setupMocks: func(ms *mockDigestService) {
				ms.On("LatestDigest", mock.Anything, "PL-go").
					Return(&dto.DigestResponse{
						PlaylistID: "PL-go",
						Strategy:   "map_reduce",
						Summary:    "A tour of the runtime.",
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "map_reduce", body["strategy"])
			},
		},
		{
			name:       "no digest yet maps to 404",
			playlistID: "PL-fresh",
			setupMocks: func(ms *mockDigestService) {
				ms.On("LatestDigest", mock.Anything, "PL-fresh").
					Return(nil, apperrors.Wrapf(apperrors.ErrNoDigest, "%s", "PL-fresh"))
			},
			expectedStatus: http.StatusNotFound,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "not_found", body["kind"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter()
			service := &mockDigestService{}
			tt.setupMocks(service)

			handler := handlers.NewDigestHandler(service)
			router.GET("/api/v1/playlists/:id/digest", handler.Latest)

			req := httptest.NewRequest("GET", "/api/v1/playlists/"+tt.playlistID+"/digest", nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var responseBody map[string]interface{}
			err := json.Unmarshal(rec.Body.Bytes(), &responseBody)
			require.NoError(t, err)

			tt.validateBody(t, responseBody)
		})
	}
}
