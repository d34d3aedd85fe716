package handlers_test

import (
	"bytes"
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

func TestPlaylistHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		request        dto.CreatePlaylistRequest
		setupMocks     func(*mockPlaylistService)
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name: "successful playlist creation",
			request: dto.CreatePlaylistRequest{
				ID:    "PL-go",
				Title: "Go Deep Dives",
				Videos: []dto.VideoRequest{
					{ID: "vid1", Title: "Channels", Transcript: []dto.TranscriptSegmentRequest{
						{Text: "Channels orchestrate goroutines.", Start: 0, Duration: 5},
					}},
				},
			},
			setupMocks: func(ms *mockPlaylistService) {
				ms.On("CreatePlaylist", mock.Anything, mock.Anything).
					Return(&dto.PlaylistResponse{
						ID:         "PL-go",
						Title:      "Go Deep Dives",
						VideoCount: 1,
						TotalChars: 32,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "PL-go", body["playlist_id"])
				assert.Equal(t, float64(1), body["video_count"])
			},
		},
		{
			name: "validation error - missing playlist id",
			request: dto.CreatePlaylistRequest{
				Videos: []dto.VideoRequest{{ID: "vid1"}},
			},
			setupMocks:     func(ms *mockPlaylistService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "validation", body["kind"])
				assert.NotNil(t, body["details"])
			},
		},
		{
			name: "validation error - no videos",
			request: dto.CreatePlaylistRequest{
				ID: "PL-empty",
			},
			setupMocks:     func(ms *mockPlaylistService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "validation", body["kind"])
			},
		},
		{
			name: "domain validation error maps to 422",
			request: dto.CreatePlaylistRequest{
				ID:     "PL-dupes",
				Videos: []dto.VideoRequest{{ID: "vid1"}, {ID: "vid1"}},
			},
			setupMocks: func(ms *mockPlaylistService) {
				ms.On("CreatePlaylist", mock.Anything, mock.Anything).
					Return(nil, apperrors.Wrap(apperrors.ErrInvalidInput, "duplicate video_id vid1"))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "validation", body["kind"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter()
			service := &mockPlaylistService{}
			tt.setupMocks(service)

			handler := handlers.NewPlaylistHandler(service)
			router.POST("/api/v1/playlists", handler.Create)

			body, err := json.Marshal(tt.request)
			require.NoError(t, err)

			req := httptest.NewRequest("POST", "/api/v1/playlists", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var responseBody map[string]interface{}
			err = json.Unmarshal(rec.Body.Bytes(), &responseBody)
			require.NoError(t, err)

			tt.validateBody(t, responseBody)
		})
	}
}

func TestPlaylistHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		playlistID     string
		setupMocks     func(*mockPlaylistService)
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name:       "successful get with videos",
			playlistID: "PL-go",
			setupMocks: func(ms *mockPlaylistService) {
				ms.On("GetPlaylist", mock.Anything, "PL-go").
					Return(&dto.PlaylistResponse{
						ID:         "PL-go",
						VideoCount: 2,
						Videos: []dto.VideoResponse{
							{ID: "vid1", Title: "Channels"},
							{ID: "vid2", Title: "Slices"},
						},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "PL-go", body["playlist_id"])
				videos := body["videos"].([]interface{})
				assert.Len(t, videos, 2)
			},
		},
		{
			name:       "unknown playlist maps to 404",
			playlistID: "PL-nope",
			setupMocks: func(ms *mockPlaylistService) {
				ms.On("GetPlaylist", mock.Anything, "PL-nope").
					Return(nil, apperrors.Wrapf(apperrors.ErrUnknownPlaylist, "%s", "PL-nope"))
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
			service := &mockPlaylistService{}
			tt.setupMocks(service)

			handler := handlers.NewPlaylistHandler(service)
			router.GET("/api/v1/playlists/:id", handler.Get)

			req := httptest.NewRequest("GET", "/api/v1/playlists/"+tt.playlistID, nil)
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

func TestPlaylistHandler_List(t *testing.T) {
	router := setupTestRouter()
	service := &mockPlaylistService{}
	service.On("ListPlaylists", mock.Anything).
		Return(&dto.PlaylistListResponse{
			Playlists: []dto.PlaylistResponse{
				{ID: "PL-go", VideoCount: 3},
				{ID: "PL-rust", VideoCount: 1},
			},
			Total: 2,
		}, nil)

	handler := handlers.NewPlaylistHandler(service)
	router.GET("/api/v1/playlists", handler.List)

	req := httptest.NewRequest("GET", "/api/v1/playlists", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(2), body["total"])
	assert.Len(t, body["playlists"].([]interface{}), 2)
}

func TestPlaylistHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		playlistID     string
		setupMocks     func(*mockPlaylistService)
		expectedStatus int
	}{
		{
			name:       "successful delete",
			playlistID: "PL-go",
			setupMocks: func(ms *mockPlaylistService) {
				ms.On("DeletePlaylist", mock.Anything, "PL-go").Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:       "unknown playlist maps to 404",
			playlistID: "PL-nope",
			setupMocks: func(ms *mockPlaylistService) {
				ms.On("DeletePlaylist", mock.Anything, "PL-nope").
					Return(apperrors.Wrapf(apperrors.ErrUnknownPlaylist, "%s", "PL-nope"))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter()
			service := &mockPlaylistService{}
			tt.setupMocks(service)

			handler := handlers.NewPlaylistHandler(service)
			router.DELETE("/api/v1/playlists/:id", handler.Delete)

			req := httptest.NewRequest("DELETE", "/api/v1/playlists/"+tt.playlistID, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
