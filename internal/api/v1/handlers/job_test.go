package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apierrors "yt-digest/internal/api/errors"
	"yt-digest/internal/api/v1/dto"
	"yt-digest/internal/api/v1/handlers"
)

func TestJobHandler_Status(t *testing.T) {
	tests := []struct {
		name           string
		jobID          string
		setupMocks     func(*mockJobService)
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name:  "running job",
			jobID: "digest-PL-go-1700000000",
			setupMocks: func(ms *mockJobService) {
				ms.On("Status", mock.Anything, "digest-PL-go-1700000000").
					Return(&dto.JobStatusResponse{
						JobID:     "digest-PL-go-1700000000",
						Status:    "Running",
						StartedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "Running", body["status"])
			},
		},
		{
			name:  "unknown job maps to 404",
			jobID: "digest-unknown",
			setupMocks: func(ms *mockJobService) {
				ms.On("Status", mock.Anything, "digest-unknown").
					Return(nil, apierrors.NewNotFoundError("Job"))
			},
			expectedStatus: http.StatusNotFound,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "not_found", body["kind"])
			},
		},
		{
			name:  "temporal disabled maps to 503",
			jobID: "digest-PL-go-1700000000",
			setupMocks: func(ms *mockJobService) {
				ms.On("Status", mock.Anything, mock.Anything).
					Return(nil, apierrors.NewServiceUnavailableError("Async digests are not enabled on this server"))
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
			service := &mockJobService{}
			tt.setupMocks(service)

			handler := handlers.NewJobHandler(service)
			router.GET("/api/v1/jobs/:id", handler.Status)

			req := httptest.NewRequest("GET", "/api/v1/jobs/"+tt.jobID, nil)
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
