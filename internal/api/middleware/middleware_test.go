package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apierrors "yt-digest/internal/api/errors"
	"yt-digest/internal/api/middleware"
	apperrors "yt-digest/internal/app/errors"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestRequestIDGeneratedWhenMissing(t *testing.T) {
	router := newTestRouter()
	router.Use(middleware.RequestID())

	var seenByHandler string
	router.GET("/ping", func(c *gin.Context) {
		seenByHandler = c.GetString(middleware.ContextRequestID)
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(rec, req)

	echoed := rec.Header().Get(middleware.HeaderRequestID)
	require.NotEmpty(t, echoed)
	_, err := uuid.Parse(echoed)
	assert.NoError(t, err, "generated request IDs are UUIDs")
	assert.Equal(t, echoed, seenByHandler)
}

func TestRequestIDHonorsCallerHeader(t *testing.T) {
	router := newTestRouter()
	router.Use(middleware.RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.HeaderRequestID, "req-42")
	router.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(middleware.HeaderRequestID))
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	router := newTestRouter()
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	handlerCalled := false
	router.OPTIONS("/api/v1/chat", func(c *gin.Context) {
		handlerCalled = true
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/chat", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, handlerCalled)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), middleware.HeaderRequestID)
	assert.Equal(t, "3600", rec.Header().Get("Access-Control-Max-Age"))
}

func TestCORSRestrictedOrigins(t *testing.T) {
	cfg := middleware.CORSConfig{
		AllowOrigins:     []string{"https://app.example"},
		AllowMethods:     []string{"GET"},
		AllowCredentials: true,
	}

	tests := []struct {
		name           string
		origin         string
		expectedOrigin string
	}{
		{"allowed origin echoed", "https://app.example", "https://app.example"},
		{"unknown origin gets no header", "https://evil.example", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter()
			router.Use(middleware.CORS(cfg))
			router.GET("/ping", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set("Origin", tt.origin)
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
			assert.Empty(t, rec.Header().Get("Access-Control-Max-Age"))
		})
	}
}

func TestHandleErrorMapsDomainErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedKind   string
	}{
		{
			name:           "wrapped not-found",
			err:            apperrors.Wrap(apperrors.ErrUnknownPlaylist, "load corpus"),
			expectedStatus: http.StatusNotFound,
			expectedKind:   "not_found",
		},
		{
			name:           "validation",
			err:            apperrors.ErrEmptyQuery,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedKind:   "validation",
		},
		{
			name:           "provider outage",
			err:            apperrors.Wrap(apperrors.ErrProviderFailure, "gemini"),
			expectedStatus: http.StatusServiceUnavailable,
			expectedKind:   "service_unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)
			c.Set(middleware.ContextRequestID, "req-7")

			middleware.HandleError(c, tt.err)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedKind, body["kind"])
			assert.Equal(t, "req-7", body["request_id"])
		})
	}
}

func TestHandleErrorNilWritesNothing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	middleware.HandleError(c, nil)

	assert.Empty(t, rec.Body.String())
	assert.False(t, c.IsAborted())
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	tests := []struct {
		name            string
		panicWith       interface{}
		expectedStatus  int
		expectedKind    string
		expectedMessage string
	}{
		{
			name:            "api error keeps its kind",
			panicWith:       apierrors.NewConflictError("digest already running"),
			expectedStatus:  http.StatusConflict,
			expectedKind:    "conflict",
			expectedMessage: "digest already running",
		},
		{
			name:            "plain error is masked",
			panicWith:       apperrors.New("dsn leaked"),
			expectedStatus:  http.StatusInternalServerError,
			expectedKind:    "internal",
			expectedMessage: "Internal server error",
		},
		{
			name:            "non-error panic is masked",
			panicWith:       "string panic",
			expectedStatus:  http.StatusInternalServerError,
			expectedKind:    "internal",
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter()
			router.Use(middleware.RequestID())
			router.Use(middleware.ErrorHandler(zap.NewNop().Sugar()))
			router.GET("/boom", func(c *gin.Context) {
				panic(tt.panicWith)
			})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/boom", nil)
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedKind, body["kind"])
			assert.Equal(t, tt.expectedMessage, body["message"])
			assert.NotEmpty(t, body["request_id"])
		})
	}
}
