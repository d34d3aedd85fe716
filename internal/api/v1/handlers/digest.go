package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yt-digest/internal/api/errors"
	"yt-digest/internal/api/middleware"
	"yt-digest/internal/api/v1/dto"
	"yt-digest/internal/api/v1/services"
)

// DigestHandler handles summarization endpoints
type DigestHandler struct {
	service services.DigestService
}

// NewDigestHandler creates a new digest handler
func NewDigestHandler(service services.DigestService) *DigestHandler {
	return &DigestHandler{
		service: service,
	}
}

// Summarize handles POST /api/v1/playlists/:id/summarize
//
// @Summary Summarize a playlist
// @Description Generates a digest for the stored corpus. Unchanged corpora are served from the summary cache unless force=true. With async=true the digest runs as a durable workflow and a job id is returned instead.
// @Tags digests
// @Produce json
// @Param id path string true "Playlist ID"
// @Param async query bool false "Submit a workflow instead of summarizing inline" default(false)
// @Param force query bool false "Bypass the summary cache" default(false)
// @Success 200 {object} dto.DigestResponse "Digest generated"
// @Success 202 {object} dto.JobSubmittedResponse "Digest job submitted"
// @Failure 404 {object} errors.APIError "Playlist not found"
// @Failure 422 {object} errors.APIError "Corpus has no transcript text"
// @Failure 503 {object} errors.APIError "Async digests not enabled"
// @Router /playlists/{id}/summarize [post]
func (h *DigestHandler) Summarize(c *gin.Context) {
	playlistID := c.Param("id")
	if playlistID == "" {
		middleware.HandleError(c, errors.NewBadRequestError("Playlist ID is required"))
		return
	}

	var query dto.SummarizeQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	if query.Async {
		response, err := h.service.SummarizeAsync(c.Request.Context(), playlistID)
		if err != nil {
			middleware.HandleError(c, err)
			return
		}
		c.JSON(http.StatusAccepted, response)
		return
	}

	response, err := h.service.Summarize(c.Request.Context(), playlistID, query.Force)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Latest handles GET /api/v1/playlists/:id/digest
//
// @Summary Get the latest digest
// @Description Returns the most recent stored digest for the playlist
// @Tags digests
// @Produce json
// @Param id path string true "Playlist ID"
// @Success 200 {object} dto.DigestResponse "Latest digest"
// @Failure 404 {object} errors.APIError "Playlist or digest not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /playlists/{id}/digest [get]
func (h *DigestHandler) Latest(c *gin.Context) {
	playlistID := c.Param("id")
	if playlistID == "" {
		middleware.HandleError(c, errors.NewBadRequestError("Playlist ID is required"))
		return
	}

	response, err := h.service.LatestDigest(c.Request.Context(), playlistID)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
