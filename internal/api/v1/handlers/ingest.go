package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yt-digest/internal/api/errors"
	"yt-digest/internal/api/middleware"
	"yt-digest/internal/api/v1/services"
)

// IngestHandler handles vector index endpoints
type IngestHandler struct {
	service services.IngestService
}

// NewIngestHandler creates a new ingest handler
func NewIngestHandler(service services.IngestService) *IngestHandler {
	return &IngestHandler{
		service: service,
	}
}

// Ingest handles POST /api/v1/playlists/:id/ingest
//
// @Summary Index a playlist into the vector store
// @Description Chunks the stored transcripts, embeds them and upserts them under the playlist's namespace. Failed batches are reported but do not abort the run.
// @Tags ingest
// @Produce json
// @Param id path string true "Playlist ID"
// @Success 200 {object} dto.IngestResponse "Ingestion report"
// @Failure 404 {object} errors.APIError "Playlist not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /playlists/{id}/ingest [post]
func (h *IngestHandler) Ingest(c *gin.Context) {
	playlistID := c.Param("id")
	if playlistID == "" {
		middleware.HandleError(c, errors.NewBadRequestError("Playlist ID is required"))
		return
	}

	response, err := h.service.Ingest(c.Request.Context(), playlistID)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// DropIndex handles DELETE /api/v1/playlists/:id/index
//
// @Summary Drop a playlist's vector index
// @Description Removes the playlist's namespace from the vector store; stored transcripts and digests are untouched
// @Tags ingest
// @Produce json
// @Param id path string true "Playlist ID"
// @Success 204 "Index dropped"
// @Failure 404 {object} errors.APIError "Playlist not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /playlists/{id}/index [delete]
func (h *IngestHandler) DropIndex(c *gin.Context) {
	playlistID := c.Param("id")
	if playlistID == "" {
		middleware.HandleError(c, errors.NewBadRequestError("Playlist ID is required"))
		return
	}

	if err := h.service.DropIndex(c.Request.Context(), playlistID); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
