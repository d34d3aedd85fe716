// Package handlers exposes the v1 API endpoints.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yt-digest/internal/api/errors"
	"yt-digest/internal/api/middleware"
	"yt-digest/internal/api/v1/dto"
	"yt-digest/internal/api/v1/services"
)

// PlaylistHandler handles playlist corpus endpoints
type PlaylistHandler struct {
	service services.PlaylistService
}

// NewPlaylistHandler creates a new playlist handler
func NewPlaylistHandler(service services.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{
		service: service,
	}
}

// Create handles POST /api/v1/playlists
//
// @Summary Register a playlist corpus
// @Description Stores a playlist with its video transcripts so it can be summarized, indexed and queried
// @Tags playlists
// @Accept json
// @Produce json
// @Param playlist body dto.CreatePlaylistRequest true "Playlist corpus"
// @Success 201 {object} dto.PlaylistResponse "Playlist stored"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /playlists [post]
func (h *PlaylistHandler) Create(c *gin.Context) {
	var req dto.CreatePlaylistRequest

	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.CreatePlaylist(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// List handles GET /api/v1/playlists
//
// @Summary List stored playlists
// @Description Returns all stored playlists without their transcripts
// @Tags playlists
// @Produce json
// @Success 200 {object} dto.PlaylistListResponse "Stored playlists"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /playlists [get]
func (h *PlaylistHandler) List(c *gin.Context) {
	response, err := h.service.ListPlaylists(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/playlists/:id
//
// @Summary Get a playlist
// @Description Returns one playlist with its video rows; transcript text stays server-side
// @Tags playlists
// @Produce json
// @Param id path string true "Playlist ID"
// @Success 200 {object} dto.PlaylistResponse "Playlist details"
// @Failure 404 {object} errors.APIError "Playlist not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /playlists/{id} [get]
func (h *PlaylistHandler) Get(c *gin.Context) {
	playlistID := c.Param("id")
	if playlistID == "" {
		middleware.HandleError(c, errors.NewBadRequestError("Playlist ID is required"))
		return
	}

	response, err := h.service.GetPlaylist(c.Request.Context(), playlistID)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Delete handles DELETE /api/v1/playlists/:id
//
// @Summary Delete a playlist
// @Description Removes the playlist, its digests, its vector namespace and its cached summaries
// @Tags playlists
// @Produce json
// @Param id path string true "Playlist ID"
// @Success 204 "Playlist deleted"
// @Failure 404 {object} errors.APIError "Playlist not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /playlists/{id} [delete]
func (h *PlaylistHandler) Delete(c *gin.Context) {
	playlistID := c.Param("id")
	if playlistID == "" {
		middleware.HandleError(c, errors.NewBadRequestError("Playlist ID is required"))
		return
	}

	if err := h.service.DeletePlaylist(c.Request.Context(), playlistID); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
