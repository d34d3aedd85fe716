package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yt-digest/internal/api/middleware"
	"yt-digest/internal/api/v1/dto"
	"yt-digest/internal/api/v1/services"
)

// ChatHandler handles grounded Q&A endpoints
type ChatHandler struct {
	service services.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(service services.ChatService) *ChatHandler {
	return &ChatHandler{
		service: service,
	}
}

// Ask handles POST /api/v1/chat
//
// @Summary Ask a question about a playlist
// @Description Answers a question grounded in the playlist's indexed transcripts and latest digest. Omit conversation_id to start a new thread on playlist_id; the response carries the thread id for follow-ups.
// @Tags chat
// @Accept json
// @Produce json
// @Param chat body dto.ChatRequest true "Question"
// @Success 200 {object} dto.ChatResponse "Grounded answer with sources"
// @Failure 404 {object} errors.APIError "Conversation not found"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 503 {object} errors.APIError "Model provider unavailable"
// @Router /chat [post]
func (h *ChatHandler) Ask(c *gin.Context) {
	var req dto.ChatRequest

	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.Ask(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
