package dto

import (
	"strings"

	"github.com/samber/lo"

	"yt-digest/internal/api/errors"
	"yt-digest/internal/app/model"
)

// ChatRequest is one user turn. Omitting conversation_id starts a new thread
// on playlist_id; otherwise the playlist comes from the stored thread.
type ChatRequest struct {
	ConversationID string `json:"conversation_id,omitempty"`
	PlaylistID     string `json:"playlist_id,omitempty"`
	Question       string `json:"question" binding:"required"`
}

// Validate performs domain-specific validation
func (r *ChatRequest) Validate() error {
	validationErrors := make(map[string]string)

	if strings.TrimSpace(r.Question) == "" {
		validationErrors["question"] = "question is required"
	}
	if r.ConversationID == "" && r.PlaylistID == "" {
		validationErrors["playlist_id"] = "playlist_id is required when starting a new conversation"
	}

	if len(validationErrors) > 0 {
		return errors.NewValidationError("Invalid chat request", validationErrors)
	}

	return nil
}

// SourceResponse is one transcript chunk the answer was grounded on.
type SourceResponse struct {
	VideoID    string  `json:"video_id"`
	VideoTitle string  `json:"video_title"`
	Timestamp  string  `json:"timestamp"`
	Content    string  `json:"content"`
	Score      float64 `json:"score"`
}

// ChatResponse carries the assistant answer and its sources.
type ChatResponse struct {
	ConversationID string           `json:"conversation_id"`
	Answer         string           `json:"answer"`
	Sources        []SourceResponse `json:"sources,omitempty"`
}

// ToSourceResponses converts search results to response DTOs.
func ToSourceResponses(results []model.SearchResult) []SourceResponse {
	if len(results) == 0 {
		return nil
	}
	return lo.Map(results, func(r model.SearchResult, _ int) SourceResponse {
		return SourceResponse{
			VideoID:    r.Chunk.Metadata.VideoID,
			VideoTitle: r.Chunk.Metadata.VideoTitle,
			Timestamp:  model.Timestamp(r.Chunk.Metadata.StartTime),
			Content:    r.Chunk.Content,
			Score:      r.Score,
		}
	})
}
