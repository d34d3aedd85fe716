package services

import (
	"context"

	"yt-digest/internal/api/v1/dto"
	"yt-digest/internal/app/chat"
)

// ChatServiceImpl implements ChatService
type ChatServiceImpl struct {
	chat *chat.Service
}

// NewChatService creates a new chat service
func NewChatService(chatService *chat.Service) ChatService {
	return &ChatServiceImpl{chat: chatService}
}

// Ask answers one question grounded in the playlist's indexed transcripts.
func (s *ChatServiceImpl) Ask(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	result, err := s.chat.Ask(ctx, chat.Request{
		ConversationID: req.ConversationID,
		PlaylistID:     req.PlaylistID,
		Question:       req.Question,
	})
	if err != nil {
		return nil, err
	}

	return &dto.ChatResponse{
		ConversationID: result.ConversationID,
		Answer:         result.Answer,
		Sources:        dto.ToSourceResponses(result.Sources),
	}, nil
}
