package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	apperrors "yt-digest/internal/app/errors"
	"yt-digest/internal/app/model"
)

// CreateConversation inserts a new chat thread.
func (s *DB) CreateConversation(ctx context.Context, conversation model.Conversation) error {
	if conversation.ID == "" {
		return apperrors.RequiredField("conversation id")
	}
	createdAt := conversation.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO conversations (conversation_id, playlist_id, created_at)
		VALUES (?, ?, ?)`,
		conversation.ID, conversation.PlaylistID, createdAt)
	if err != nil {
		return fmt.Errorf("insert conversation %s: %w", conversation.ID, err)
	}
	return nil
}

// GetConversation loads a conversation by id.
func (s *DB) GetConversation(ctx context.Context, conversationID string) (model.Conversation, error) {
	var conversation model.Conversation
	err := s.db.QueryRowContext(ctx, `
		SELECT conversation_id, playlist_id, created_at
		FROM conversations
		WHERE conversation_id = ?`, conversationID).
		Scan(&conversation.ID, &conversation.PlaylistID, &conversation.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Conversation{}, apperrors.Wrapf(apperrors.ErrUnknownConversation, "%s", conversationID)
	}
	if err != nil {
		return model.Conversation{}, fmt.Errorf("load conversation %s: %w", conversationID, err)
	}
	return conversation, nil
}

// AppendMessage stores one chat turn at the end of its conversation.
func (s *DB) AppendMessage(ctx context.Context, message model.ChatMessage) error {
	if message.ConversationID == "" {
		return apperrors.RequiredField("conversation id")
	}
	createdAt := message.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO messages (conversation_id, role, content, created_at)
		VALUES (?, ?, ?, ?)`,
		message.ConversationID, message.Role, message.Content, createdAt)
	if err != nil {
		return fmt.Errorf("append message to conversation %s: %w", message.ConversationID, err)
	}
	return nil
}

// RecentMessages returns up to limit most recent messages in chronological
// order. limit <= 0 means no limit.
func (s *DB) RecentMessages(ctx context.Context, conversationID string, limit int) ([]model.ChatMessage, error) {
	query := `
		SELECT id, conversation_id, role, content, created_at
		FROM messages
		WHERE conversation_id = ?
		ORDER BY id DESC`
	args := []interface{}{conversationID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("load messages for conversation %s: %w", conversationID, err)
	}
	defer rows.Close()

	messages := make([]model.ChatMessage, 0, limit)
	for rows.Next() {
		var message model.ChatMessage
		if err := rows.Scan(&message.ID, &message.ConversationID, &message.Role,
			&message.Content, &message.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message row: %w", err)
		}
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Rows came back newest-first; flip to chronological.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
