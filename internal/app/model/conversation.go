package model

import "time"

// Chat message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of a conversation.
type ChatMessage struct {
	ID             int       `json:"id" db:"id"`
	ConversationID string    `json:"conversation_id" db:"conversation_id"`
	Role           string    `json:"role" db:"role"`
	Content        string    `json:"content" db:"content"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// Conversation ties a chat thread to the playlist it queries.
type Conversation struct {
	ID         string    `json:"conversation_id" db:"conversation_id"`
	PlaylistID string    `json:"playlist_id" db:"playlist_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// TableName returns the table name for ChatMessage.
func (ChatMessage) TableName() string {
	return "messages"
}

// TableName returns the table name for Conversation.
func (Conversation) TableName() string {
	return "conversations"
}
