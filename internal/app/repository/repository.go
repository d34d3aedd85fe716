// Package repository defines the persistence interfaces for playlists,
// transcripts, digests and chat history. The sqlite subpackage carries the
// local implementation.
package repository

import (
	"context"

	"yt-digest/internal/app/model"
)

// VideoRepository stores playlists and their video transcripts so the engine
// can re-summarize or re-ingest a corpus without refetching it.
type VideoRepository interface {
	// SavePlaylist upserts the playlist and replaces its video set. Video
	// order is preserved and round-trips through GetPlaylist.
	SavePlaylist(ctx context.Context, playlist model.Playlist) error

	// GetPlaylist loads the playlist and its videos with transcripts.
	// Returns ErrUnknownPlaylist when the id does not exist.
	GetPlaylist(ctx context.Context, playlistID string) (model.Playlist, error)

	// ListPlaylists returns all stored playlists without their videos.
	ListPlaylists(ctx context.Context) ([]model.Playlist, error)

	// DeletePlaylist removes the playlist, its videos and its digests.
	DeletePlaylist(ctx context.Context, playlistID string) error

	// SaveDigest appends a finished digest to the playlist's history.
	SaveDigest(ctx context.Context, digest model.Digest) error

	// LatestDigest returns the most recent digest for the playlist.
	// Returns ErrNoDigest when none has been generated yet.
	LatestDigest(ctx context.Context, playlistID string) (model.Digest, error)

	Close() error
}

// ConversationRepository stores chat threads and their messages. The
// retrieval layer reads a bounded window of recent messages to rewrite
// follow-up questions.
type ConversationRepository interface {
	// CreateConversation registers a new chat thread for a playlist.
	CreateConversation(ctx context.Context, conversation model.Conversation) error

	// GetConversation loads a conversation by id. Returns
	// ErrUnknownConversation when the id does not exist.
	GetConversation(ctx context.Context, conversationID string) (model.Conversation, error)

	// AppendMessage adds one message to a conversation.
	AppendMessage(ctx context.Context, message model.ChatMessage) error

	// RecentMessages returns the last limit messages in chronological
	// order, oldest first.
	RecentMessages(ctx context.Context, conversationID string, limit int) ([]model.ChatMessage, error)
}
