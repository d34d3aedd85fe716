// Package sqlite implements the repository interfaces on a local SQLite
// database. One file holds playlists, videos, digest history and chat
// threads.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS playlists (
	playlist_id TEXT PRIMARY KEY,
	title       TEXT NOT NULL DEFAULT '',
	url         TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS videos (
	video_id    TEXT PRIMARY KEY,
	playlist_id TEXT NOT NULL REFERENCES playlists(playlist_id) ON DELETE CASCADE,
	position    INTEGER NOT NULL,
	title       TEXT NOT NULL DEFAULT '',
	url         TEXT NOT NULL DEFAULT '',
	language    TEXT NOT NULL DEFAULT '',
	duration    INTEGER NOT NULL DEFAULT 0,
	transcript  TEXT NOT NULL DEFAULT '[]',
	fetched_at  TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_videos_playlist ON videos(playlist_id, position);

CREATE TABLE IF NOT EXISTS digests (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	playlist_id     TEXT NOT NULL,
	strategy        TEXT NOT NULL,
	summary         TEXT NOT NULL,
	video_count     INTEGER NOT NULL,
	total_chars     INTEGER NOT NULL,
	compressed      INTEGER NOT NULL DEFAULT 0,
	llm_calls       INTEGER NOT NULL DEFAULT 0,
	elapsed_seconds REAL NOT NULL DEFAULT 0,
	created_at      TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_digests_playlist ON digests(playlist_id, created_at);

CREATE TABLE IF NOT EXISTS conversations (
	conversation_id TEXT PRIMARY KEY,
	playlist_id     TEXT NOT NULL,
	created_at      TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS messages (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	conversation_id TEXT NOT NULL REFERENCES conversations(conversation_id) ON DELETE CASCADE,
	role            TEXT NOT NULL,
	content         TEXT NOT NULL,
	created_at      TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_messages_conversation ON messages(conversation_id, id);
`

// DB wraps the sqlite handle and implements repository.VideoRepository and
// repository.ConversationRepository.
type DB struct {
	db *sql.DB
}

// Open opens (creating directories and tables as needed) the database at
// dbFilePath.
func Open(dbFilePath string) (*DB, error) {
	if dir := filepath.Dir(dbFilePath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc&_foreign_keys=on", dbFilePath))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return &DB{db: db}, nil
}

// Close closes the underlying handle.
func (s *DB) Close() error {
	return s.db.Close()
}
