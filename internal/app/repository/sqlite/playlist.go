package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	apperrors "yt-digest/internal/app/errors"
	"yt-digest/internal/app/model"
)

// SavePlaylist upserts the playlist row and replaces its videos in one
// transaction. Video positions follow slice order so GetPlaylist returns the
// corpus in its original sequence.
func (s *DB) SavePlaylist(ctx context.Context, playlist model.Playlist) error {
	if playlist.ID == "" {
		return apperrors.RequiredField("playlist id")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save playlist: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO playlists (playlist_id, title, url)
		VALUES (?, ?, ?)
		ON CONFLICT(playlist_id) DO UPDATE SET title = excluded.title, url = excluded.url`,
		playlist.ID, playlist.Title, playlist.URL)
	if err != nil {
		return fmt.Errorf("upsert playlist %s: %w", playlist.ID, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM videos WHERE playlist_id = ?`, playlist.ID); err != nil {
		return fmt.Errorf("clear videos for playlist %s: %w", playlist.ID, err)
	}

	const insertVideo = `
		INSERT INTO videos (video_id, playlist_id, position, title, url, language, duration, transcript, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for position, video := range playlist.Videos {
		transcript, err := json.Marshal(video.Transcript)
		if err != nil {
			return fmt.Errorf("encode transcript for video %s: %w", video.ID, err)
		}
		fetchedAt := video.FetchedAt
		if fetchedAt.IsZero() {
			fetchedAt = time.Now().UTC()
		}
		_, err = tx.ExecContext(ctx, insertVideo,
			video.ID, playlist.ID, position, video.Title, video.URL,
			video.Language, video.Duration, string(transcript), fetchedAt)
		if err != nil {
			return fmt.Errorf("insert video %s: %w", video.ID, err)
		}
	}

	return tx.Commit()
}

// GetPlaylist loads the playlist and its videos in stored order.
func (s *DB) GetPlaylist(ctx context.Context, playlistID string) (model.Playlist, error) {
	var playlist model.Playlist
	err := s.db.QueryRowContext(ctx,
		`SELECT playlist_id, title, url FROM playlists WHERE playlist_id = ?`, playlistID).
		Scan(&playlist.ID, &playlist.Title, &playlist.URL)
	if err == sql.ErrNoRows {
		return model.Playlist{}, apperrors.Wrapf(apperrors.ErrUnknownPlaylist, "%s", playlistID)
	}
	if err != nil {
		return model.Playlist{}, fmt.Errorf("load playlist %s: %w", playlistID, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT video_id, title, url, language, duration, transcript, fetched_at
		FROM videos
		WHERE playlist_id = ?
		ORDER BY position`, playlistID)
	if err != nil {
		return model.Playlist{}, fmt.Errorf("load videos for playlist %s: %w", playlistID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var video model.Video
		var transcript string
		var fetchedAt sql.NullTime
		if err := rows.Scan(&video.ID, &video.Title, &video.URL, &video.Language,
			&video.Duration, &transcript, &fetchedAt); err != nil {
			return model.Playlist{}, fmt.Errorf("scan video row: %w", err)
		}
		if err := json.Unmarshal([]byte(transcript), &video.Transcript); err != nil {
			return model.Playlist{}, fmt.Errorf("decode transcript for video %s: %w", video.ID, err)
		}
		if fetchedAt.Valid {
			video.FetchedAt = fetchedAt.Time
		}
		playlist.Videos = append(playlist.Videos, video)
	}
	return playlist, rows.Err()
}

// ListPlaylists returns all playlists without loading transcripts.
func (s *DB) ListPlaylists(ctx context.Context) ([]model.Playlist, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT playlist_id, title, url FROM playlists ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list playlists: %w", err)
	}
	defer rows.Close()

	playlists := make([]model.Playlist, 0)
	for rows.Next() {
		var playlist model.Playlist
		if err := rows.Scan(&playlist.ID, &playlist.Title, &playlist.URL); err != nil {
			return nil, fmt.Errorf("scan playlist row: %w", err)
		}
		playlists = append(playlists, playlist)
	}
	return playlists, rows.Err()
}

// DeletePlaylist removes the playlist, its videos and digest history.
func (s *DB) DeletePlaylist(ctx context.Context, playlistID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete playlist: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM digests WHERE playlist_id = ?`, playlistID); err != nil {
		return fmt.Errorf("delete digests for playlist %s: %w", playlistID, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM videos WHERE playlist_id = ?`, playlistID); err != nil {
		return fmt.Errorf("delete videos for playlist %s: %w", playlistID, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM playlists WHERE playlist_id = ?`, playlistID); err != nil {
		return fmt.Errorf("delete playlist %s: %w", playlistID, err)
	}
	return tx.Commit()
}

// SaveDigest appends one digest to the playlist's history.
func (s *DB) SaveDigest(ctx context.Context, digest model.Digest) error {
	if digest.PlaylistID == "" {
		return apperrors.RequiredField("playlist id")
	}
	createdAt := digest.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO digests (playlist_id, strategy, summary, video_count, total_chars, compressed, llm_calls, elapsed_seconds, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		digest.PlaylistID, string(digest.Strategy), digest.Summary,
		digest.VideoCount, digest.TotalChars, boolToInt(digest.Compressed),
		digest.LLMCalls, digest.Elapsed, createdAt)
	if err != nil {
		return fmt.Errorf("insert digest for playlist %s: %w", digest.PlaylistID, err)
	}
	return nil
}

// LatestDigest returns the most recently created digest for the playlist.
func (s *DB) LatestDigest(ctx context.Context, playlistID string) (model.Digest, error) {
	var digest model.Digest
	var strategy string
	var compressed int
	err := s.db.QueryRowContext(ctx, `
		SELECT playlist_id, strategy, summary, video_count, total_chars, compressed, llm_calls, elapsed_seconds, created_at
		FROM digests
		WHERE playlist_id = ?
		ORDER BY id DESC
		LIMIT 1`, playlistID).
		Scan(&digest.PlaylistID, &strategy, &digest.Summary, &digest.VideoCount,
			&digest.TotalChars, &compressed, &digest.LLMCalls, &digest.Elapsed, &digest.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Digest{}, apperrors.Wrapf(apperrors.ErrNoDigest, "%s", playlistID)
	}
	if err != nil {
		return model.Digest{}, fmt.Errorf("load latest digest for playlist %s: %w", playlistID, err)
	}
	digest.Strategy = model.Strategy(strategy)
	digest.Compressed = compressed != 0
	return digest, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
