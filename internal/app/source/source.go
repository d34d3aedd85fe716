// Package source loads playlist corpora from local JSON files. Transcript
// fetching happens outside this system; corpora arrive as files shaped like
// model.Playlist.
package source

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	apperrors "yt-digest/internal/app/errors"
	"yt-digest/internal/app/model"
)

// LoadPlaylist reads and validates one playlist corpus file.
func LoadPlaylist(path string) (model.Playlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Playlist{}, fmt.Errorf("read corpus file: %w", err)
	}

	var playlist model.Playlist
	if err := json.Unmarshal(data, &playlist); err != nil {
		return model.Playlist{}, apperrors.Wrap(apperrors.ErrInvalidInput, fmt.Sprintf("parse corpus file %s: %v", path, err))
	}

	if err := Validate(playlist); err != nil {
		return model.Playlist{}, err
	}

	StampFetchTimes(&playlist)
	return playlist, nil
}

// Validate checks the structural invariants of an imported corpus: playlist
// and video IDs present, no duplicate videos, non-negative segment offsets.
func Validate(playlist model.Playlist) error {
	if strings.TrimSpace(playlist.ID) == "" {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "playlist_id is required")
	}
	if len(playlist.Videos) == 0 {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "playlist has no videos")
	}

	seen := make(map[string]bool, len(playlist.Videos))
	for i, video := range playlist.Videos {
		if strings.TrimSpace(video.ID) == "" {
			return apperrors.Wrap(apperrors.ErrInvalidInput, fmt.Sprintf("video %d has no video_id", i))
		}
		if seen[video.ID] {
			return apperrors.Wrap(apperrors.ErrInvalidInput, fmt.Sprintf("duplicate video_id %s", video.ID))
		}
		seen[video.ID] = true
		for j, segment := range video.Transcript {
			if segment.Start < 0 || segment.Duration < 0 {
				return apperrors.Wrap(apperrors.ErrInvalidInput,
					fmt.Sprintf("video %s segment %d has negative timing", video.ID, j))
			}
		}
	}
	return nil
}

// StampFetchTimes fills missing fetched_at values so imports are traceable.
func StampFetchTimes(playlist *model.Playlist) {
	now := time.Now().UTC()
	for i := range playlist.Videos {
		if playlist.Videos[i].FetchedAt.IsZero() {
			playlist.Videos[i].FetchedAt = now
		}
	}
}
