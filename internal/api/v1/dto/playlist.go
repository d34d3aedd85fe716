// Package dto defines the request and response shapes of the v1 API.
package dto

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"yt-digest/internal/api/errors"
	"yt-digest/internal/app/model"
)

// TranscriptSegmentRequest is one timed caption line in an imported corpus.
type TranscriptSegmentRequest struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// VideoRequest is one video of an imported corpus.
type VideoRequest struct {
	ID         string                     `json:"video_id" binding:"required"`
	Title      string                     `json:"title"`
	URL        string                     `json:"url"`
	Language   string                     `json:"language"`
	Duration   int                        `json:"duration"`
	Transcript []TranscriptSegmentRequest `json:"transcript"`
}

// CreatePlaylistRequest registers a playlist corpus. The body mirrors the
// corpus file format accepted by the import command.
type CreatePlaylistRequest struct {
	ID     string         `json:"playlist_id" binding:"required"`
	Title  string         `json:"title"`
	URL    string         `json:"url"`
	Videos []VideoRequest `json:"videos" binding:"required"`
}

// Validate performs domain-specific validation
func (r *CreatePlaylistRequest) Validate() error {
	validationErrors := make(map[string]string)

	if strings.TrimSpace(r.ID) == "" {
		validationErrors["playlist_id"] = "playlist id is required"
	}
	if len(r.Videos) == 0 {
		validationErrors["videos"] = "at least one video is required"
	}

	if len(validationErrors) > 0 {
		return errors.NewValidationError("Invalid playlist", validationErrors)
	}

	return nil
}

// ToModel converts the request into the domain playlist.
func (r *CreatePlaylistRequest) ToModel() model.Playlist {
	videos := lo.Map(r.Videos, func(v VideoRequest, _ int) model.Video {
		return model.Video{
			ID:       v.ID,
			Title:    v.Title,
			URL:      v.URL,
			Language: v.Language,
			Duration: v.Duration,
			Transcript: lo.Map(v.Transcript, func(seg TranscriptSegmentRequest, _ int) model.TranscriptSegment {
				return model.TranscriptSegment{
					Text:     seg.Text,
					Start:    seg.Start,
					Duration: seg.Duration,
				}
			}),
		}
	})
	return model.Playlist{
		ID:     r.ID,
		Title:  r.Title,
		URL:    r.URL,
		Videos: videos,
	}
}

// VideoResponse represents a video in API responses. Transcript text stays
// server-side; only its size is reported.
type VideoResponse struct {
	ID              string    `json:"video_id"`
	Title           string    `json:"title"`
	URL             string    `json:"url,omitempty"`
	Language        string    `json:"language,omitempty"`
	Duration        int       `json:"duration"`
	SegmentCount    int       `json:"segment_count"`
	TranscriptChars int       `json:"transcript_chars"`
	FetchedAt       time.Time `json:"fetched_at,omitempty"`
}

// PlaylistResponse represents a playlist in API responses.
type PlaylistResponse struct {
	ID         string          `json:"playlist_id"`
	Title      string          `json:"title"`
	URL        string          `json:"url,omitempty"`
	VideoCount int             `json:"video_count"`
	TotalChars int             `json:"total_chars"`
	Videos     []VideoResponse `json:"videos,omitempty"`
}

// PlaylistListResponse wraps the stored playlists.
type PlaylistListResponse struct {
	Playlists []PlaylistResponse `json:"playlists"`
	Total     int                `json:"total"`
}

// ToPlaylistResponse converts a playlist to its response DTO. Set withVideos
// for the detail view; the list view drops per-video rows.
func ToPlaylistResponse(p model.Playlist, withVideos bool) PlaylistResponse {
	resp := PlaylistResponse{
		ID:         p.ID,
		Title:      p.Title,
		URL:        p.URL,
		VideoCount: p.VideoCount(),
		TotalChars: p.TotalChars(),
	}
	if withVideos {
		resp.Videos = lo.Map(p.Videos, func(v model.Video, _ int) VideoResponse {
			return VideoResponse{
				ID:              v.ID,
				Title:           v.Title,
				URL:             v.URL,
				Language:        v.Language,
				Duration:        v.Duration,
				SegmentCount:    len(v.Transcript),
				TranscriptChars: len([]rune(v.FullText())),
				FetchedAt:       v.FetchedAt,
			}
		})
	}
	return resp
}
