package dto

import (
	"time"

	"yt-digest/internal/app/model"
)

// SummarizeQuery tunes one summarize call.
type SummarizeQuery struct {
	// Async submits a durable workflow instead of summarizing inline.
	Async bool `form:"async"`
	// Force bypasses the summary cache even when the corpus is unchanged.
	Force bool `form:"force"`
}

// DigestResponse represents a finished digest in API responses.
type DigestResponse struct {
	PlaylistID string    `json:"playlist_id"`
	Strategy   string    `json:"strategy"`
	Summary    string    `json:"summary"`
	VideoCount int       `json:"video_count"`
	TotalChars int       `json:"total_chars"`
	Compressed bool      `json:"compressed"`
	LLMCalls   int       `json:"llm_calls"`
	Elapsed    float64   `json:"elapsed_seconds"`
	Cached     bool      `json:"cached"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToDigestResponse converts a digest to its response DTO.
func ToDigestResponse(d model.Digest, cached bool) DigestResponse {
	return DigestResponse{
		PlaylistID: d.PlaylistID,
		Strategy:   string(d.Strategy),
		Summary:    d.Summary,
		VideoCount: d.VideoCount,
		TotalChars: d.TotalChars,
		Compressed: d.Compressed,
		LLMCalls:   d.LLMCalls,
		Elapsed:    d.Elapsed,
		Cached:     cached,
		CreatedAt:  d.CreatedAt,
	}
}
