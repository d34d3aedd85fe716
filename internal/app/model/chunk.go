package model

import "fmt"

// ChunkMetadata carries the provenance of a transcript chunk. It is stored
// next to the vector so search hits can be rendered without a second lookup.
type ChunkMetadata struct {
	VideoID    string  `json:"video_id"`
	VideoTitle string  `json:"video_title"`
	PlaylistID string  `json:"playlist_id"`
	StartTime  float64 `json:"start_time"`
	EndTime    float64 `json:"end_time"`
	ChunkIndex int     `json:"chunk_index"`
}

// Chunk is one overlapping window of transcript text.
type Chunk struct {
	ID       string        `json:"id"`
	Content  string        `json:"content"`
	Metadata ChunkMetadata `json:"metadata"`
}

// ChunkID builds the deterministic identifier for a video chunk. Re-ingesting
// the same video yields the same IDs, so upserts stay idempotent.
func ChunkID(videoID string, index int) string {
	return fmt.Sprintf("%s_%d", videoID, index)
}

// SearchResult is a scored chunk returned by the vector store.
type SearchResult struct {
	Chunk Chunk   `json:"chunk"`
	Score float64 `json:"score"`
}

// Timestamp renders seconds as M:SS, or H:MM:SS past the hour, for citation
// markers.
func Timestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}
