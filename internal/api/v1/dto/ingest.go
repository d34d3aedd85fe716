package dto

import "yt-digest/internal/app/model"

// IngestResponse reports one indexing run.
type IngestResponse struct {
	PlaylistID    string   `json:"playlist_id"`
	VideosSkipped int      `json:"videos_skipped"`
	ChunksTotal   int      `json:"chunks_total"`
	ChunksIndexed int      `json:"chunks_indexed"`
	ChunksFailed  int      `json:"chunks_failed"`
	Complete      bool     `json:"complete"`
	Errors        []string `json:"errors,omitempty"`
}

// ToIngestResponse converts an ingest report to its response DTO.
func ToIngestResponse(r model.IngestReport) IngestResponse {
	return IngestResponse{
		PlaylistID:    r.PlaylistID,
		VideosSkipped: r.VideosSkipped,
		ChunksTotal:   r.ChunksTotal,
		ChunksIndexed: r.ChunksIndexed,
		ChunksFailed:  r.ChunksFailed,
		Complete:      r.Complete(),
		Errors:        r.Errors,
	}
}
