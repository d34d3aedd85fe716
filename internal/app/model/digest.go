package model

import "time"

// Strategy names the summarization path chosen for a corpus.
type Strategy string

const (
	StrategySingle    Strategy = "single"
	StrategyDirect    Strategy = "direct"
	StrategyMapReduce Strategy = "map_reduce"
)

// Digest is the finished summary of a playlist corpus.
type Digest struct {
	PlaylistID string    `json:"playlist_id"`
	Strategy   Strategy  `json:"strategy"`
	Summary    string    `json:"summary"`
	VideoCount int       `json:"video_count"`
	TotalChars int       `json:"total_chars"`
	Compressed bool      `json:"compressed"`
	LLMCalls   int       `json:"llm_calls"`
	Elapsed    float64   `json:"elapsed_seconds"`
	CreatedAt  time.Time `json:"created_at"`
}

// IngestReport summarizes one indexing run over a playlist.
type IngestReport struct {
	PlaylistID    string   `json:"playlist_id"`
	VideosSkipped int      `json:"videos_skipped"`
	ChunksTotal   int      `json:"chunks_total"`
	ChunksIndexed int      `json:"chunks_indexed"`
	ChunksFailed  int      `json:"chunks_failed"`
	Errors        []string `json:"errors,omitempty"`
}

// Complete reports whether every chunk made it into the index.
func (r IngestReport) Complete() bool {
	return r.ChunksFailed == 0
}
