// Package chunker splits video transcripts into overlapping retrieval chunks
// while preserving segment timestamps for citation.
package chunker

import (
	"strings"
	"unicode/utf8"

	"yt-digest/internal/app/model"
)

// Window defaults.
const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
	DefaultMinChunkSize = 100
)

// Config tunes the chunk window.
type Config struct {
	// ChunkSize is the target characters per chunk.
	ChunkSize int
	// ChunkOverlap is carried from the tail of each chunk into the next.
	ChunkOverlap int
	// MinChunkSize keeps fragments from becoming their own chunk mid-stream;
	// a trailing fragment below it merges into the previous chunk.
	MinChunkSize int
}

// Chunker walks transcript segments and emits chunks of roughly ChunkSize
// characters. Each chunk after the first starts with the previous chunk's
// trailing ChunkOverlap characters so context survives the boundary. Output
// is deterministic for a given video and config.
type Chunker struct {
	chunkSize    int
	chunkOverlap int
	minChunkSize int
}

// NewChunker creates a chunker. Zero config fields use the defaults.
func NewChunker(cfg Config) *Chunker {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.ChunkOverlap <= 0 {
		cfg.ChunkOverlap = DefaultChunkOverlap
	}
	if cfg.MinChunkSize <= 0 {
		cfg.MinChunkSize = DefaultMinChunkSize
	}
	return &Chunker{
		chunkSize:    cfg.ChunkSize,
		chunkOverlap: cfg.ChunkOverlap,
		minChunkSize: cfg.MinChunkSize,
	}
}

// ChunkVideo splits one video's transcript into chunks under the given
// namespace. A video shorter than the chunk size yields exactly one chunk
// spanning the whole text. Chunk ids are {video_id}_{chunk_index} and stable
// across runs, so re-ingestion upserts instead of duplicating.
func (c *Chunker) ChunkVideo(video model.Video, namespace string) []model.Chunk {
	if len(video.Transcript) == 0 {
		return nil
	}

	var chunks []model.Chunk
	currentText := ""
	currentStart := video.Transcript[0].Start
	currentEnd := video.Transcript[0].Start
	index := 0

	for _, segment := range video.Transcript {
		segmentText := strings.TrimSpace(segment.Text)
		if segmentText == "" {
			continue
		}

		potential := joinText(currentText, segmentText)
		if utf8.RuneCountInString(potential) > c.chunkSize &&
			utf8.RuneCountInString(currentText) >= c.minChunkSize {
			chunks = append(chunks, c.buildChunk(video, namespace, index, currentText, currentStart, currentEnd))
			index++

			// Seed the next chunk with the trailing overlap for continuity.
			currentText = joinText(c.overlapTail(currentText), segmentText)
			currentStart = segment.Start
		} else {
			currentText = potential
		}

		currentEnd = segment.End()
	}

	if currentText == "" {
		return chunks
	}

	if utf8.RuneCountInString(currentText) >= c.minChunkSize || len(chunks) == 0 {
		return append(chunks, c.buildChunk(video, namespace, index, currentText, currentStart, currentEnd))
	}

	// A trailing fragment below the minimum merges into the previous chunk
	// instead of becoming an undersized chunk; the duplicated overlap prefix
	// is dropped so the text is not repeated.
	last := &chunks[len(chunks)-1]
	rest := strings.TrimSpace(strings.TrimPrefix(currentText, c.overlapTail(last.Content)))
	if rest != "" {
		last.Content = last.Content + " " + rest
	}
	last.Metadata.EndTime = currentEnd
	return chunks
}

// ChunkVideos runs the chunker over a corpus, skipping videos without
// transcript text.
func (c *Chunker) ChunkVideos(videos []model.Video, namespace string) []model.Chunk {
	var chunks []model.Chunk
	for _, video := range videos {
		chunks = append(chunks, c.ChunkVideo(video, namespace)...)
	}
	return chunks
}

func (c *Chunker) buildChunk(video model.Video, namespace string, index int, content string, start, end float64) model.Chunk {
	return model.Chunk{
		ID:      model.ChunkID(video.ID, index),
		Content: content,
		Metadata: model.ChunkMetadata{
			VideoID:    video.ID,
			VideoTitle: video.Title,
			PlaylistID: namespace,
			StartTime:  start,
			EndTime:    end,
			ChunkIndex: index,
		},
	}
}

// overlapTail returns the trailing ChunkOverlap characters of text.
func (c *Chunker) overlapTail(text string) string {
	runes := []rune(text)
	if len(runes) <= c.chunkOverlap {
		return text
	}
	return string(runes[len(runes)-c.chunkOverlap:])
}

func joinText(a, b string) string {
	if a == "" {
		return b
	}
	return a + " " + b
}
