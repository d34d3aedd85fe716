// Package ingest indexes playlist transcripts into the vector store.
package ingest

import (
	"context"

	"yt-digest/internal/app/chunker"
	"yt-digest/internal/app/embedding/provider"
	apperrors "yt-digest/internal/app/errors"
	"yt-digest/internal/app/model"
	"yt-digest/internal/app/storage/vector"
)

// DefaultBatchSize is how many chunks go into one embedding request.
const DefaultBatchSize = 32

// Logger is the subset of logging the indexer needs.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

// Config tunes the indexer.
type Config struct {
	// BatchSize is the number of chunks embedded per provider call.
	BatchSize int
	// Progress, when set, is called after every batch with the number of
	// chunks attempted so far and the total.
	Progress func(done, total int)
}

// Indexer chunks videos, embeds the chunks in batches, and upserts them into
// a namespaced vector store. A failing batch is recorded and skipped; the
// remaining batches still index.
type Indexer struct {
	chunker   *chunker.Chunker
	embedder  provider.EmbeddingProvider
	store     vector.Store
	batchSize int
	progress  func(done, total int)
	logger    Logger
}

// NewIndexer wires an indexer. A nil logger disables logging.
func NewIndexer(ch *chunker.Chunker, embedder provider.EmbeddingProvider, store vector.Store, cfg Config, logger Logger) *Indexer {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &Indexer{
		chunker:   ch,
		embedder:  embedder,
		store:     store,
		batchSize: cfg.BatchSize,
		progress:  cfg.Progress,
		logger:    logger,
	}
}

// IngestPlaylist indexes every transcribed video in the playlist under the
// playlist's namespace. The report counts skipped videos and failed chunks;
// an error is returned only when nothing could be processed at all.
func (ix *Indexer) IngestPlaylist(ctx context.Context, playlist model.Playlist) (model.IngestReport, error) {
	report := model.IngestReport{PlaylistID: playlist.ID}
	if playlist.ID == "" {
		return report, apperrors.RequiredField("playlist id")
	}

	var transcribed []model.Video
	for _, video := range playlist.Videos {
		if !video.HasTranscript() {
			report.VideosSkipped++
			continue
		}
		transcribed = append(transcribed, video)
	}

	chunks := ix.chunker.ChunkVideos(transcribed, playlist.ID)
	report.ChunksTotal = len(chunks)
	if len(chunks) == 0 {
		ix.logger.Warn("nothing to ingest",
			"playlist_id", playlist.ID,
			"videos_skipped", report.VideosSkipped)
		return report, nil
	}

	for start := 0; start < len(chunks); start += ix.batchSize {
		end := start + ix.batchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		if err := ix.indexBatch(ctx, playlist.ID, batch); err != nil {
			report.ChunksFailed += len(batch)
			report.Errors = append(report.Errors, err.Error())
			ix.logger.Warn("batch failed, continuing",
				"playlist_id", playlist.ID,
				"batch_start", start,
				"batch_size", len(batch),
				"error", err)
		} else {
			report.ChunksIndexed += len(batch)
		}
		if ix.progress != nil {
			ix.progress(end, len(chunks))
		}

		if err := ctx.Err(); err != nil {
			return report, err
		}
	}

	ix.logger.Info("ingestion finished",
		"playlist_id", playlist.ID,
		"chunks_total", report.ChunksTotal,
		"chunks_indexed", report.ChunksIndexed,
		"chunks_failed", report.ChunksFailed,
		"videos_skipped", report.VideosSkipped)
	return report, nil
}

// DeletePlaylist removes the playlist's namespace from the vector store.
func (ix *Indexer) DeletePlaylist(ctx context.Context, playlistID string) error {
	if playlistID == "" {
		return apperrors.RequiredField("playlist id")
	}
	return ix.store.DeleteNamespace(ctx, playlistID)
}

func (ix *Indexer) indexBatch(ctx context.Context, namespace string, batch []model.Chunk) error {
	texts := make([]string, len(batch))
	for i, chunk := range batch {
		texts[i] = chunk.Content
	}

	embeddings, err := ix.embedder.GenerateEmbeddings(ctx, texts)
	if err != nil {
		return apperrors.Wrap(err, "embed batch")
	}
	if len(embeddings) != len(batch) {
		return apperrors.Newf("embedder returned %d vectors for %d chunks", len(embeddings), len(batch))
	}

	records := make([]vector.Record, len(batch))
	for i, chunk := range batch {
		records[i] = vector.Record{Chunk: chunk, Embedding: embeddings[i]}
	}
	if err := ix.store.Upsert(ctx, namespace, records); err != nil {
		return apperrors.Wrap(err, "upsert batch")
	}
	return nil
}
