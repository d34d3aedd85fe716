package ingest

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yt-digest/internal/app/chunker"
	"yt-digest/internal/app/embedding/provider"
	apperrors "yt-digest/internal/app/errors"
	"yt-digest/internal/app/model"
	"yt-digest/internal/app/storage/vector"
)

// flakyEmbedder fails exactly one batch call and delegates the rest.
type flakyEmbedder struct {
	inner    provider.EmbeddingProvider
	failCall int
	calls    int
}

func (f *flakyEmbedder) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	return f.inner.GenerateEmbedding(ctx, text)
}

func (f *flakyEmbedder) GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	f.calls++
	if f.calls == f.failCall {
		return nil, apperrors.New("quota exceeded")
	}
	return f.inner.GenerateEmbeddings(ctx, texts)
}

func (f *flakyEmbedder) GetProviderInfo() provider.ProviderInfo {
	return f.inner.GetProviderInfo()
}

// shortVideo yields exactly one chunk.
func shortVideo(id string) model.Video {
	return model.Video{
		ID:    id,
		Title: "Video " + id,
		Transcript: []model.TranscriptSegment{
			{Text: fmt.Sprintf("Unique transcript text for %s.", id), Start: 0, Duration: 30},
		},
	}
}

func videoPlaylist(id string, videos ...model.Video) model.Playlist {
	return model.Playlist{ID: id, Title: "Playlist " + id, Videos: videos}
}

func newTestIndexer(store vector.Store, embedder provider.EmbeddingProvider, cfg Config) *Indexer {
	return NewIndexer(chunker.NewChunker(chunker.Config{}), embedder, store, cfg, nil)
}

func TestIngestPlaylistIndexesEveryChunk(t *testing.T) {
	store := vector.NewMemoryStore()
	ix := newTestIndexer(store, provider.NewMockProvider(64), Config{BatchSize: 2})
	playlist := videoPlaylist("pl1",
		shortVideo("a"), shortVideo("b"), shortVideo("c"),
		shortVideo("d"), shortVideo("e"))

	report, err := ix.IngestPlaylist(context.Background(), playlist)

	require.NoError(t, err)
	assert.Equal(t, "pl1", report.PlaylistID)
	assert.Equal(t, 5, report.ChunksTotal)
	assert.Equal(t, 5, report.ChunksIndexed)
	assert.Equal(t, 0, report.ChunksFailed)
	assert.True(t, report.Complete())

	count, err := store.Count(context.Background(), "pl1")
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestIngestPlaylistSkipsVideosWithoutTranscripts(t *testing.T) {
	store := vector.NewMemoryStore()
	ix := newTestIndexer(store, provider.NewMockProvider(64), Config{})
	playlist := videoPlaylist("pl1",
		shortVideo("a"),
		model.Video{ID: "silent", Title: "No transcript"},
		shortVideo("b"))

	report, err := ix.IngestPlaylist(context.Background(), playlist)

	require.NoError(t, err)
	assert.Equal(t, 1, report.VideosSkipped)
	assert.Equal(t, 2, report.ChunksTotal)
	assert.Equal(t, 2, report.ChunksIndexed)
}

func TestIngestPlaylistContinuesAfterFailedBatch(t *testing.T) {
	store := vector.NewMemoryStore()
	embedder := &flakyEmbedder{inner: provider.NewMockProvider(64), failCall: 2}
	ix := newTestIndexer(store, embedder, Config{BatchSize: 2})
	playlist := videoPlaylist("pl1",
		shortVideo("a"), shortVideo("b"), shortVideo("c"),
		shortVideo("d"), shortVideo("e"), shortVideo("f"))

	report, err := ix.IngestPlaylist(context.Background(), playlist)

	require.NoError(t, err, "a failed batch must not abort the run")
	assert.Equal(t, 6, report.ChunksTotal)
	assert.Equal(t, 4, report.ChunksIndexed)
	assert.Equal(t, 2, report.ChunksFailed)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "quota exceeded")
	assert.False(t, report.Complete())

	count, err := store.Count(context.Background(), "pl1")
	require.NoError(t, err)
	assert.Equal(t, 4, count, "the other batches must still be indexed")
}

func TestIngestPlaylistEmptyCorpus(t *testing.T) {
	store := vector.NewMemoryStore()
	embedder := &flakyEmbedder{inner: provider.NewMockProvider(64), failCall: 1}
	ix := newTestIndexer(store, embedder, Config{})

	report, err := ix.IngestPlaylist(context.Background(), videoPlaylist("pl1",
		model.Video{ID: "silent", Title: "No transcript"}))

	require.NoError(t, err)
	assert.Equal(t, 1, report.VideosSkipped)
	assert.Equal(t, 0, report.ChunksTotal)
	assert.Equal(t, 0, embedder.calls, "no chunks means no embedding calls")
}

func TestIngestPlaylistRequiresPlaylistID(t *testing.T) {
	ix := newTestIndexer(vector.NewMemoryStore(), provider.NewMockProvider(64), Config{})

	_, err := ix.IngestPlaylist(context.Background(), model.Playlist{})

	assert.Error(t, err)
}

func TestIngestPlaylistReportsProgress(t *testing.T) {
	store := vector.NewMemoryStore()
	var updates [][2]int
	cfg := Config{
		BatchSize: 2,
		Progress: func(done, total int) {
			updates = append(updates, [2]int{done, total})
		},
	}
	ix := newTestIndexer(store, provider.NewMockProvider(64), cfg)
	playlist := videoPlaylist("pl1",
		shortVideo("a"), shortVideo("b"), shortVideo("c"),
		shortVideo("d"), shortVideo("e"))

	_, err := ix.IngestPlaylist(context.Background(), playlist)

	require.NoError(t, err)
	assert.Equal(t, [][2]int{{2, 5}, {4, 5}, {5, 5}}, updates)
}

func TestIngestPlaylistReingestIsIdempotent(t *testing.T) {
	store := vector.NewMemoryStore()
	ix := newTestIndexer(store, provider.NewMockProvider(64), Config{})
	playlist := videoPlaylist("pl1", shortVideo("a"), shortVideo("b"))

	_, err := ix.IngestPlaylist(context.Background(), playlist)
	require.NoError(t, err)
	_, err = ix.IngestPlaylist(context.Background(), playlist)
	require.NoError(t, err)

	count, err := store.Count(context.Background(), "pl1")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "stable chunk ids must upsert, not duplicate")
}

func TestDeletePlaylist(t *testing.T) {
	store := vector.NewMemoryStore()
	ix := newTestIndexer(store, provider.NewMockProvider(64), Config{})
	playlist := videoPlaylist("pl1", shortVideo("a"))
	_, err := ix.IngestPlaylist(context.Background(), playlist)
	require.NoError(t, err)

	require.NoError(t, ix.DeletePlaylist(context.Background(), "pl1"))

	count, err := store.Count(context.Background(), "pl1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
