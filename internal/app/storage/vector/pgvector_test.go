package vector

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T, dimension int) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresStore(db, dimension), mock
}

func TestEncodeVector(t *testing.T) {
	testCases := []struct {
		name     string
		vector   []float32
		expected string
	}{
		{"simple", []float32{1, 0, 0.5}, "[1,0,0.5]"},
		{"negative", []float32{-0.25}, "[-0.25]"},
		{"empty", nil, "[]"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, encodeVector(tc.vector))
		})
	}
}

func TestPostgresStoreUpsert(t *testing.T) {
	store, mock := newMockStore(t, 3)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO chunks").
		WithArgs("vid1_0", "pl1", "vid1", "Title", 0.0, 12.0, 0, "content of vid1_0", "[1,0,0]").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rec := record("vid1_0", []float32{1, 0, 0})
	rec.Chunk.Metadata.EndTime = 12.0
	err := store.Upsert(context.Background(), "pl1", []Record{rec})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreUpsertRejectsWrongDimension(t *testing.T) {
	store, mock := newMockStore(t, 3)

	err := store.Upsert(context.Background(), "pl1", []Record{record("vid1_0", []float32{1, 0})})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet(), "no SQL should run for a bad batch")
}

func TestPostgresStoreUpsertEmptyBatchIsNoOp(t *testing.T) {
	store, mock := newMockStore(t, 3)

	err := store.Upsert(context.Background(), "pl1", nil)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreQuery(t *testing.T) {
	store, mock := newMockStore(t, 3)

	rows := sqlmock.NewRows([]string{
		"id", "video_id", "video_title", "start_time", "end_time", "chunk_index", "content", "score",
	}).
		AddRow("vid1_0", "vid1", "Title", 0.0, 12.0, 0, "first chunk", 0.97).
		AddRow("vid1_3", "vid1", "Title", 30.0, 44.0, 3, "later chunk", 0.81)
	mock.ExpectQuery("SELECT id, video_id, video_title").
		WithArgs("[1,0,0]", "pl1", 2).
		WillReturnRows(rows)

	results, err := store.Query(context.Background(), "pl1", []float32{1, 0, 0}, 2)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "vid1_0", results[0].Chunk.ID)
	assert.Equal(t, 0.97, results[0].Score)
	assert.Equal(t, "pl1", results[0].Chunk.Metadata.PlaylistID)
	assert.Equal(t, 3, results[1].Chunk.Metadata.ChunkIndex)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreQueryEmptyNamespace(t *testing.T) {
	store, mock := newMockStore(t, 3)

	mock.ExpectQuery("SELECT id, video_id, video_title").
		WithArgs("[1,0,0]", "empty", 5).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "video_id", "video_title", "start_time", "end_time", "chunk_index", "content", "score",
		}))

	results, err := store.Query(context.Background(), "empty", []float32{1, 0, 0}, 5)

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreDeleteNamespace(t *testing.T) {
	store, mock := newMockStore(t, 3)

	mock.ExpectExec("DELETE FROM chunks").
		WithArgs("pl1").
		WillReturnResult(sqlmock.NewResult(0, 42))

	err := store.DeleteNamespace(context.Background(), "pl1")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreCount(t *testing.T) {
	store, mock := newMockStore(t, 3)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("pl1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := store.Count(context.Background(), "pl1")

	require.NoError(t, err)
	assert.Equal(t, 7, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
