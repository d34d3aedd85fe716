package vector

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/lib/pq"

	apperrors "yt-digest/internal/app/errors"
	"yt-digest/internal/app/model"
)

// PostgresStore persists embeddings in Postgres with the pgvector extension.
// Cosine distance is computed by the database via the <=> operator.
type PostgresStore struct {
	db        *sql.DB
	dimension int
}

// NewPostgresStore wraps an open database handle. The dimension must match
// the embedding provider feeding the store.
func NewPostgresStore(db *sql.DB, dimension int) *PostgresStore {
	return &PostgresStore{db: db, dimension: dimension}
}

// OpenPostgres opens a connection with the given DSN and verifies it.
func OpenPostgres(ctx context.Context, dsn string, dimension int) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseConnection, err.Error())
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, apperrors.Wrap(apperrors.ErrDatabaseConnection, err.Error())
	}
	return NewPostgresStore(db, dimension), nil
}

// InitSchema creates the pgvector extension, the chunks table, and the
// namespace index if they do not exist.
func (s *PostgresStore) InitSchema(ctx context.Context) error {
	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS chunks (
			id          TEXT PRIMARY KEY,
			namespace   TEXT NOT NULL,
			video_id    TEXT NOT NULL,
			video_title TEXT NOT NULL,
			start_time  DOUBLE PRECISION NOT NULL,
			end_time    DOUBLE PRECISION NOT NULL,
			chunk_index INTEGER NOT NULL,
			content     TEXT NOT NULL,
			embedding   vector(%d) NOT NULL
		)`, s.dimension),
		`CREATE INDEX IF NOT EXISTS idx_chunks_namespace ON chunks (namespace)`,
	}
	for _, statement := range statements {
		if _, err := s.db.ExecContext(ctx, statement); err != nil {
			return apperrors.Wrap(err, "init vector schema")
		}
	}
	return nil
}

// Upsert writes records in one transaction, replacing rows with matching ids.
func (s *PostgresStore) Upsert(ctx context.Context, namespace string, records []Record) error {
	if len(records) == 0 {
		return nil
	}
	for _, record := range records {
		if len(record.Embedding) != s.dimension {
			return apperrors.Newf("embedding for chunk %s has dimension %d, store expects %d",
				record.Chunk.ID, len(record.Embedding), s.dimension)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.Wrap(err, "begin upsert")
	}
	defer tx.Rollback()

	const upsertSQL = `
		INSERT INTO chunks (id, namespace, video_id, video_title, start_time, end_time, chunk_index, content, embedding)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::vector)
		ON CONFLICT (id) DO UPDATE SET
			namespace   = EXCLUDED.namespace,
			video_id    = EXCLUDED.video_id,
			video_title = EXCLUDED.video_title,
			start_time  = EXCLUDED.start_time,
			end_time    = EXCLUDED.end_time,
			chunk_index = EXCLUDED.chunk_index,
			content     = EXCLUDED.content,
			embedding   = EXCLUDED.embedding`

	for _, record := range records {
		meta := record.Chunk.Metadata
		_, err := tx.ExecContext(ctx, upsertSQL,
			record.Chunk.ID, namespace, meta.VideoID, meta.VideoTitle,
			meta.StartTime, meta.EndTime, meta.ChunkIndex,
			record.Chunk.Content, encodeVector(record.Embedding))
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInsertFailed, err.Error())
		}
	}
	return tx.Commit()
}

// Query runs a cosine top-k search scoped to the namespace.
func (s *PostgresStore) Query(ctx context.Context, namespace string, vector []float32, topK int) ([]model.SearchResult, error) {
	if topK <= 0 {
		return nil, apperrors.InvalidField("topK", "must be positive")
	}
	if len(vector) != s.dimension {
		return nil, apperrors.Newf("query vector has dimension %d, store expects %d", len(vector), s.dimension)
	}

	const querySQL = `
		SELECT id, video_id, video_title, start_time, end_time, chunk_index, content,
		       1 - (embedding <=> $1::vector) AS score
		FROM chunks
		WHERE namespace = $2
		ORDER BY embedding <=> $1::vector
		LIMIT $3`

	rows, err := s.db.QueryContext(ctx, querySQL, encodeVector(vector), namespace, topK)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrQueryFailed, err.Error())
	}
	defer rows.Close()

	results := make([]model.SearchResult, 0, topK)
	for rows.Next() {
		var result model.SearchResult
		meta := &result.Chunk.Metadata
		err := rows.Scan(&result.Chunk.ID, &meta.VideoID, &meta.VideoTitle,
			&meta.StartTime, &meta.EndTime, &meta.ChunkIndex,
			&result.Chunk.Content, &result.Score)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrQueryFailed, err.Error())
		}
		meta.PlaylistID = namespace
		results = append(results, result)
	}
	return results, rows.Err()
}

// DeleteNamespace removes all rows for the namespace.
func (s *PostgresStore) DeleteNamespace(ctx context.Context, namespace string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM chunks WHERE namespace = $1`, namespace)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrQueryFailed, err.Error())
	}
	return nil
}

// Count reports the number of rows in the namespace.
func (s *PostgresStore) Count(ctx context.Context, namespace string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chunks WHERE namespace = $1`, namespace).Scan(&count)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrQueryFailed, err.Error())
	}
	return count, nil
}

// Close closes the underlying database handle.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// encodeVector renders a float32 slice as a pgvector literal like
// [0.1,0.2,0.3].
func encodeVector(vector []float32) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, value := range vector {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(float64(value), 'f', -1, 32))
	}
	b.WriteByte(']')
	return b.String()
}
