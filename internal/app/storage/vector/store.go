// Package vector provides the namespaced vector stores behind ingestion and
// retrieval.
package vector

import (
	"context"

	"yt-digest/internal/app/model"
)

// Record pairs a chunk with its embedding for insertion.
type Record struct {
	Chunk     model.Chunk
	Embedding []float32
}

// Store is a namespaced vector index. Namespaces isolate playlists from each
// other, and record ids make re-ingestion an upsert rather than a duplicate.
type Store interface {
	// Upsert inserts or replaces records in the namespace.
	Upsert(ctx context.Context, namespace string, records []Record) error

	// Query returns the topK records closest to the vector by cosine
	// similarity, best first. An unknown or empty namespace yields no
	// results and no error.
	Query(ctx context.Context, namespace string, vector []float32, topK int) ([]model.SearchResult, error)

	// DeleteNamespace removes every record in the namespace.
	DeleteNamespace(ctx context.Context, namespace string) error

	// Count reports how many records the namespace holds.
	Count(ctx context.Context, namespace string) (int, error)
}
