package vector

import (
	"context"
	"sort"
	"sync"

	"yt-digest/internal/app/embedding/similarity"
	apperrors "yt-digest/internal/app/errors"
	"yt-digest/internal/app/model"
)

// MemoryStore is an in-process Store for tests and offline runs. It ranks by
// brute-force cosine similarity.
type MemoryStore struct {
	mu         sync.RWMutex
	namespaces map[string]map[string]Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{namespaces: make(map[string]map[string]Record)}
}

// Upsert inserts or replaces records by chunk id.
func (s *MemoryStore) Upsert(ctx context.Context, namespace string, records []Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.namespaces[namespace]
	if !ok {
		bucket = make(map[string]Record, len(records))
		s.namespaces[namespace] = bucket
	}
	for _, record := range records {
		if record.Chunk.ID == "" {
			return apperrors.RequiredField("chunk id")
		}
		bucket[record.Chunk.ID] = record
	}
	return nil
}

// Query scores every record in the namespace and returns the topK, best
// first. Ties break on chunk id so results stay deterministic.
func (s *MemoryStore) Query(ctx context.Context, namespace string, vector []float32, topK int) ([]model.SearchResult, error) {
	if topK <= 0 {
		return nil, apperrors.InvalidField("topK", "must be positive")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	bucket := s.namespaces[namespace]
	if len(bucket) == 0 {
		return []model.SearchResult{}, nil
	}

	results := make([]model.SearchResult, 0, len(bucket))
	for _, record := range bucket {
		score, err := similarity.Cosine(vector, record.Embedding)
		if err != nil {
			return nil, err
		}
		results = append(results, model.SearchResult{Chunk: record.Chunk, Score: float64(score)})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Chunk.ID < results[j].Chunk.ID
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

// DeleteNamespace drops the namespace and everything in it.
func (s *MemoryStore) DeleteNamespace(ctx context.Context, namespace string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.namespaces, namespace)
	return nil
}

// Count reports the number of records in the namespace.
func (s *MemoryStore) Count(ctx context.Context, namespace string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.namespaces[namespace]), nil
}
