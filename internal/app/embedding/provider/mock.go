package provider

import (
	"context"
	"crypto/sha256"
	"strings"

	apperrors "yt-digest/internal/app/errors"
)

// MockProvider is a deterministic, offline implementation for tests and dry
// runs. Equal texts always produce equal vectors.
type MockProvider struct {
	dimension int
}

// NewMockProvider creates a mock provider with the given dimension.
func NewMockProvider(dimension int) *MockProvider {
	return &MockProvider{dimension: dimension}
}

// GenerateEmbedding derives a vector from the SHA256 hash of the text.
func (m *MockProvider) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.RequiredField("text")
	}

	hash := sha256.Sum256([]byte(text))
	embedding := make([]float32, m.dimension)
	for i := 0; i < m.dimension; i++ {
		// Map each hash byte (0-255) into [-1, 1].
		embedding[i] = (float32(hash[i%len(hash)])/255.0)*2 - 1
	}
	return embedding, nil
}

// GenerateEmbeddings embeds each text independently.
func (m *MockProvider) GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, apperrors.RequiredField("texts")
	}
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vector, err := m.GenerateEmbedding(ctx, text)
		if err != nil {
			return nil, apperrors.Wrapf(err, "input %d", i)
		}
		vectors[i] = vector
	}
	return vectors, nil
}

// GetProviderInfo returns mock provider information.
func (m *MockProvider) GetProviderInfo() ProviderInfo {
	return ProviderInfo{
		Name:      "mock",
		Model:     "mock-model",
		Dimension: m.dimension,
	}
}
