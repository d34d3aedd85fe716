// Package similarity provides the vector distance functions used to rank
// retrieved chunks.
package similarity

import (
	"math"

	apperrors "yt-digest/internal/app/errors"
)

// Cosine computes cosine similarity between two vectors. Zero vectors have
// similarity 0 with everything.
func Cosine(a, b []float32) (float32, error) {
	if len(a) != len(b) {
		return 0, apperrors.Newf("vector dimensions differ: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}

	var dot, normA, normB float32
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dot / (float32(math.Sqrt(float64(normA))) *
		float32(math.Sqrt(float64(normB)))), nil
}

// Euclidean computes the Euclidean distance between two vectors.
func Euclidean(a, b []float32) (float32, error) {
	if len(a) != len(b) {
		return 0, apperrors.Newf("vector dimensions differ: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}

	var sum float32
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return float32(math.Sqrt(float64(sum))), nil
}
