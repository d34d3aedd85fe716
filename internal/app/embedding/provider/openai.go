package provider

import (
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	apperrors "yt-digest/internal/app/errors"
)

const defaultOpenAIModel = openai.SmallEmbedding3 // text-embedding-3-small

// OpenAIProvider implements EmbeddingProvider using the OpenAI API.
type OpenAIProvider struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

// NewOpenAIProvider creates a new OpenAI embedding provider. An empty model
// selects text-embedding-3-small.
func NewOpenAIProvider(apiKey string, model string) *OpenAIProvider {
	embeddingModel := defaultOpenAIModel
	if model != "" {
		embeddingModel = openai.EmbeddingModel(model)
	}
	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		model:  embeddingModel,
	}
}

// GenerateEmbedding generates an embedding using the OpenAI API.
func (o *OpenAIProvider) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	vectors, err := o.GenerateEmbeddings(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// GenerateEmbeddings embeds a batch of texts in a single API call.
func (o *OpenAIProvider) GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, apperrors.RequiredField("texts")
	}
	for i, text := range texts {
		if strings.TrimSpace(text) == "" {
			return nil, apperrors.Newf("texts[%d] is empty", i)
		}
	}

	response, err := o.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: o.model,
		Input: texts,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "openai embeddings request failed")
	}
	if len(response.Data) != len(texts) {
		return nil, apperrors.Newf("openai returned %d embeddings for %d inputs", len(response.Data), len(texts))
	}

	// The API reports an index per datum; place by index rather than trusting
	// response order.
	vectors := make([][]float32, len(texts))
	for _, datum := range response.Data {
		if datum.Index < 0 || datum.Index >= len(vectors) {
			return nil, apperrors.Newf("openai embedding index %d out of range", datum.Index)
		}
		vectors[datum.Index] = datum.Embedding
	}
	for i, vector := range vectors {
		if len(vector) == 0 {
			return nil, apperrors.Wrapf(apperrors.ErrEmptyEmbedding, "input %d", i)
		}
	}
	return vectors, nil
}

// GetProviderInfo returns information about the OpenAI provider.
func (o *OpenAIProvider) GetProviderInfo() ProviderInfo {
	return ProviderInfo{
		Name:      "openai",
		Model:     string(o.model),
		Dimension: 1536,
	}
}
