package provider

import (
	"context"
	"strings"

	"google.golang.org/genai"

	apperrors "yt-digest/internal/app/errors"
)

const defaultGeminiModel = "text-embedding-004"

// GeminiProvider implements EmbeddingProvider using the Google Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a new Gemini embedding provider. An empty model
// selects text-embedding-004.
func NewGeminiProvider(ctx context.Context, apiKey string, model string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "create gemini client")
	}
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiProvider{client: client, model: model}, nil
}

// GenerateEmbedding generates an embedding using the Gemini API.
func (g *GeminiProvider) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	vectors, err := g.GenerateEmbeddings(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// GenerateEmbeddings embeds a batch of texts in a single API call.
func (g *GeminiProvider) GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, apperrors.RequiredField("texts")
	}
	contents := make([]*genai.Content, 0, len(texts))
	for i, text := range texts {
		if strings.TrimSpace(text) == "" {
			return nil, apperrors.Newf("texts[%d] is empty", i)
		}
		contents = append(contents, genai.NewContentFromText(text, genai.RoleUser))
	}

	response, err := g.client.Models.EmbedContent(ctx, g.model, contents, nil)
	if err != nil {
		return nil, apperrors.Wrap(err, "gemini embeddings request failed")
	}
	if response == nil || len(response.Embeddings) != len(texts) {
		return nil, apperrors.Wrap(apperrors.ErrEmptyEmbedding, "gemini response incomplete")
	}

	vectors := make([][]float32, len(texts))
	for i, embedding := range response.Embeddings {
		if embedding == nil || len(embedding.Values) == 0 {
			return nil, apperrors.Wrapf(apperrors.ErrEmptyEmbedding, "input %d", i)
		}
		vectors[i] = embedding.Values
	}
	return vectors, nil
}

// GetProviderInfo returns information about the Gemini provider.
func (g *GeminiProvider) GetProviderInfo() ProviderInfo {
	return ProviderInfo{
		Name:      "gemini",
		Model:     g.model,
		Dimension: 768,
	}
}
