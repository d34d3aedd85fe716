package llm

import (
	"context"
	"strings"

	"google.golang.org/genai"

	apperrors "yt-digest/internal/app/errors"
)

const defaultGeminiChatModel = "gemini-2.0-flash"

// GeminiProvider implements ChatProvider using the Google Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a chat provider backed by the Gemini API. An
// empty model selects gemini-2.0-flash.
func NewGeminiProvider(ctx context.Context, apiKey string, model string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "create gemini client")
	}
	if model == "" {
		model = defaultGeminiChatModel
	}
	return &GeminiProvider{client: client, model: model}, nil
}

// GenerateText runs one completion. System messages become the system
// instruction; assistant turns map to the model role.
func (g *GeminiProvider) GenerateText(ctx context.Context, messages []Message, opts Options) (string, error) {
	if len(messages) == 0 {
		return "", apperrors.RequiredField("messages")
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(opts.Temperature),
	}
	if opts.MaxTokens > 0 {
		config.MaxOutputTokens = int32(opts.MaxTokens)
	}

	contents := make([]*genai.Content, 0, len(messages))
	for _, message := range messages {
		switch message.Role {
		case RoleSystem:
			config.SystemInstruction = genai.NewContentFromText(message.Content, genai.RoleUser)
		case RoleAssistant:
			contents = append(contents, genai.NewContentFromText(message.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(message.Content, genai.RoleUser))
		}
	}
	if len(contents) == 0 {
		return "", apperrors.InvalidField("messages", "at least one non-system message is required")
	}

	response, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", apperrors.Wrap(err, "gemini chat completion failed")
	}

	content := strings.TrimSpace(response.Text())
	if content == "" {
		return "", apperrors.Wrap(apperrors.ErrEmptyCompletion, "gemini returned a blank message")
	}
	return content, nil
}

// GetProviderInfo returns information about the provider.
func (g *GeminiProvider) GetProviderInfo() ProviderInfo {
	return ProviderInfo{Name: "gemini", Model: g.model}
}
