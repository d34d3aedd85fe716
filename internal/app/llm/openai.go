package llm

import (
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	apperrors "yt-digest/internal/app/errors"
)

const (
	defaultOpenAIChatModel = "gpt-4o-mini"
	defaultGroqChatModel   = "llama-3.3-70b-versatile"

	groqBaseURL = "https://api.groq.com/openai/v1"
)

// OpenAIProvider implements ChatProvider against any OpenAI-compatible API.
type OpenAIProvider struct {
	client *openai.Client
	name   string
	model  string
}

// NewOpenAIProvider creates a chat provider backed by the OpenAI API. An
// empty model selects gpt-4o-mini.
func NewOpenAIProvider(apiKey string, model string) *OpenAIProvider {
	if model == "" {
		model = defaultOpenAIChatModel
	}
	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		name:   "openai",
		model:  model,
	}
}

// NewGroqProvider creates a chat provider backed by Groq's OpenAI-compatible
// endpoint. An empty model selects llama-3.3-70b-versatile.
func NewGroqProvider(apiKey string, model string) *OpenAIProvider {
	if model == "" {
		model = defaultGroqChatModel
	}
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = groqBaseURL
	return &OpenAIProvider{
		client: openai.NewClientWithConfig(config),
		name:   "groq",
		model:  model,
	}
}

// GenerateText runs one chat completion.
func (p *OpenAIProvider) GenerateText(ctx context.Context, messages []Message, opts Options) (string, error) {
	if len(messages) == 0 {
		return "", apperrors.RequiredField("messages")
	}

	request := openai.ChatCompletionRequest{
		Model:       p.model,
		Temperature: opts.Temperature,
		Messages:    make([]openai.ChatCompletionMessage, 0, len(messages)),
	}
	if opts.MaxTokens > 0 {
		request.MaxTokens = opts.MaxTokens
	}
	for _, message := range messages {
		request.Messages = append(request.Messages, openai.ChatCompletionMessage{
			Role:    message.Role,
			Content: message.Content,
		})
	}

	response, err := p.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", apperrors.Wrapf(err, "%s chat completion failed", p.name)
	}
	if len(response.Choices) == 0 {
		return "", apperrors.Wrapf(apperrors.ErrEmptyCompletion, "%s returned no choices", p.name)
	}

	content := strings.TrimSpace(response.Choices[0].Message.Content)
	if content == "" {
		return "", apperrors.Wrapf(apperrors.ErrEmptyCompletion, "%s returned a blank message", p.name)
	}
	return content, nil
}

// GetProviderInfo returns information about the provider.
func (p *OpenAIProvider) GetProviderInfo() ProviderInfo {
	return ProviderInfo{Name: p.name, Model: p.model}
}
